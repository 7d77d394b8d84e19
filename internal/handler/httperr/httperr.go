package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Outcome values of the "status" field on the onboard surface.
const (
	OutcomeSuccess = "sucesso"
	OutcomeError   = "erro"
	OutcomeRefused = "recusado"
)

const MsgInternal = "Erro interno do servidor."

// Response covers both error shapes the surfaces expose: the onboard
// {"status","mensagem"} pair and the flight-status {"detail"} body.
type Response struct {
	Status  int    `json:"-"`
	Outcome string `json:"status,omitempty"`
	Message string `json:"mensagem,omitempty"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, outcome, msg string) {
	abort(c, err, Response{Status: status, Outcome: outcome, Message: msg})
}

func AbortWithDetail(c *gin.Context, status int, err error, detail any) {
	abort(c, err, Response{Status: status, Detail: detail})
}

func Internal() Response {
	return Response{Status: http.StatusInternalServerError, Outcome: OutcomeError, Message: MsgInternal}
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}
	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
