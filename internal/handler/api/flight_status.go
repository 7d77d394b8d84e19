package api

import (
	"errors"
	"net/http"

	resdto "flight-onboard/internal/handler/dto/response"
	"flight-onboard/internal/handler/httperr"
	"flight-onboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	welcomeMessage      = "Bem-vindo à API de Status de Voos da Azul"
	detailFlightMissing = "Voo não encontrado"
	detailInternal      = "Erro interno do servidor"
)

type FlightStatusHandler struct {
	q queries.FlightStatusQueries
}

func NewFlightStatusHandler(q queries.FlightStatusQueries) *FlightStatusHandler {
	return &FlightStatusHandler{q: q}
}

// @Summary Welcome
// @Tags flight-status
// @Produce json
// @Success 200 {object} resdto.WelcomeResponse
// @Router / [get]
func (h *FlightStatusHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.WelcomeResponse{Greeting: welcomeMessage})
}

// @Summary List flight statuses
// @Description Every flight on the board with its computed status, in board order
// @Tags flight-status
// @Produce json
// @Success 200 {array} resdto.FlightStatusResponse
// @Router /status/all [get]
func (h *FlightStatusHandler) ListStatuses(c *gin.Context) {
	views, err := h.q.ListStatuses(c.Request.Context())
	if err != nil {
		httperr.AbortWithDetail(c, http.StatusInternalServerError, err, detailInternal)
		return
	}
	resp, err := resdto.FromFlightStatusViews(views)
	if err != nil {
		httperr.AbortWithDetail(c, http.StatusInternalServerError, err, detailInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get flight status
// @Description Case-insensitive lookup by flight code
// @Tags flight-status
// @Produce json
// @Param codigo_voo path string true "Flight code"
// @Success 200 {object} resdto.FlightStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /status/{codigo_voo} [get]
func (h *FlightStatusHandler) GetStatus(c *gin.Context) {
	view, err := h.q.GetStatus(c.Request.Context(), c.Param("codigo_voo"))
	if err != nil {
		if errors.Is(err, queries.ErrFlightNotFound) {
			httperr.AbortWithDetail(c, http.StatusNotFound, err, detailFlightMissing)
			return
		}
		httperr.AbortWithDetail(c, http.StatusInternalServerError, err, detailInternal)
		return
	}
	resp, err := resdto.FromFlightStatusView(view)
	if err != nil {
		httperr.AbortWithDetail(c, http.StatusInternalServerError, err, detailInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}
