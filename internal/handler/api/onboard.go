package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "flight-onboard/internal/handler/dto/request"
	resdto "flight-onboard/internal/handler/dto/response"
	"flight-onboard/internal/handler/httperr"
	"flight-onboard/internal/pkg/patch"
	"flight-onboard/internal/usecase/commands"
	"flight-onboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest = "Estrutura da requisição inválida."
	msgSeatNotFound   = "Assento %d não encontrado."
	msgInvalidSnack   = "Snack com ID %d é inválido."
	msgQuotaExceeded  = "Seu plano de fidelidade permite apenas um snack por viagem."
	msgOrderPlaced    = "Pedido do snack '%s' para o assento %d realizado com sucesso!"
)

type OnboardHandler struct {
	orders  commands.OrderCommands
	catalog queries.CatalogQueries
}

func NewOnboardHandler(orders commands.OrderCommands, catalog queries.CatalogQueries) *OnboardHandler {
	return &OnboardHandler{orders: orders, catalog: catalog}
}

// @Summary List snacks
// @Description List every snack available on board, keyed by snack id
// @Tags onboard
// @Produce json
// @Success 200 {object} resdto.SnackCatalogResponse
// @Router /api/snacks [get]
func (h *OnboardHandler) ListSnacks(c *gin.Context) {
	views, err := h.catalog.ListSnacks(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		return
	}
	resp, err := resdto.FromSnackViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List seats
// @Description Loyalty tier and snack order count of every seat, keyed by seat id
// @Tags onboard
// @Produce json
// @Success 200 {object} resdto.SeatMapResponse
// @Router /api/assentos [get]
func (h *OnboardHandler) ListSeats(c *gin.Context) {
	views, err := h.catalog.ListSeats(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		return
	}
	resp, err := resdto.FromSeatViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Place snack order
// @Description Order a snack for a seat. Básico seats may order one snack per trip.
// @Tags onboard
// @Accept json
// @Produce json
// @Param request body reqdto.PlaceOrderRequest true "Seat and snack ids"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pedido [post]
func (h *OnboardHandler) PlaceOrder(c *gin.Context) {
	var req reqdto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.OutcomeError, msgInvalidRequest)
		return
	}

	result, err := h.orders.PlaceOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRequest):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.OutcomeError, msgInvalidRequest)
		case errors.Is(err, commands.ErrSeatNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, httperr.OutcomeError, fmt.Sprintf(msgSeatNotFound, patch.Coalesce(req.SeatID, 0)))
		case errors.Is(err, commands.ErrInvalidSnack):
			httperr.AbortWithError(c, http.StatusBadRequest, err, httperr.OutcomeError, fmt.Sprintf(msgInvalidSnack, patch.Coalesce(req.SnackID, 0)))
		case errors.Is(err, commands.ErrQuotaExceeded):
			httperr.AbortWithError(c, http.StatusForbidden, err, httperr.OutcomeRefused, msgQuotaExceeded)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		}
		return
	}

	seatResp, err := resdto.FromSeatView(result.Seat)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, httperr.OutcomeError, httperr.MsgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.OrderResponse{
		Status:  httperr.OutcomeSuccess,
		Message: fmt.Sprintf(msgOrderPlaced, result.SnackName, result.SeatID),
		Seat:    seatResp,
	})
}
