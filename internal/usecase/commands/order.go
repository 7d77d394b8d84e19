package commands

import (
	"context"
	"errors"
	"log/slog"

	"flight-onboard/internal/domain/seat"
	"flight-onboard/internal/domain/snack"
	reqdto "flight-onboard/internal/handler/dto/request"
	"flight-onboard/internal/infra"
	"flight-onboard/internal/pkg/errs"
	"flight-onboard/internal/pkg/telemetry"
	"flight-onboard/internal/usecase/queries"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	ErrInvalidRequest = errs.New("invalid order request")
	ErrSeatNotFound   = errs.New("seat not found")
	ErrInvalidSnack   = errs.New("invalid snack")
	ErrQuotaExceeded  = errs.New("snack quota exceeded")
)

type OrderResult struct {
	SnackName string
	SeatID    int
	Seat      queries.SeatView
}

type SeatRepository interface {
	FindByID(ctx context.Context, id int) (*seat.Seat, error)
	// Update runs fn under the seat's lock and returns the stored result.
	Update(ctx context.Context, id int, fn func(*seat.Seat) error) (*seat.Seat, error)
}

type SnackRepository interface {
	FindByID(ctx context.Context, id int) (*snack.Snack, error)
}

//go:generate mockgen -destination=../../../tests/mock/commands/order.go -package=commandsmock flight-onboard/internal/usecase/commands OrderCommands

type OrderCommands interface {
	PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest) (*OrderResult, error)
}

type orderCommandsImpl struct {
	seatRepo  SeatRepository
	snackRepo SnackRepository
}

func NewOrderCommands(seatRepo SeatRepository, snackRepo SnackRepository) OrderCommands {
	return &orderCommandsImpl{
		seatRepo:  seatRepo,
		snackRepo: snackRepo,
	}
}

// PlaceOrder validates the seat and the snack, then counts the order against
// the seat. Checks run in a fixed order (payload, seat, snack, quota) and any
// failure leaves the seat untouched. Repeating a call is a new order attempt.
func (c *orderCommandsImpl) PlaceOrder(ctx context.Context, req reqdto.PlaceOrderRequest) (*OrderResult, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "commands.PlaceOrder")
	defer span.End()

	result, err := c.placeOrder(ctx, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("seat.orders", result.Seat.Orders))
	return result, nil
}

func (c *orderCommandsImpl) placeOrder(ctx context.Context, req reqdto.PlaceOrderRequest) (*OrderResult, error) {
	if !req.IsComplete() {
		return nil, ErrInvalidRequest
	}
	seatID, snackID := *req.SeatID, *req.SnackID

	if _, err := c.seatRepo.FindByID(ctx, seatID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrSeatNotFound, "seat %d", seatID)
		}
		return nil, err
	}

	item, err := c.snackRepo.FindByID(ctx, snackID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(ErrInvalidSnack, "snack %d", snackID)
		}
		return nil, err
	}

	updated, err := c.seatRepo.Update(ctx, seatID, func(s *seat.Seat) error {
		return s.PlaceOrder()
	})
	if err != nil {
		switch {
		case errors.Is(err, seat.ErrQuotaExceeded):
			slog.Info("snack order refused", "seat_id", seatID, "snack_id", snackID, "reason", err.Error())
			return nil, errs.Wrapf(ErrQuotaExceeded, "seat %d", seatID)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Wrapf(ErrSeatNotFound, "seat %d", seatID)
		default:
			return nil, err
		}
	}

	slog.Info("snack order accepted",
		"seat_id", seatID,
		"snack_id", snackID,
		"tier", updated.Tier().String(),
		"orders", updated.Orders(),
	)

	return &OrderResult{
		SnackName: item.Name(),
		SeatID:    seatID,
		Seat:      queries.ToSeatView(updated),
	}, nil
}
