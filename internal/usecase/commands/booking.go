package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/queries"
	"carrental-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrCarNotBookable         = errs.ErrCarNotBookable
	ErrIncompleteRange        = errs.ErrIncompleteRange
	ErrDuplicateConfirmation  = errs.New("booking confirmation already in progress")
	ErrIdempotencyCheckFailed = errs.New("idempotency check failed")
)

type ConfirmBookingInput struct {
	// Query carries the page's current booking parameters.
	Query          url.Values
	IdempotencyKey string
}

type ConfirmBookingResult struct {
	IntentID    uuid.UUID
	CheckoutURL string
	Query       url.Values
	Context     booking.Context
	Quote       reservation.Quote
}

type BookingCommands interface {
	Confirm(ctx context.Context, rawCarID string, in ConfirmBookingInput) (*ConfirmBookingResult, error)
}

type bookingUseCaseImpl struct {
	provider     shared.CarProvider
	resolver     *booking.Resolver
	availability *car.Resolver
	calculator   reservation.PriceCalculator
	publisher    shared.IntentPublisher
	guard        shared.ConfirmGuard
	clock        clock.Clock
	cfg          config.BookingConfig
	logger       *slog.Logger
}

func NewBookingCommands(
	provider shared.CarProvider,
	resolver *booking.Resolver,
	availability *car.Resolver,
	calculator reservation.PriceCalculator,
	publisher shared.IntentPublisher,
	guard shared.ConfirmGuard,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) BookingCommands {
	return &bookingUseCaseImpl{
		provider:     provider,
		resolver:     resolver,
		availability: availability,
		calculator:   calculator,
		publisher:    publisher,
		guard:        guard,
		clock:        clk,
		cfg:          cfg.Booking,
		logger:       logger,
	}
}

// Confirm re-derives the booking context server side, serializes it into the checkout URL and
// publishes a booking intent. Publishing is best effort.
func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, rawCarID string, in ConfirmBookingInput) (*ConfirmBookingResult, error) {
	c, err := queries.LoadCar(ctx, uc.provider, rawCarID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	session := booking.NewSession(uc.resolver, uc.availability, in.Query)
	session.CarLoaded(c, now)

	values, err := session.Confirm()
	if err != nil {
		return nil, err
	}
	bctx := session.Context()

	quote, err := uc.calculator.Quote(c, bctx.Dates)
	if err != nil {
		return nil, errs.Mark(err, ErrIncompleteRange)
	}

	if key := strings.TrimSpace(in.IdempotencyKey); key != "" {
		acquired, gerr := uc.guard.Acquire(ctx, confirmKey(c.ID, key), uc.cfg.SoftLockDuration)
		if gerr != nil {
			return nil, errs.Mark(gerr, ErrIdempotencyCheckFailed)
		}
		if !acquired {
			return nil, ErrDuplicateConfirmation
		}
	}

	result := &ConfirmBookingResult{
		IntentID:    uuid.New(),
		CheckoutURL: uc.cfg.CheckoutPath + "?" + values.Encode(),
		Query:       values,
		Context:     bctx,
		Quote:       quote,
	}

	intent := shared.BookingIntent{
		ID:                result.IntentID,
		CarID:             c.ID,
		PickupLocationID:  bctx.PickupLocationID,
		DropoffLocationID: bctx.DropoffLocationID,
		SameLocation:      bctx.SameLocation,
		PickupDate:        values.Get(booking.ParamPickupDate),
		DropoffDate:       values.Get(booking.ParamDropoffDate),
		Days:              quote.Days,
		TotalCents:        quote.Total.Cents(),
		CheckoutURL:       result.CheckoutURL,
		CreatedAt:         now,
	}
	if perr := uc.publisher.Publish(ctx, intent); perr != nil {
		uc.logger.Warn("booking intent publish failed", "car_id", c.ID, "intent_id", intent.ID.String(), "error", perr)
	}

	return result, nil
}

func confirmKey(carID int64, key string) string {
	return fmt.Sprintf("confirm:car:%d:%s", carID, key)
}
