package commands

import (
	"context"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/usecase/queries"
	"carrental-storefront/internal/usecase/shared"
)

type SelectDayInput struct {
	Range daterange.Range
	Day   daterange.Day
}

type SelectDayResult struct {
	Range   daterange.Range
	State   daterange.State
	Changed bool
	Enabled bool
}

type CalendarCommands interface {
	SelectDay(ctx context.Context, rawCarID string, in SelectDayInput) (*SelectDayResult, error)
}

type calendarUseCaseImpl struct {
	provider     shared.CarProvider
	availability *car.Resolver
	clock        clock.Clock
	cfg          config.BookingConfig
}

func NewCalendarCommands(provider shared.CarProvider, availability *car.Resolver, clk clock.Clock, cfg config.Config) CalendarCommands {
	return &calendarUseCaseImpl{
		provider:     provider,
		availability: availability,
		clock:        clk,
		cfg:          cfg.Booking,
	}
}

// SelectDay applies one click to the caller's current range. On a car that cannot be booked
// the click is ignored and the range comes back empty.
func (uc *calendarUseCaseImpl) SelectDay(ctx context.Context, rawCarID string, in SelectDayInput) (*SelectDayResult, error) {
	c, err := queries.LoadCar(ctx, uc.provider, rawCarID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	today := daterange.DayOf(now, uc.cfg.Location())
	sel := daterange.NewSelector(in.Range, today, uc.availability.IsBookable(c, now))
	changed := sel.Click(in.Day)

	return &SelectDayResult{
		Range:   sel.Range(),
		State:   sel.State(),
		Changed: changed,
		Enabled: sel.IsEnabled(),
	}, nil
}
