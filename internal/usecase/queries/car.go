package queries

import (
	"context"
	"log/slog"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/infra"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/shared"
)

var (
	ErrCarNotFound   = errs.ErrCarNotFound
	ErrCarLoadFailed = errs.ErrCarLoadFailed
)

const monthLayout = "2006-01"

// FleetItem is a car together with its availability at request time.
type FleetItem struct {
	Car          *car.Car
	Availability car.Snapshot
}

// CarPage is everything the car detail page shows for one request.
type CarPage struct {
	Car          *car.Car
	Availability car.Snapshot
	Countdown    *string
	Context      booking.Context
	Quote        *reservation.Quote
	CTA          string
	CanReserve   bool
	Related      []FleetItem
}

type CalendarView struct {
	CarID   int64
	Year    int
	Month   time.Month
	Today   daterange.Day
	Enabled bool
	Range   daterange.Range
	State   daterange.State
	Cells   []daterange.Cell
}

type CarQueries interface {
	ListFleet(ctx context.Context) ([]FleetItem, error)
	GetCarPage(ctx context.Context, rawID string, q url.Values) (*CarPage, error)
	GetCalendar(ctx context.Context, rawID, month string, q url.Values) (*CalendarView, error)
	WatchCountdown(ctx context.Context, rawID string, emit func(countdown.Frame) error) (countdown.StopReason, error)
}

type carQueriesImpl struct {
	provider     shared.CarProvider
	resolver     *booking.Resolver
	availability *car.Resolver
	calculator   reservation.PriceCalculator
	clock        clock.Clock
	cfg          config.BookingConfig
	logger       *slog.Logger
}

func NewCarQueries(
	provider shared.CarProvider,
	resolver *booking.Resolver,
	availability *car.Resolver,
	calculator reservation.PriceCalculator,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) CarQueries {
	return &carQueriesImpl{
		provider:     provider,
		resolver:     resolver,
		availability: availability,
		calculator:   calculator,
		clock:        clk,
		cfg:          cfg.Booking,
		logger:       logger,
	}
}

// ParseCarID accepts only positive decimal ids.
func ParseCarID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// LoadCar fetches one record. A malformed id reads as not found.
func LoadCar(ctx context.Context, provider shared.CarProvider, rawID string) (*car.Car, error) {
	id, ok := ParseCarID(rawID)
	if !ok {
		return nil, ErrCarNotFound
	}
	c, err := provider.GetByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCarNotFound
		}
		return nil, errs.Mark(err, ErrCarLoadFailed)
	}
	return c, nil
}

func (q *carQueriesImpl) ListFleet(ctx context.Context) ([]FleetItem, error) {
	cars, err := q.provider.GetAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCarLoadFailed)
	}
	now := q.clock.Now()
	items := make([]FleetItem, 0, len(cars))
	for _, c := range cars {
		items = append(items, FleetItem{Car: c, Availability: q.availability.Resolve(c, now)})
	}
	return items, nil
}

func (q *carQueriesImpl) GetCarPage(ctx context.Context, rawID string, values url.Values) (*CarPage, error) {
	c, err := LoadCar(ctx, q.provider, rawID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	session := booking.NewSession(q.resolver, q.availability, values)
	snap := session.CarLoaded(c, now)

	page := &CarPage{
		Car:          c,
		Availability: snap,
		Context:      session.Context(),
		CTA:          session.CTA(now),
		CanReserve:   session.CanReserve(),
		Related:      q.related(ctx, c, now),
	}
	if label, ok := session.Countdown(now); ok {
		page.Countdown = &label
	}
	if page.Context.Dates.State() == daterange.Complete {
		quote, qerr := q.calculator.Quote(c, page.Context.Dates)
		if qerr == nil {
			page.Quote = &quote
		}
	}
	return page, nil
}

func (q *carQueriesImpl) GetCalendar(ctx context.Context, rawID, month string, values url.Values) (*CalendarView, error) {
	c, err := LoadCar(ctx, q.provider, rawID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	session := booking.NewSession(q.resolver, q.availability, values)
	session.CarLoaded(c, now)
	sel := session.Selector()

	year, mon := q.calendarMonth(month, sel)
	return &CalendarView{
		CarID:   c.ID,
		Year:    year,
		Month:   mon,
		Today:   sel.Today(),
		Enabled: sel.IsEnabled(),
		Range:   sel.Range(),
		State:   sel.State(),
		Cells:   sel.Month(year, mon),
	}, nil
}

// WatchCountdown streams availability frames for one car until the watcher stops. Each tick
// re-reads the record so an upstream status change ends the stream; a failed re-read keeps
// the last record.
func (q *carQueriesImpl) WatchCountdown(ctx context.Context, rawID string, emit func(countdown.Frame) error) (countdown.StopReason, error) {
	c, err := LoadCar(ctx, q.provider, rawID)
	if err != nil {
		return "", err
	}

	first := true
	snapshot := func(now time.Time) car.Snapshot {
		if !first {
			if fresh, ferr := q.provider.GetByID(ctx, c.ID); ferr == nil {
				c = fresh
			} else if ctx.Err() == nil {
				q.logger.Warn("countdown refresh failed", "car_id", c.ID, "error", ferr)
			}
		}
		first = false
		return q.availability.Resolve(c, now)
	}

	reason, err := countdown.NewWatcher(q.clock, q.cfg.CountdownInterval).Run(ctx, snapshot, emit)
	q.logger.Debug("countdown stopped", "car_id", c.ID, "reason", string(reason))
	return reason, err
}

// related lists other cars, same category first. A failed fleet fetch yields no related cars.
func (q *carQueriesImpl) related(ctx context.Context, subject *car.Car, now time.Time) []FleetItem {
	limit := q.cfg.RelatedLimit
	if limit <= 0 {
		return []FleetItem{}
	}

	fleet, err := q.provider.GetAll(ctx)
	if err != nil {
		q.logger.Warn("related fleet fetch failed", "car_id", subject.ID, "error", err)
		return []FleetItem{}
	}

	others := make([]*car.Car, 0, len(fleet))
	for _, c := range fleet {
		if c.ID != subject.ID {
			others = append(others, c)
		}
	}
	sort.SliceStable(others, func(i, j int) bool {
		return sameCategory(others[i], subject) && !sameCategory(others[j], subject)
	})
	if len(others) > limit {
		others = others[:limit]
	}

	items := make([]FleetItem, 0, len(others))
	for _, c := range others {
		items = append(items, FleetItem{Car: c, Availability: q.availability.Resolve(c, now)})
	}
	return items
}

// calendarMonth picks the requested month, else the month of the range start, else today's.
func (q *carQueriesImpl) calendarMonth(raw string, sel *daterange.Selector) (int, time.Month) {
	if t, err := time.Parse(monthLayout, strings.TrimSpace(raw)); err == nil {
		return t.Year(), t.Month()
	}
	if r := sel.Range(); r.Start != nil {
		return r.Start.Year(), r.Start.Month()
	}
	today := sel.Today()
	return today.Year(), today.Month()
}

func sameCategory(a, b *car.Car) bool {
	return a.Category != "" && strings.EqualFold(a.Category, b.Category)
}
