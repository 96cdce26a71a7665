package booking

import (
	"net/url"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/pkg/errs"
)

var (
	ErrCarNotLoaded    = errs.New("car has not been loaded")
	ErrNotBookable     = errs.ErrCarNotBookable
	ErrIncompleteRange = errs.ErrIncompleteRange
)

// Button labels shown once the car is bookable.
const (
	CTAReserve     = "Reserve now"
	CTASelectDates = "Select dates"
	CTALoading     = "Loading"
)

// Session is the state of one booking page. It is owned by a single caller and is not
// safe for concurrent use.
type Session struct {
	resolver     *Resolver
	availability *car.Resolver

	res      Resolution
	car      *car.Car
	snapshot car.Snapshot
	selector *daterange.Selector
}

func NewSession(resolver *Resolver, availability *car.Resolver, q url.Values) *Session {
	return &Session{
		resolver:     resolver,
		availability: availability,
		res:          resolver.FromQuery(q),
	}
}

// CarLoaded attaches the car record, adopts its location when the query named none, and
// derives availability. A non-bookable car discards any range carried in from the query.
func (s *Session) CarLoaded(c *car.Car, now time.Time) car.Snapshot {
	s.car = c
	s.resolver.AdoptCarLocation(&s.res, c.Location)

	s.snapshot = s.availability.Resolve(c, now)
	s.selector = daterange.NewSelector(s.res.Context.Dates, s.today(now), s.snapshot.IsBookable())
	s.res.Context.SetDates(s.selector.Range())
	return s.snapshot
}

// Refresh re-derives availability at now. Losing bookability resets the range.
func (s *Session) Refresh(now time.Time) car.Snapshot {
	if s.car == nil {
		return s.snapshot
	}
	s.snapshot = s.availability.Resolve(s.car, now)
	s.selector.SetToday(s.today(now))
	s.selector.SetBookable(s.snapshot.IsBookable())
	s.res.Context.SetDates(s.selector.Range())
	return s.snapshot
}

// ClickDay feeds one calendar click to the range selector.
func (s *Session) ClickDay(d daterange.Day) bool {
	if s.selector == nil {
		return false
	}
	changed := s.selector.Click(d)
	s.res.Context.SetDates(s.selector.Range())
	return changed
}

// SetPickupLocation ignores ids the directory does not know.
func (s *Session) SetPickupLocation(id int) bool {
	if _, ok := s.resolver.Directory().ResolveByID(id); !ok {
		return false
	}
	s.res.Context.SetPickupLocation(id)
	return true
}

func (s *Session) SetDropoffLocation(id int) bool {
	if _, ok := s.resolver.Directory().ResolveByID(id); !ok || s.res.Context.SameLocation {
		return false
	}
	s.res.Context.SetDropoffLocation(id)
	return true
}

func (s *Session) SetSameLocation(same bool) {
	s.res.Context.SetSameLocation(same)
}

func (s *Session) Context() Context {
	c := s.res.Context
	c.Dates = daterange.NewRange(c.Dates.Start, c.Dates.End)
	return c
}

func (s *Session) Car() *car.Car                 { return s.car }
func (s *Session) Snapshot() car.Snapshot        { return s.snapshot }
func (s *Session) Resolution() Resolution        { return s.res }
func (s *Session) Selector() *daterange.Selector { return s.selector }

// Countdown is the remaining-time label while the car is soft-locked.
func (s *Session) Countdown(now time.Time) (string, bool) {
	if s.snapshot.Status != car.StatusSoftLocked {
		return "", false
	}
	return countdown.Remaining(s.snapshot.SoftLockExpiresAt, now)
}

func (s *Session) CanReserve() bool {
	return s.car != nil && s.snapshot.IsBookable() && s.res.Context.Dates.State() == daterange.Complete
}

// CTA is the label of the reserve button.
func (s *Session) CTA(now time.Time) string {
	switch {
	case s.car == nil:
		return CTALoading
	case s.snapshot.Status == car.StatusSoftLocked:
		if label, ok := s.Countdown(now); ok {
			return label
		}
		return s.snapshot.Message
	case !s.snapshot.IsBookable():
		return s.snapshot.Message
	case s.CanReserve():
		return CTAReserve
	default:
		return CTASelectDates
	}
}

// Confirm serializes the context for the checkout step.
func (s *Session) Confirm() (url.Values, error) {
	if s.car == nil {
		return nil, ErrCarNotLoaded
	}
	if !s.snapshot.IsBookable() {
		return nil, ErrNotBookable
	}
	if s.res.Context.Dates.State() != daterange.Complete {
		return nil, ErrIncompleteRange
	}
	return s.resolver.Encode(s.car.ID, s.res.Context), nil
}

func (s *Session) today(now time.Time) daterange.Day {
	return daterange.DayOf(now, s.resolver.TimeZone())
}
