//go:build unit

package booking_test

import (
	"net/url"
	"testing"
	"time"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionNow = time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

func newSession(t *testing.T, raw string) *booking.Session {
	t.Helper()
	return booking.NewSession(newResolver(t, time.UTC), car.NewResolver(), query(t, raw))
}

func june(d int) daterange.Day { return daterange.NewDay(2025, time.June, d) }

func TestSession_BeforeCarLoads(t *testing.T) {
	s := newSession(t, "pickupDate=2025-06-01&dropoffDate=2025-06-04")

	assert.Equal(t, booking.CTALoading, s.CTA(sessionNow))
	assert.False(t, s.ClickDay(june(5)))
	assert.False(t, s.CanReserve())

	_, err := s.Confirm()
	assert.ErrorIs(t, err, booking.ErrCarNotLoaded)
}

func TestSession_BookableCarKeepsQueryRange(t *testing.T) {
	s := newSession(t, "pickupDate=2025-06-01&dropoffDate=2025-06-04")
	c := builder.NewCarBuilder().WithLocation("Karen").BuildDomain()

	snap := s.CarLoaded(c, sessionNow)

	assert.Equal(t, car.StatusAvailable, snap.Status)
	assert.Equal(t, 3, s.Context().PickupLocationID)
	assert.Equal(t, 3, s.Context().DropoffLocationID)
	assert.Equal(t, 3, s.Context().Dates.Span())
	assert.True(t, s.CanReserve())
	assert.Equal(t, booking.CTAReserve, s.CTA(sessionNow))

	v, err := s.Confirm()
	require.NoError(t, err)
	assert.Equal(t, url.Values{
		"carId":            {"42"},
		"pickupDate":       {"2025-06-01T00:00:00.000Z"},
		"dropoffDate":      {"2025-06-04T00:00:00.000Z"},
		"pickupLocationId": {"3"},
		"sameLocation":     {"true"},
	}, v)
}

func TestSession_ExplicitQueryLocationBeatsCarLocation(t *testing.T) {
	s := newSession(t, "pickupLocationId=6")
	s.CarLoaded(builder.NewCarBuilder().WithLocation("Karen").BuildDomain(), sessionNow)

	assert.Equal(t, 6, s.Context().PickupLocationID)
}

func TestSession_ClickDays(t *testing.T) {
	s := newSession(t, "")
	s.CarLoaded(builder.NewCarBuilder().BuildDomain(), sessionNow)
	assert.Equal(t, booking.CTASelectDates, s.CTA(sessionNow))

	assert.False(t, s.ClickDay(daterange.NewDay(2025, time.May, 29)), "past day")
	assert.True(t, s.ClickDay(june(8)))
	assert.Equal(t, booking.CTASelectDates, s.CTA(sessionNow))
	assert.True(t, s.ClickDay(june(3)))

	dates := s.Context().Dates
	require.Equal(t, daterange.Complete, dates.State())
	assert.Equal(t, june(3), *dates.Start)
	assert.Equal(t, june(8), *dates.End)
	assert.Equal(t, booking.CTAReserve, s.CTA(sessionNow))

	_, err := s.Confirm()
	assert.NoError(t, err)
}

func TestSession_IncompleteRangeCannotConfirm(t *testing.T) {
	s := newSession(t, "pickupDate=2025-06-01")
	s.CarLoaded(builder.NewCarBuilder().BuildDomain(), sessionNow)

	_, err := s.Confirm()
	assert.ErrorIs(t, err, booking.ErrIncompleteRange)
}

func TestSession_NonBookableCar(t *testing.T) {
	s := newSession(t, "pickupDate=2025-06-01&dropoffDate=2025-06-04")
	snap := s.CarLoaded(builder.NewCarBuilder().WithMaintenance().BuildDomain(), sessionNow)

	assert.Equal(t, car.StatusMaintenance, snap.Status)
	assert.Equal(t, daterange.Empty, s.Context().Dates.State(), "query range is discarded")
	assert.False(t, s.ClickDay(june(5)))
	assert.Equal(t, "Undergoing maintenance", s.CTA(sessionNow))

	_, err := s.Confirm()
	assert.ErrorIs(t, err, booking.ErrNotBookable)
}

func TestSession_SoftLockCountdownThenAvailable(t *testing.T) {
	s := newSession(t, "")
	expires := sessionNow.Add(90 * time.Second)
	s.CarLoaded(builder.NewCarBuilder().WithSoftLock(expires).BuildDomain(), sessionNow)

	assert.Equal(t, car.StatusSoftLocked, s.Snapshot().Status)
	assert.Equal(t, "01:30", s.CTA(sessionNow))
	label, ok := s.Countdown(sessionNow.Add(time.Second))
	require.True(t, ok)
	assert.Equal(t, "01:29", label)
	assert.False(t, s.ClickDay(june(2)))

	later := expires.Add(time.Second)
	snap := s.Refresh(later)
	assert.Equal(t, car.StatusAvailable, snap.Status)
	_, ok = s.Countdown(later)
	assert.False(t, ok)
	assert.True(t, s.ClickDay(june(2)))
	assert.Equal(t, booking.CTASelectDates, s.CTA(later))
}

func TestSession_LosingBookabilityResetsRange(t *testing.T) {
	s := newSession(t, "pickupDate=2025-06-01&dropoffDate=2025-06-04")
	c := builder.NewCarBuilder().BuildDomain()
	s.CarLoaded(c, sessionNow)
	require.Equal(t, daterange.Complete, s.Context().Dates.State())

	c.IsRented = true
	snap := s.Refresh(sessionNow)

	assert.Equal(t, car.StatusBooked, snap.Status)
	assert.Equal(t, daterange.Empty, s.Context().Dates.State())
	assert.False(t, s.CanReserve())
}

func TestSession_LocationSetters(t *testing.T) {
	s := newSession(t, "")
	s.CarLoaded(builder.NewCarBuilder().BuildDomain(), sessionNow)

	assert.True(t, s.SetPickupLocation(4))
	assert.Equal(t, 4, s.Context().DropoffLocationID)
	assert.False(t, s.SetPickupLocation(99))
	assert.False(t, s.SetDropoffLocation(5), "drop-off follows pickup while same location is set")

	s.SetSameLocation(false)
	assert.True(t, s.SetDropoffLocation(5))
	assert.Equal(t, 4, s.Context().PickupLocationID)
	assert.Equal(t, 5, s.Context().DropoffLocationID)

	s.SetSameLocation(true)
	assert.Equal(t, 4, s.Context().DropoffLocationID)
}

func TestSession_CountdownLabelMatchesPureFunction(t *testing.T) {
	s := newSession(t, "")
	expires := sessionNow.Add(2*time.Hour + 5*time.Minute)
	s.CarLoaded(builder.NewCarBuilder().WithSoftLock(expires).BuildDomain(), sessionNow)

	want, _ := countdown.Remaining(&expires, sessionNow)
	assert.Equal(t, want, s.CTA(sessionNow))
	assert.Equal(t, "2h 5m", want)
}
