package request

import (
	"net/url"
	"strconv"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/daterange"
)

// SelectDayRequest carries the current range and the clicked day.
type SelectDayRequest struct {
	Start *string `json:"start,omitempty" binding:"omitempty,iso_date"`
	End   *string `json:"end,omitempty" binding:"omitempty,iso_date"`
	Day   string  `json:"day" binding:"required,iso_date"`
}

// Range ignores endpoints that fail to parse.
func (r SelectDayRequest) Range() daterange.Range {
	return daterange.NewRange(parseDay(r.Start), parseDay(r.End))
}

func (r SelectDayRequest) ClickedDay() (daterange.Day, error) {
	return daterange.ParseDay(r.Day)
}

// ConfirmBookingRequest mirrors the car page's query parameters. Set fields override the
// request's query string.
type ConfirmBookingRequest struct {
	PickupDate        *string `json:"pickupDate,omitempty"`
	DropoffDate       *string `json:"dropoffDate,omitempty"`
	Pickup            *string `json:"pickup,omitempty"`
	Dropoff           *string `json:"dropoff,omitempty"`
	PickupLocationID  *int    `json:"pickupLocationId,omitempty"`
	DropoffLocationID *int    `json:"dropoffLocationId,omitempty"`
	SameLocation      *bool   `json:"sameLocation,omitempty"`
}

func (r ConfirmBookingRequest) MergeInto(q url.Values) url.Values {
	out := url.Values{}
	for k, v := range q {
		out[k] = append([]string(nil), v...)
	}
	setString(out, booking.ParamPickupDate, r.PickupDate)
	setString(out, booking.ParamDropoffDate, r.DropoffDate)
	setString(out, booking.ParamPickup, r.Pickup)
	setString(out, booking.ParamDropoff, r.Dropoff)
	if r.PickupLocationID != nil {
		out.Set(booking.ParamPickupLocationID, strconv.Itoa(*r.PickupLocationID))
	}
	if r.DropoffLocationID != nil {
		out.Set(booking.ParamDropoffLocationID, strconv.Itoa(*r.DropoffLocationID))
	}
	if r.SameLocation != nil {
		out.Set(booking.ParamSameLocation, strconv.FormatBool(*r.SameLocation))
	}
	return out
}

func setString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func parseDay(s *string) *daterange.Day {
	if s == nil {
		return nil
	}
	d, err := daterange.ParseDay(*s)
	if err != nil {
		return nil
	}
	return &d
}
