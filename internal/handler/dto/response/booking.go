package response

import (
	"fmt"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/domain/location"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"
)

type RangeResponse struct {
	Start *daterange.Day `json:"start"`
	End   *daterange.Day `json:"end"`
	State string         `json:"state"`
	Days  int            `json:"days"`
}

type BookingContextResponse struct {
	PickupLocationID  int           `json:"pickupLocationId"`
	DropoffLocationID int           `json:"dropoffLocationId"`
	SameLocation      bool          `json:"sameLocation"`
	Dates             RangeResponse `json:"dates"`
}

type QuoteResponse struct {
	Days            int     `json:"days"`
	DailyPriceCents int64   `json:"dailyPriceCents"`
	SubtotalCents   int64   `json:"subtotalCents"`
	ServiceFeeCents int64   `json:"serviceFeeCents"`
	InsuranceCents  int64   `json:"insuranceCents"`
	TotalCents      int64   `json:"totalCents"`
	Total           float64 `json:"total"`
}

type CarPageResponse struct {
	Car          CarResponse            `json:"car"`
	Availability AvailabilityResponse   `json:"availability"`
	Countdown    *string                `json:"countdown,omitempty"`
	Context      BookingContextResponse `json:"context"`
	Quote        *QuoteResponse         `json:"quote,omitempty"`
	CTA          string                 `json:"cta"`
	CanReserve   bool                   `json:"canReserve"`
	Related      []FleetItemResponse    `json:"related"`
}

type CalendarResponse struct {
	CarID   int64            `json:"carId"`
	Month   string           `json:"month"`
	Today   daterange.Day    `json:"today"`
	Enabled bool             `json:"enabled"`
	Range   RangeResponse    `json:"range"`
	Days    []daterange.Cell `json:"days"`
}

type SelectDayResponse struct {
	Range   RangeResponse `json:"range"`
	Changed bool          `json:"changed"`
	Enabled bool          `json:"enabled"`
}

type ConfirmBookingResponse struct {
	IntentID    string                 `json:"intentId"`
	CheckoutURL string                 `json:"checkoutUrl"`
	Query       map[string]string      `json:"query"`
	Context     BookingContextResponse `json:"context"`
	Quote       QuoteResponse          `json:"quote"`
}

type LocationResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Label   string `json:"label"`
}

func FromRange(r daterange.Range) RangeResponse {
	return RangeResponse{Start: r.Start, End: r.End, State: r.State().String(), Days: r.Span()}
}

func FromContext(c booking.Context) BookingContextResponse {
	return BookingContextResponse{
		PickupLocationID:  c.PickupLocationID,
		DropoffLocationID: c.DropoffLocationID,
		SameLocation:      c.SameLocation,
		Dates:             FromRange(c.Dates),
	}
}

func FromQuote(q reservation.Quote) QuoteResponse {
	return QuoteResponse{
		Days:            q.Days,
		DailyPriceCents: q.DailyPrice.Cents(),
		SubtotalCents:   q.Subtotal.Cents(),
		ServiceFeeCents: q.ServiceFee.Cents(),
		InsuranceCents:  q.Insurance.Cents(),
		TotalCents:      q.Total.Cents(),
		Total:           q.Total.Units(),
	}
}

func FromCarPage(p *queries.CarPage) CarPageResponse {
	out := CarPageResponse{
		Car:          FromCar(p.Car),
		Availability: FromSnapshot(p.Availability),
		Countdown:    p.Countdown,
		Context:      FromContext(p.Context),
		CTA:          p.CTA,
		CanReserve:   p.CanReserve,
		Related:      FromFleetItems(p.Related),
	}
	if p.Quote != nil {
		q := FromQuote(*p.Quote)
		out.Quote = &q
	}
	return out
}

func FromCalendar(v *queries.CalendarView) CalendarResponse {
	return CalendarResponse{
		CarID:   v.CarID,
		Month:   fmt.Sprintf("%04d-%02d", v.Year, int(v.Month)),
		Today:   v.Today,
		Enabled: v.Enabled,
		Range:   FromRange(v.Range),
		Days:    v.Cells,
	}
}

func FromSelectDay(r *commands.SelectDayResult) SelectDayResponse {
	return SelectDayResponse{Range: FromRange(r.Range), Changed: r.Changed, Enabled: r.Enabled}
}

func FromConfirm(r *commands.ConfirmBookingResult) ConfirmBookingResponse {
	q := make(map[string]string, len(r.Query))
	for k := range r.Query {
		q[k] = r.Query.Get(k)
	}
	return ConfirmBookingResponse{
		IntentID:    r.IntentID.String(),
		CheckoutURL: r.CheckoutURL,
		Query:       q,
		Context:     FromContext(r.Context),
		Quote:       FromQuote(r.Quote),
	}
}

func FromLocation(l location.Location) LocationResponse {
	return LocationResponse{ID: l.ID, Name: l.Name, Address: l.Address, Label: l.Label()}
}

func FromLocations(ls []location.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(ls))
	for _, l := range ls {
		out = append(out, FromLocation(l))
	}
	return out
}

type CountdownFrameResponse struct {
	At      string `json:"at"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Label   string `json:"label"`
}

func FromFrame(f countdown.Frame) CountdownFrameResponse {
	return CountdownFrameResponse{
		At:      f.At.UTC().Format(booking.InstantLayout),
		Status:  string(f.Status),
		Message: f.Message,
		Label:   f.Label,
	}
}
