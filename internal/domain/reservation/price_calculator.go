package reservation

import (
	"errors"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/daterange"
)

var (
	ErrIncompleteRange = errors.New("quote needs a complete date range")
	ErrNegativePrice   = errors.New("price cannot be negative")
)

// Quote itemizes the price of renting one car over a date range.
type Quote struct {
	Days       int
	DailyPrice Money
	Subtotal   Money
	ServiceFee Money
	Insurance  Money
	Total      Money
}

type PriceCalculator interface {
	Quote(c *car.Car, dates daterange.Range) (Quote, error)
}

type DefaultPriceCalculator struct {
	ServiceFeePercent    int64
	InsurancePerDayCents int64
}

func NewDefaultPriceCalculator(serviceFeePercent, insurancePerDayCents int64) *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		ServiceFeePercent:    serviceFeePercent,
		InsurancePerDayCents: insurancePerDayCents,
	}
}

// Quote charges days x daily price, a service fee on that subtotal, and flat daily insurance.
func (pc *DefaultPriceCalculator) Quote(c *car.Car, dates daterange.Range) (Quote, error) {
	if dates.State() != daterange.Complete {
		return Quote{}, ErrIncompleteRange
	}
	if c.DailyPriceCents < 0 {
		return Quote{}, ErrNegativePrice
	}

	days := dates.Span()
	daily := NewMoney(c.DailyPriceCents)
	subtotal := daily.Times(days)
	fee := subtotal.Percent(pc.ServiceFeePercent)
	insurance := NewMoney(pc.InsurancePerDayCents).Times(days)

	return Quote{
		Days:       days,
		DailyPrice: daily,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Insurance:  insurance,
		Total:      subtotal.Add(fee).Add(insurance),
	}, nil
}
