package bootstrap

import (
	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/location"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"

	"go.uber.org/fx"
)

var DomainModule = fx.Module("domain",
	fx.Provide(
		clock.NewRealClock,
		car.NewResolver,
		NewLocationDirectory,
		NewBookingResolver,
		fx.Annotate(
			NewPriceCalculator,
			fx.As(new(reservation.PriceCalculator)),
		),
	),
)

func NewLocationDirectory(cfg config.Config) (*location.Directory, error) {
	return location.NewDirectory(location.DefaultTable(), cfg.Booking.DefaultLocationID)
}

func NewBookingResolver(dir *location.Directory, cfg config.Config) *booking.Resolver {
	return booking.NewResolver(dir, cfg.Booking.Location())
}

func NewPriceCalculator(cfg config.Config) *reservation.DefaultPriceCalculator {
	return reservation.NewDefaultPriceCalculator(cfg.Booking.ServiceFeePercent, cfg.Booking.InsurancePerDayCents)
}
