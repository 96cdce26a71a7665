package components

import (
	"carrental-storefront/internal/handler"
	"carrental-storefront/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewLocationHandler,
		api.NewCarHandler,
		api.NewBookingHandler,
		api.NewAdminCarHandler,
		func(l *api.LocationHandler, c *api.CarHandler, b *api.BookingHandler, a *api.AdminCarHandler) handler.Handlers {
			return handler.Handlers{Locations: l, Cars: c, Booking: b, Admin: a}
		},
	),
	fx.Invoke(handler.NewRouter),
)
