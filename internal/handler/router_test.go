//go:build unit

package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"carrental-storefront/internal/domain/location"
	"carrental-storefront/internal/handler"
	"carrental-storefront/internal/handler/api"
	"carrental-storefront/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	dir, err := location.NewDirectory(location.DefaultTable(), 1)
	require.NoError(t, err)

	engine := gin.New()
	handler.NewRouter(engine, config.NewTestConfig(), logger, handler.Handlers{
		Locations: api.NewLocationHandler(dir),
		Cars:      api.NewCarHandler(nil, nil, logger),
		Booking:   api.NewBookingHandler(nil),
		Admin:     api.NewAdminCarHandler(nil),
	})

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		http.MethodGet + " /health",
		http.MethodGet + " /api/locations",
		http.MethodGet + " /api/locations/resolve",
		http.MethodGet + " /api/cars",
		http.MethodGet + " /api/cars/:id",
		http.MethodGet + " /api/cars/:id/calendar",
		http.MethodPost + " /api/cars/:id/calendar/select",
		http.MethodGet + " /api/cars/:id/countdown",
		http.MethodPost + " /api/cars/:id/booking/confirm",
		http.MethodPost + " /api/admin/cars",
		http.MethodPatch + " /api/admin/cars/:id",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
	assert.False(t, registered[http.MethodPost+" /api/cars/:id/booking"])
}
