package api

import (
	"log/slog"
	"net/http"

	"carrental-storefront/internal/domain/countdown"
	reqdto "carrental-storefront/internal/handler/dto/request"
	resdto "carrental-storefront/internal/handler/dto/response"
	"carrental-storefront/internal/handler/httperr"
	"carrental-storefront/internal/handler/validation"
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CarHandler struct {
	q      queries.CarQueries
	cal    commands.CalendarCommands
	logger *slog.Logger
}

func NewCarHandler(q queries.CarQueries, cal commands.CalendarCommands, logger *slog.Logger) *CarHandler {
	return &CarHandler{q: q, cal: cal, logger: logger}
}

// @Summary List cars
// @Description Fleet with the availability of each car
// @Tags cars
// @Produce json
// @Success 200 {array} resdto.FleetItemResponse
// @Failure 503 {object} map[string]string
// @Router /api/cars [get]
func (h *CarHandler) List(c *gin.Context) {
	items, err := h.q.ListFleet(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to load cars", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFleetItems(items))
}

// @Summary Car page
// @Description Car, availability, countdown, booking context, quote and related cars. Booking parameters come from the query string.
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param pickupDate query string false "Pickup date"
// @Param dropoffDate query string false "Drop-off date"
// @Param pickup query string false "Pickup location text"
// @Param dropoff query string false "Drop-off location text"
// @Param pickupLocationId query int false "Pickup location ID"
// @Param dropoffLocationId query int false "Drop-off location ID"
// @Param sameLocation query string false "Return to the pickup location (default true)"
// @Success 200 {object} resdto.CarPageResponse
// @Failure 404 {object} map[string]string
// @Router /api/cars/{id} [get]
func (h *CarHandler) Get(c *gin.Context) {
	page, err := h.q.GetCarPage(c.Request.Context(), c.Param("id"), c.Request.URL.Query())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCarPage(page))
}

// @Summary Booking calendar
// @Description One month of day cells for the range in the query string
// @Tags cars
// @Produce json
// @Param id path string true "Car ID"
// @Param month query string false "Month as YYYY-MM"
// @Param pickupDate query string false "Range start"
// @Param dropoffDate query string false "Range end"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 404 {object} map[string]string
// @Router /api/cars/{id}/calendar [get]
func (h *CarHandler) Calendar(c *gin.Context) {
	view, err := h.q.GetCalendar(c.Request.Context(), c.Param("id"), c.Query("month"), c.Request.URL.Query())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(view))
}

// @Summary Select a day
// @Description Apply one calendar click to the current range
// @Tags cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID"
// @Param request body reqdto.SelectDayRequest true "Current range and clicked day"
// @Success 200 {object} resdto.SelectDayResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/cars/{id}/calendar/select [post]
func (h *CarHandler) SelectDay(c *gin.Context) {
	var req reqdto.SelectDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validation.Details(err))
		return
	}
	day, err := req.ClickedDay()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid day", nil)
		return
	}

	result, err := h.cal.SelectDay(c.Request.Context(), c.Param("id"), commands.SelectDayInput{Range: req.Range(), Day: day})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSelectDay(result))
}

// @Summary Availability countdown
// @Description Server-sent events: one "countdown" event per second while the car is soft-locked, then an "end" event
// @Tags cars
// @Produce text/event-stream
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CountdownFrameResponse
// @Failure 404 {object} map[string]string
// @Router /api/cars/{id}/countdown [get]
func (h *CarHandler) Countdown(c *gin.Context) {
	ctx := c.Request.Context()
	started := false

	reason, err := h.q.WatchCountdown(ctx, c.Param("id"), func(f countdown.Frame) error {
		if !started {
			c.Header("Content-Type", "text/event-stream")
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			c.Status(http.StatusOK)
			started = true
		}
		c.SSEvent("countdown", resdto.FromFrame(f))
		c.Writer.Flush()
		return ctx.Err()
	})
	if !started {
		if err != nil {
			abortWithUseCaseError(c, err)
		}
		return
	}
	if err != nil && ctx.Err() == nil {
		h.logger.Warn("countdown stream failed", "car_id", c.Param("id"), "error", err)
	}
	if ctx.Err() == nil {
		c.SSEvent("end", gin.H{"reason": string(reason)})
		c.Writer.Flush()
	}
}
