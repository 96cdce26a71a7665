//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"net/url"
	"testing"
	"time"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/countdown"
	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/handler/api"
	resdto "carrental-storefront/internal/handler/dto/response"
	"carrental-storefront/internal/handler/validation"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"
	"carrental-storefront/tests/common/builder"
	"carrental-storefront/tests/common/httptest"
	"carrental-storefront/tests/common/testutil"
	commandsmock "carrental-storefront/tests/mock/commands"
	queriesmock "carrental-storefront/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type CarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCarQueries
	mockCal     *commandsmock.MockCalendarCommands
	handler     *api.CarHandler
}

func (s *CarHandlerTestSuite) SetupSuite() {
	s.Require().NoError(validation.RegisterBindings())
}

func (s *CarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCarQueries(s.mockCtrl)
	s.mockCal = commandsmock.NewMockCalendarCommands(s.mockCtrl)
	s.handler = api.NewCarHandler(s.mockQueries, s.mockCal, discardLogger())

	s.router.GET("/api/cars", s.handler.List)
	s.router.GET("/api/cars/:id", s.handler.Get)
	s.router.GET("/api/cars/:id/calendar", s.handler.Calendar)
	s.router.POST("/api/cars/:id/calendar/select", s.handler.SelectDay)
	s.router.GET("/api/cars/:id/countdown", s.handler.Countdown)
}

func (s *CarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CarHandlerTestSuite))
}

func reservationQuote() reservation.Quote {
	q, _ := reservation.NewDefaultPriceCalculator(10, 50000).
		Quote(builder.NewCarBuilder().BuildDomain(), daterange.NewRange(june(1), june(4)))
	return q
}

func june(d int) *daterange.Day {
	v := daterange.NewDay(2025, time.June, d)
	return &v
}

// ================================================================================
// TestGet
// ================================================================================

func (s *CarHandlerTestSuite) TestGet() {
	c := builder.NewCarBuilder().BuildDomain()

	s.Run("success: passes the raw query through and renders the page", func() {
		quote := reservationQuote()
		page := &queries.CarPage{
			Car:          c,
			Availability: car.Snapshot{Status: car.StatusAvailable, Message: "Available for booking"},
			Context:      booking.NewContext(3, 3, true, daterange.NewRange(june(1), june(4))),
			Quote:        &quote,
			CTA:          booking.CTAReserve,
			CanReserve:   true,
			Related:      []queries.FleetItem{},
		}
		s.mockQueries.EXPECT().
			GetCarPage(gomock.Any(), "42", url.Values{"pickupDate": {"2025-06-01"}, "dropoffDate": {"2025-06-04"}, "pickup": {"Karen"}}).
			Return(page, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42?pickupDate=2025-06-01&dropoffDate=2025-06-04&pickup=Karen", nil, nil)

		var body resdto.CarPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(42), body.Car.ID)
		s.Equal("available", body.Availability.Status)
		s.True(body.Availability.IsBookable)
		s.Equal(3, body.Context.PickupLocationID)
		s.Equal("complete", body.Context.Dates.State)
		s.Equal(3, body.Context.Dates.Days)
		s.Require().NotNil(body.Quote)
		s.Equal(int64(2955000), body.Quote.TotalCents)
		s.Equal("Reserve now", body.CTA)
		s.NotNil(body.Related)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{name: "not found", err: queries.ErrCarNotFound, expectCode: http.StatusNotFound, expectMsg: "Car not found"},
		{name: "upstream failure", err: errs.Mark(errors.New("dial tcp"), queries.ErrCarLoadFailed), expectCode: http.StatusServiceUnavailable, expectMsg: "Failed to load car"},
		{name: "unexpected", err: errors.New("boom"), expectCode: http.StatusInternalServerError, expectMsg: "Internal server error"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockQueries.EXPECT().GetCarPage(gomock.Any(), "42", gomock.Any()).Return(nil, tc.err).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42", nil, nil)
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMsg)
		})
	}
}

// ================================================================================
// TestList
// ================================================================================

func (s *CarHandlerTestSuite) TestList() {
	s.Run("success", func() {
		items := []queries.FleetItem{
			{Car: builder.NewCarBuilder().WithID(1).BuildDomain(), Availability: car.Snapshot{Status: car.StatusAvailable}},
			{Car: builder.NewCarBuilder().WithID(2).BuildDomain(), Availability: car.Snapshot{Status: car.StatusBooked, Message: "Booked"}},
		}
		s.mockQueries.EXPECT().ListFleet(gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars", nil, nil)

		var body []resdto.FleetItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 2)
		s.Equal("booked", body[1].Availability.Status)
		s.False(body[1].Availability.IsBookable)
	})

	s.Run("error: upstream failure", func() {
		s.mockQueries.EXPECT().ListFleet(gomock.Any()).Return(nil, errors.New("down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Failed to load cars")
	})
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *CarHandlerTestSuite) TestCalendar() {
	s.Run("success: month param is forwarded", func() {
		view := &queries.CalendarView{
			CarID:   42,
			Year:    2025,
			Month:   time.June,
			Today:   daterange.NewDay(2025, time.May, 30),
			Enabled: true,
			Range:   daterange.NewRange(june(1), nil),
			State:   daterange.StartOnly,
			Cells:   daterange.Month(2025, time.June, daterange.NewRange(june(1), nil), daterange.NewDay(2025, time.May, 30), true),
		}
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), "42", "2025-06", gomock.Any()).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42/calendar?month=2025-06&pickupDate=2025-06-01", nil, nil)

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-06", body.Month)
		s.Equal("start_only", body.Range.State)
		s.True(body.Enabled)
		s.NotEmpty(body.Days)
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetCalendar(gomock.Any(), "abc", "", gomock.Any()).Return(nil, queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/abc/calendar", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
	})
}

// ================================================================================
// TestSelectDay
// ================================================================================

func (s *CarHandlerTestSuite) TestSelectDay() {
	path := "/api/cars/42/calendar/select"
	reqBody := map[string]any{"start": "2025-06-01", "day": "2025-06-04"}

	s.Run("success: applies the click", func() {
		s.mockCal.EXPECT().
			SelectDay(gomock.Any(), "42", commands.SelectDayInput{Range: daterange.NewRange(june(1), nil), Day: *june(4)}).
			Return(&commands.SelectDayResult{
				Range:   daterange.NewRange(june(1), june(4)),
				State:   daterange.Complete,
				Changed: true,
				Enabled: true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, nil)

		var body resdto.SelectDayResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Changed)
		s.Equal("complete", body.Range.State)
		s.Equal(3, body.Range.Days)
	})

	validationCases := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "missing day", mutate: testutil.Field("day", nil)},
		{name: "malformed day", mutate: testutil.Field("day", "04/06/2025")},
		{name: "malformed start", mutate: testutil.Field("start", "yesterday")},
	}
	for _, tc := range validationCases {
		s.Run("error: 400 on "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, testutil.DtoMap(s.T(), reqBody, tc.mutate), nil)

			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			var body struct {
				Detail []validationDetail `json:"detail"`
			}
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
			s.NotEmpty(body.Detail)
		})
	}
}

type validationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ================================================================================
// TestCountdown
// ================================================================================

func (s *CarHandlerTestSuite) TestCountdown() {
	s.Run("success: streams frames then an end event", func() {
		at := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)
		s.mockQueries.EXPECT().WatchCountdown(gomock.Any(), "42", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, emit func(countdown.Frame) error) (countdown.StopReason, error) {
				_ = emit(countdown.Frame{At: at, Status: car.StatusSoftLocked, Message: "Reserved", Label: "00:01"})
				_ = emit(countdown.Frame{At: at.Add(time.Second), Status: car.StatusAvailable, Message: "Available for booking", Label: countdown.AvailableNow})
				return countdown.StopExpired, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42/countdown", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Header().Get("Content-Type"), "text/event-stream")

		events := httptest.ParseEvents(s.T(), rec.Body.String())
		s.Require().Len(events, 3)
		s.Equal("countdown", events[0].Name)

		var first resdto.CountdownFrameResponse
		s.Require().NoError(json.Unmarshal([]byte(events[0].Data), &first))
		s.Equal("00:01", first.Label)
		s.Equal("soft_locked", first.Status)
		s.Equal("2025-05-30T09:00:00.000Z", first.At)

		s.Equal("end", events[2].Name)
		s.Contains(events[2].Data, "expired")
	})

	s.Run("error: unknown car is a plain 404", func() {
		s.mockQueries.EXPECT().WatchCountdown(gomock.Any(), "7", gomock.Any()).Return(countdown.StopReason(""), queries.ErrCarNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/7/countdown", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Car not found")
		s.NotContains(rec.Header().Get("Content-Type"), "text/event-stream")
	})

	s.Run("error: load failure before the first frame is a 503", func() {
		s.mockQueries.EXPECT().WatchCountdown(gomock.Any(), "42", gomock.Any()).
			Return(countdown.StopReason(""), errs.Mark(errors.New("db down"), queries.ErrCarLoadFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42/countdown", nil, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "Failed to load car")
	})

	s.Run("success: a failure after streaming started still closes with an end event", func() {
		s.mockQueries.EXPECT().WatchCountdown(gomock.Any(), "42", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, emit func(countdown.Frame) error) (countdown.StopReason, error) {
				_ = emit(countdown.Frame{At: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC), Status: car.StatusSoftLocked, Label: "00:05"})
				return countdown.StopEmitFailed, errors.New("refresh failed")
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/cars/42/countdown", nil, nil)

		s.Equal(http.StatusOK, rec.Code)
		events := httptest.ParseEvents(s.T(), rec.Body.String())
		s.Require().Len(events, 2)
		s.Equal("countdown", events[0].Name)
		s.Equal("end", events[1].Name)
		s.Contains(events[1].Data, string(countdown.StopEmitFailed))
	})

	s.Run("success: no end event once the client has gone", func() {
		ctx, cancel := context.WithCancel(context.Background())
		s.mockQueries.EXPECT().WatchCountdown(gomock.Any(), "42", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, emit func(countdown.Frame) error) (countdown.StopReason, error) {
				s.NoError(emit(countdown.Frame{At: time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC), Status: car.StatusSoftLocked, Label: "00:05"}))
				cancel()
				s.Error(emit(countdown.Frame{At: time.Date(2025, 5, 30, 9, 0, 1, 0, time.UTC), Status: car.StatusSoftLocked, Label: "00:04"}))
				return countdown.StopCancelled, nil
			}).Times(1)

		req := nethttptest.NewRequest(http.MethodGet, "/api/cars/42/countdown", nil).WithContext(ctx)
		rec := nethttptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		events := httptest.ParseEvents(s.T(), rec.Body.String())
		s.Require().NotEmpty(events)
		for _, e := range events {
			s.NotEqual("end", e.Name)
		}
	})
}
