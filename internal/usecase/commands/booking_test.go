//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"carrental-storefront/internal/domain/booking"
	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/domain/location"
	"carrental-storefront/internal/domain/reservation"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/commands"
	"carrental-storefront/internal/usecase/queries"
	"carrental-storefront/internal/usecase/shared"
	"carrental-storefront/tests/common/builder"
	sharedmock "carrental-storefront/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBookingResolver(t *testing.T) *booking.Resolver {
	t.Helper()
	dir, err := location.NewDirectory(location.DefaultTable(), 1)
	require.NoError(t, err)
	return booking.NewResolver(dir, time.UTC)
}

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockProvider  *sharedmock.MockCarProvider
	mockPublisher *sharedmock.MockIntentPublisher
	mockGuard     *sharedmock.MockConfirmGuard
	cmds          commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockProvider = sharedmock.NewMockCarProvider(s.mockCtrl)
	s.mockPublisher = sharedmock.NewMockIntentPublisher(s.mockCtrl)
	s.mockGuard = sharedmock.NewMockConfirmGuard(s.mockCtrl)

	cfg := config.NewTestConfig()
	s.cmds = commands.NewBookingCommands(
		s.mockProvider,
		newBookingResolver(s.T()),
		car.NewResolver(),
		reservation.NewDefaultPriceCalculator(cfg.Booking.ServiceFeePercent, cfg.Booking.InsurancePerDayCents),
		s.mockPublisher,
		s.mockGuard,
		clock.NewMockClock(fixedNow),
		cfg,
		discardLogger(),
	)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

func (s *BookingCommandsTestSuite) input(raw, key string) commands.ConfirmBookingInput {
	q, err := url.ParseQuery(raw)
	s.Require().NoError(err)
	return commands.ConfirmBookingInput{Query: q, IdempotencyKey: key}
}

func (s *BookingCommandsTestSuite) TestConfirm() {
	c := builder.NewCarBuilder().WithLocation("Karen").BuildDomain()
	complete := "pickupDate=2025-06-01&dropoffDate=2025-06-04"

	s.Run("success: checkout URL carries the serialized context and an intent is published", func() {
		var published shared.BookingIntent
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockGuard.EXPECT().Acquire(gomock.Any(), "confirm:car:42:abc", 10*time.Minute).Return(true, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, intent shared.BookingIntent) error {
				published = intent
				return nil
			}).Times(1)

		result, err := s.cmds.Confirm(context.Background(), "42", s.input(complete, "abc"))

		s.Require().NoError(err)
		wantQuery := url.Values{
			"carId":            {"42"},
			"pickupDate":       {"2025-06-01T00:00:00.000Z"},
			"dropoffDate":      {"2025-06-04T00:00:00.000Z"},
			"pickupLocationId": {"3"},
			"sameLocation":     {"true"},
		}
		if diff := cmp.Diff(wantQuery, result.Query); diff != "" {
			s.T().Errorf("query mismatch (-want +got):\n%s", diff)
		}
		s.True(strings.HasPrefix(result.CheckoutURL, "/booking?"))
		s.Equal("/booking?"+wantQuery.Encode(), result.CheckoutURL)
		s.Equal(int64(2955000), result.Quote.Total.Cents())

		s.Equal(result.IntentID, published.ID)
		s.Equal(int64(42), published.CarID)
		s.Equal(3, published.PickupLocationID)
		s.Equal(3, published.DropoffLocationID)
		s.True(published.SameLocation)
		s.Equal(3, published.Days)
		s.Equal(int64(2955000), published.TotalCents)
		s.Equal(result.CheckoutURL, published.CheckoutURL)
		s.Equal(fixedNow, published.CreatedAt)
	})

	s.Run("success: different drop-off is serialized", func() {
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.cmds.Confirm(context.Background(), "42", s.input(complete+"&sameLocation=false&dropoffLocationId=5", ""))

		s.Require().NoError(err)
		s.Equal("5", result.Query.Get("dropoffLocationId"))
		s.Equal("false", result.Query.Get("sameLocation"))
		// an explicit drop-off suppresses matching the car's own location, so pickup stays on the default
		s.Equal(1, result.Context.PickupLocationID)
		s.NotEqual(3, result.Context.PickupLocationID)
		s.Equal("1", result.Query.Get("pickupLocationId"))
	})

	s.Run("success: explicit pickup and drop-off ids are serialized", func() {
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

		result, err := s.cmds.Confirm(context.Background(), "42",
			s.input(complete+"&pickupLocationId=3&sameLocation=false&dropoffLocationId=5", ""))

		s.Require().NoError(err)
		s.Equal(3, result.Context.PickupLocationID)
		s.Equal(5, result.Context.DropoffLocationID)
		s.Equal("3", result.Query.Get("pickupLocationId"))
		s.Equal("5", result.Query.Get("dropoffLocationId"))
	})

	s.Run("success: publish failure does not fail the handoff", func() {
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockPublisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down")).Times(1)

		result, err := s.cmds.Confirm(context.Background(), "42", s.input(complete, ""))

		s.Require().NoError(err)
		s.NotEmpty(result.CheckoutURL)
	})

	s.Run("error: duplicate idempotency key", func() {
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockGuard.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil).Times(1)

		_, err := s.cmds.Confirm(context.Background(), "42", s.input(complete, "abc"))
		s.ErrorIs(err, commands.ErrDuplicateConfirmation)
	})

	s.Run("error: guard failure", func() {
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)
		s.mockGuard.EXPECT().Acquire(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down")).Times(1)

		_, err := s.cmds.Confirm(context.Background(), "42", s.input(complete, "abc"))
		s.True(errs.Is(err, commands.ErrIdempotencyCheckFailed))
	})

	s.Run("error: incomplete range", func() {
		for _, raw := range []string{"", "pickupDate=2025-06-01", "dropoffDate=2025-06-04"} {
			s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(c, nil).Times(1)

			_, err := s.cmds.Confirm(context.Background(), "42", s.input(raw, ""))
			s.True(errs.Is(err, commands.ErrIncompleteRange), raw)
		}
	})

	s.Run("error: car cannot be booked", func() {
		maintained := builder.NewCarBuilder().WithMaintenance().BuildDomain()
		s.mockProvider.EXPECT().GetByID(gomock.Any(), int64(42)).Return(maintained, nil).Times(1)

		_, err := s.cmds.Confirm(context.Background(), "42", s.input(complete, "abc"))
		s.True(errs.Is(err, commands.ErrCarNotBookable))
	})

	s.Run("error: unknown car", func() {
		_, err := s.cmds.Confirm(context.Background(), "x", s.input(complete, ""))
		s.ErrorIs(err, queries.ErrCarNotFound)
	})
}
