package commands

import (
	"context"
	"log/slog"

	"carrental-storefront/internal/domain/car"
	reqdto "carrental-storefront/internal/handler/dto/request"
	"carrental-storefront/internal/pkg/clock"
	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/queries"
	"carrental-storefront/internal/usecase/shared"
)

var (
	ErrInvalidCarRecord        = errs.ErrInvalidCarRecord
	ErrDatabaseOperationFailed = errs.ErrDatabaseOperationFailed
)

type AdminCarCommands interface {
	CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*car.Car, error)
	UpdateCar(ctx context.Context, rawCarID string, req reqdto.UpdateCarRequest) (*car.Car, error)
}

type adminCarUseCaseImpl struct {
	provider shared.CarProvider
	clock    clock.Clock
	cfg      config.BookingConfig
	logger   *slog.Logger
}

func NewAdminCarCommands(provider shared.CarProvider, clk clock.Clock, cfg config.Config, logger *slog.Logger) AdminCarCommands {
	return &adminCarUseCaseImpl{
		provider: provider,
		clock:    clk,
		cfg:      cfg.Booking,
		logger:   logger,
	}
}

func (uc *adminCarUseCaseImpl) CreateCar(ctx context.Context, req reqdto.CreateCarRequest) (*car.Car, error) {
	c := req.ToDomain()
	if err := c.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCarRecord)
	}

	id, err := uc.provider.Create(ctx, c)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	uc.logger.Info("car created", "car_id", id)

	return uc.reload(ctx, id)
}

func (uc *adminCarUseCaseImpl) UpdateCar(ctx context.Context, rawCarID string, req reqdto.UpdateCarRequest) (*car.Car, error) {
	c, err := queries.LoadCar(ctx, uc.provider, rawCarID)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(c)
	uc.applyHold(c, req)

	if err = c.Validate(); err != nil {
		return nil, errs.Mark(err, ErrInvalidCarRecord)
	}
	if err = uc.provider.Update(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	uc.logger.Info("car updated", "car_id", c.ID)

	return uc.reload(ctx, c.ID)
}

// applyHold places or lifts a soft lock. A new hold without an explicit expiry lasts the
// configured soft-lock duration.
func (uc *adminCarUseCaseImpl) applyHold(c *car.Car, req reqdto.UpdateCarRequest) {
	if req.SoftLock == nil {
		return
	}
	if *req.SoftLock {
		status := string(car.StatusSoftLocked)
		c.AvailabilityStatus = &status
		if req.SoftLockExpiresAt == nil {
			at := uc.clock.Now().Add(uc.cfg.SoftLockDuration).UTC()
			c.SoftLockExpiresAt = &at
		}
		return
	}
	if c.AvailabilityStatus != nil && car.Status(*c.AvailabilityStatus) == car.StatusSoftLocked {
		c.AvailabilityStatus = nil
		c.AvailabilityMessage = nil
	}
	c.SoftLockExpiresAt = nil
}

func (uc *adminCarUseCaseImpl) reload(ctx context.Context, id int64) (*car.Car, error) {
	c, err := uc.provider.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return c, nil
}
