package shared

import (
	"context"
	"time"

	"carrental-storefront/internal/domain/car"

	"github.com/google/uuid"
)

// CarProvider is the upstream source of car records. GetByID reports a missing record as an
// infra.KindNotFound repository error.
type CarProvider interface {
	GetByID(ctx context.Context, id int64) (*car.Car, error)
	GetAll(ctx context.Context) ([]*car.Car, error)
	Create(ctx context.Context, c *car.Car) (int64, error)
	Update(ctx context.Context, c *car.Car) error
}

// BookingIntent is published when a customer leaves the car page for checkout.
type BookingIntent struct {
	ID                uuid.UUID `json:"id"`
	CarID             int64     `json:"carId"`
	PickupLocationID  int       `json:"pickupLocationId"`
	DropoffLocationID int       `json:"dropoffLocationId"`
	SameLocation      bool      `json:"sameLocation"`
	PickupDate        string    `json:"pickupDate"`
	DropoffDate       string    `json:"dropoffDate"`
	Days              int       `json:"days"`
	TotalCents        int64     `json:"totalCents"`
	CheckoutURL       string    `json:"checkoutUrl"`
	CreatedAt         time.Time `json:"createdAt"`
}

type IntentPublisher interface {
	Publish(ctx context.Context, intent BookingIntent) error
}

// ConfirmGuard claims an idempotency key for a while. Acquire returns false when the key is
// already held.
type ConfirmGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
}
