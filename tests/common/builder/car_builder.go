//go:build unit || e2e

package builder

import (
	"time"

	"carrental-storefront/internal/domain/car"
	reqdto "carrental-storefront/internal/handler/dto/request"
)

type CarBuilder struct {
	ID                  int64
	Make                string
	Model               string
	Year                int
	Category            string
	Transmission        string
	Seats               int
	DailyPriceCents     int64
	Location            string
	ImageURLs           []string
	Features            []string
	AvailabilityStatus  *string
	AvailabilityMessage *string
	SoftLockExpiresAt   *time.Time
	IsUnderMaintenance  bool
	MaintenanceStatus   *string
	IsRented            bool
	RentalStatus        *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewCarBuilder() *CarBuilder {
	now := time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC)
	return &CarBuilder{
		ID:              42,
		Make:            "Toyota",
		Model:           "Land Cruiser Prado",
		Year:            2022,
		Category:        "SUV",
		Transmission:    "automatic",
		Seats:           7,
		DailyPriceCents: 850000,
		Location:        "Westlands",
		ImageURLs:       []string{"https://cdn.example.com/cars/42/front.jpg"},
		Features:        []string{"4WD", "Bluetooth"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *CarBuilder) With(mutate func(*CarBuilder)) *CarBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CarBuilder) BuildDomain() *car.Car {
	return &car.Car{
		ID:                  b.ID,
		Make:                b.Make,
		Model:               b.Model,
		Year:                b.Year,
		Category:            b.Category,
		Transmission:        b.Transmission,
		Seats:               b.Seats,
		DailyPriceCents:     b.DailyPriceCents,
		Location:            b.Location,
		ImageURLs:           append([]string(nil), b.ImageURLs...),
		Features:            append([]string(nil), b.Features...),
		AvailabilityStatus:  b.AvailabilityStatus,
		AvailabilityMessage: b.AvailabilityMessage,
		SoftLockExpiresAt:   b.SoftLockExpiresAt,
		IsUnderMaintenance:  b.IsUnderMaintenance,
		MaintenanceStatus:   b.MaintenanceStatus,
		IsRented:            b.IsRented,
		RentalStatus:        b.RentalStatus,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

func (b *CarBuilder) BuildCreateRequestDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Make:            b.Make,
		Model:           b.Model,
		Year:            b.Year,
		Category:        b.Category,
		Transmission:    b.Transmission,
		Seats:           b.Seats,
		DailyPriceCents: b.DailyPriceCents,
		Location:        b.Location,
		ImageURLs:       b.ImageURLs,
		Features:        b.Features,
	}
}

// Fluent builder methods
func (b *CarBuilder) WithID(id int64) *CarBuilder {
	b.ID = id
	return b
}

func (b *CarBuilder) WithLocation(loc string) *CarBuilder {
	b.Location = loc
	return b
}

func (b *CarBuilder) WithDailyPrice(cents int64) *CarBuilder {
	b.DailyPriceCents = cents
	return b
}

func (b *CarBuilder) WithStatus(status car.Status) *CarBuilder {
	s := string(status)
	b.AvailabilityStatus = &s
	return b
}

func (b *CarBuilder) WithMessage(msg string) *CarBuilder {
	b.AvailabilityMessage = &msg
	return b
}

func (b *CarBuilder) WithSoftLock(expiresAt time.Time) *CarBuilder {
	b.WithStatus(car.StatusSoftLocked)
	b.SoftLockExpiresAt = &expiresAt
	return b
}

func (b *CarBuilder) WithMaintenance() *CarBuilder {
	b.IsUnderMaintenance = true
	return b
}

func (b *CarBuilder) WithRented() *CarBuilder {
	b.IsRented = true
	return b
}
