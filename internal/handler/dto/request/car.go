package request

import (
	"strings"
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/pkg/patch"
	"carrental-storefront/internal/pkg/sanitizer"
)

type CreateCarRequest struct {
	Make            string   `json:"make" binding:"required,max=64"`
	Model           string   `json:"model" binding:"required,max=64"`
	Year            int      `json:"year" binding:"required,min=1950,max=2100"`
	Category        string   `json:"category" binding:"omitempty,max=32"`
	Transmission    string   `json:"transmission" binding:"omitempty,oneof=automatic manual"`
	Seats           int      `json:"seats" binding:"omitempty,min=1,max=60"`
	DailyPriceCents int64    `json:"dailyPriceCents" binding:"required,gt=0"`
	Location        string   `json:"location" binding:"required,max=128"`
	ImageURLs       []string `json:"imageUrls" binding:"omitempty,dive,url"`
	Features        []string `json:"features" binding:"omitempty,dive,max=64"`
}

func (r CreateCarRequest) ToDomain() *car.Car {
	return &car.Car{
		Make:            sanitizer.TrimAndNormalize(r.Make),
		Model:           sanitizer.TrimAndNormalize(r.Model),
		Year:            r.Year,
		Category:        sanitizer.TrimAndNormalize(r.Category),
		Transmission:    strings.ToLower(strings.TrimSpace(r.Transmission)),
		Seats:           r.Seats,
		DailyPriceCents: r.DailyPriceCents,
		Location:        sanitizer.TrimAndNormalize(r.Location),
		ImageURLs:       r.ImageURLs,
		Features:        r.Features,
	}
}

// UpdateCarRequest is a partial update: nil fields are left alone. SoftLock true places a
// hold for the configured duration unless SoftLockExpiresAt says otherwise; false lifts it.
type UpdateCarRequest struct {
	Make                *string    `json:"make,omitempty" binding:"omitempty,min=1,max=64"`
	Model               *string    `json:"model,omitempty" binding:"omitempty,min=1,max=64"`
	Year                *int       `json:"year,omitempty" binding:"omitempty,min=1950,max=2100"`
	Category            *string    `json:"category,omitempty" binding:"omitempty,max=32"`
	Transmission        *string    `json:"transmission,omitempty" binding:"omitempty,oneof=automatic manual"`
	Seats               *int       `json:"seats,omitempty" binding:"omitempty,min=1,max=60"`
	DailyPriceCents     *int64     `json:"dailyPriceCents,omitempty" binding:"omitempty,gt=0"`
	Location            *string    `json:"location,omitempty" binding:"omitempty,max=128"`
	ImageURLs           *[]string  `json:"imageUrls,omitempty"`
	Features            *[]string  `json:"features,omitempty"`
	AvailabilityStatus  *string    `json:"availabilityStatus,omitempty" binding:"omitempty,car_status"`
	AvailabilityMessage *string    `json:"availabilityMessage,omitempty" binding:"omitempty,max=256"`
	IsUnderMaintenance  *bool      `json:"isUnderMaintenance,omitempty"`
	MaintenanceStatus   *string    `json:"maintenanceStatus,omitempty" binding:"omitempty,max=32"`
	IsRented            *bool      `json:"isRented,omitempty"`
	RentalStatus        *string    `json:"rentalStatus,omitempty" binding:"omitempty,max=32"`
	SoftLock            *bool      `json:"softLock,omitempty"`
	SoftLockExpiresAt   *time.Time `json:"softLockExpiresAt,omitempty"`
}

// ApplyTo copies the set fields onto c. Hold handling is left to the caller.
func (r UpdateCarRequest) ApplyTo(c *car.Car) {
	patch.Apply(&c.Make, trimmed(r.Make))
	patch.Apply(&c.Model, trimmed(r.Model))
	patch.Apply(&c.Year, r.Year)
	patch.Apply(&c.Category, trimmed(r.Category))
	patch.Apply(&c.Transmission, trimmed(r.Transmission))
	patch.Apply(&c.Seats, r.Seats)
	patch.Apply(&c.DailyPriceCents, r.DailyPriceCents)
	patch.Apply(&c.Location, trimmed(r.Location))
	patch.Apply(&c.ImageURLs, r.ImageURLs)
	patch.Apply(&c.Features, r.Features)
	patch.Apply(&c.IsUnderMaintenance, r.IsUnderMaintenance)
	patch.Apply(&c.IsRented, r.IsRented)

	if r.AvailabilityStatus != nil {
		c.AvailabilityStatus = sanitizer.OptionalText(r.AvailabilityStatus)
	}
	if r.AvailabilityMessage != nil {
		c.AvailabilityMessage = sanitizer.OptionalText(r.AvailabilityMessage)
	}
	if r.MaintenanceStatus != nil {
		c.MaintenanceStatus = sanitizer.OptionalText(r.MaintenanceStatus)
	}
	if r.RentalStatus != nil {
		c.RentalStatus = sanitizer.OptionalText(r.RentalStatus)
	}
	if r.SoftLockExpiresAt != nil {
		at := r.SoftLockExpiresAt.UTC()
		c.SoftLockExpiresAt = &at
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := sanitizer.TrimAndNormalize(*s)
	return &v
}
