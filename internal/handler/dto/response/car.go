package response

import (
	"time"

	"carrental-storefront/internal/domain/car"
	"carrental-storefront/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CarResponse struct {
	ID              int64     `json:"id"`
	Make            string    `json:"make"`
	Model           string    `json:"model"`
	Name            string    `json:"name"`
	Year            int       `json:"year"`
	Category        string    `json:"category"`
	Transmission    string    `json:"transmission"`
	Seats           int       `json:"seats"`
	DailyPriceCents int64     `json:"dailyPriceCents"`
	Location        string    `json:"location"`
	ImageURLs       []string  `json:"imageUrls"`
	Features        []string  `json:"features"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// AdminCarResponse adds the raw status fields the availability is derived from.
type AdminCarResponse struct {
	CarResponse
	AvailabilityStatus  *string    `json:"availabilityStatus"`
	AvailabilityMessage *string    `json:"availabilityMessage"`
	SoftLockExpiresAt   *time.Time `json:"softLockExpiresAt"`
	IsUnderMaintenance  bool       `json:"isUnderMaintenance"`
	MaintenanceStatus   *string    `json:"maintenanceStatus"`
	IsRented            bool       `json:"isRented"`
	RentalStatus        *string    `json:"rentalStatus"`
}

type AvailabilityResponse struct {
	Status            string     `json:"status"`
	Message           string     `json:"message"`
	SoftLockExpiresAt *time.Time `json:"softLockExpiresAt,omitempty"`
	IsBookable        bool       `json:"isBookable"`
}

type FleetItemResponse struct {
	Car          CarResponse          `json:"car"`
	Availability AvailabilityResponse `json:"availability"`
}

func FromCar(c *car.Car) CarResponse {
	var out CarResponse
	_ = copier.Copy(&out, c)
	out.Name = c.DisplayName()
	if out.ImageURLs == nil {
		out.ImageURLs = []string{}
	}
	if out.Features == nil {
		out.Features = []string{}
	}
	return out
}

func FromCarAdmin(c *car.Car) AdminCarResponse {
	var out AdminCarResponse
	_ = copier.Copy(&out, c)
	out.CarResponse = FromCar(c)
	return out
}

func FromSnapshot(s car.Snapshot) AvailabilityResponse {
	return AvailabilityResponse{
		Status:            s.Status.String(),
		Message:           s.Message,
		SoftLockExpiresAt: s.SoftLockExpiresAt,
		IsBookable:        s.IsBookable(),
	}
}

func FromFleetItems(items []queries.FleetItem) []FleetItemResponse {
	out := make([]FleetItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FleetItemResponse{Car: FromCar(it.Car), Availability: FromSnapshot(it.Availability)})
	}
	return out
}
