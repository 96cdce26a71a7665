package car

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyMake          = errors.New("car make cannot be empty")
	ErrEmptyModel         = errors.New("car model cannot be empty")
	ErrNonPositivePrice   = errors.New("daily price must be positive")
	ErrInvalidYear        = errors.New("car year is out of range")
	ErrSoftLockNoDeadline = errors.New("soft lock requires an expiry")
)

const (
	MinYear = 1950
	MaxYear = 2100
)

// Car is the upstream car record as the storefront receives it. Status fields are raw:
// availability is derived from them by Resolver, never stored.
type Car struct {
	ID              int64
	Make            string
	Model           string
	Year            int
	Category        string
	Transmission    string
	Seats           int
	DailyPriceCents int64
	Location        string
	ImageURLs       []string
	Features        []string

	AvailabilityStatus  *string
	AvailabilityMessage *string
	SoftLockExpiresAt   *time.Time

	IsUnderMaintenance bool
	MaintenanceStatus  *string
	IsRented           bool
	RentalStatus       *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Car) DisplayName() string {
	return strings.TrimSpace(c.Make + " " + c.Model)
}

// Validate checks the fields an admin write must carry.
func (c *Car) Validate() error {
	if strings.TrimSpace(c.Make) == "" {
		return ErrEmptyMake
	}
	if strings.TrimSpace(c.Model) == "" {
		return ErrEmptyModel
	}
	if c.DailyPriceCents <= 0 {
		return ErrNonPositivePrice
	}
	if c.Year < MinYear || c.Year > MaxYear {
		return ErrInvalidYear
	}
	if c.AvailabilityStatus != nil && Status(strings.TrimSpace(*c.AvailabilityStatus)) == StatusSoftLocked && c.SoftLockExpiresAt == nil {
		return ErrSoftLockNoDeadline
	}
	return nil
}
