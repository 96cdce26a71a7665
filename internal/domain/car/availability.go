package car

import (
	"strings"
	"time"

	"carrental-storefront/internal/pkg/sanitizer"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusSoftLocked  Status = "soft_locked"
	StatusBooked      Status = "booked"
	StatusMaintenance Status = "maintenance"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsKnown() bool {
	switch s {
	case StatusAvailable, StatusSoftLocked, StatusBooked, StatusMaintenance:
		return true
	default:
		return false
	}
}

var statusMessages = map[Status]string{
	StatusAvailable:   "Available for booking",
	StatusSoftLocked:  "Temporarily on hold while another customer completes a booking",
	StatusBooked:      "Currently rented out",
	StatusMaintenance: "Undergoing maintenance",
}

const unknownStatusMessage = "Currently unavailable"

// Snapshot is the derived, never stored, availability of a car at one instant.
type Snapshot struct {
	Status            Status
	Message           string
	SoftLockExpiresAt *time.Time
}

func (s Snapshot) IsBookable() bool {
	return s.Status == StatusAvailable
}

// Rule inspects a record and reports a status when it applies.
type Rule struct {
	Name  string
	Apply func(c *Car, now time.Time) (Status, bool)
}

// DefaultRules is the precedence chain: explicit status, maintenance, rented, available.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "explicit", Apply: explicitStatus},
		{Name: "maintenance", Apply: underMaintenance},
		{Name: "rented", Apply: rentedOut},
		{Name: "available", Apply: func(*Car, time.Time) (Status, bool) { return StatusAvailable, true }},
	}
}

type Resolver struct {
	rules []Rule
}

func NewResolver() *Resolver {
	return &Resolver{rules: DefaultRules()}
}

// NewResolverWithRules builds a resolver over a custom chain. The chain is evaluated in order
// and falls back to available if no rule applies.
func NewResolverWithRules(rules []Rule) *Resolver {
	r := make([]Rule, len(rules))
	copy(r, rules)
	return &Resolver{rules: r}
}

func (r *Resolver) Resolve(c *Car, now time.Time) Snapshot {
	status := StatusAvailable
	for _, rule := range r.rules {
		if s, ok := rule.Apply(c, now); ok {
			status = s
			break
		}
	}

	snap := Snapshot{
		Status:  status,
		Message: messageFor(c, status),
	}
	if status == StatusSoftLocked {
		at := *c.SoftLockExpiresAt
		snap.SoftLockExpiresAt = &at
	}
	return snap
}

func (r *Resolver) IsBookable(c *Car, now time.Time) bool {
	return r.Resolve(c, now).Status == StatusAvailable
}

// explicitStatus takes the record's own status verbatim. A soft lock only counts while its
// expiry is still ahead of now.
func explicitStatus(c *Car, now time.Time) (Status, bool) {
	if c.AvailabilityStatus == nil || sanitizer.IsBlank(*c.AvailabilityStatus) {
		return "", false
	}
	s := Status(strings.TrimSpace(*c.AvailabilityStatus))
	if s == StatusSoftLocked && (c.SoftLockExpiresAt == nil || !c.SoftLockExpiresAt.After(now)) {
		return "", false
	}
	return s, true
}

func underMaintenance(c *Car, _ time.Time) (Status, bool) {
	if c.IsUnderMaintenance || matches(c.MaintenanceStatus, "maintenance", "in_maintenance", "under_maintenance") {
		return StatusMaintenance, true
	}
	return "", false
}

func rentedOut(c *Car, _ time.Time) (Status, bool) {
	if c.IsRented || matches(c.RentalStatus, "rented", "booked", "occupied", "in_use") {
		return StatusBooked, true
	}
	return "", false
}

func matches(field *string, values ...string) bool {
	if field == nil {
		return false
	}
	v := strings.ReplaceAll(sanitizer.NormalizeLabel(*field), " ", "_")
	for _, want := range values {
		if v == want {
			return true
		}
	}
	return false
}

// messageFor prefers the record's own message, except when it belongs to a lapsed soft lock.
func messageFor(c *Car, status Status) string {
	lapsed := c.AvailabilityStatus != nil &&
		Status(strings.TrimSpace(*c.AvailabilityStatus)) == StatusSoftLocked &&
		status != StatusSoftLocked
	if !lapsed && c.AvailabilityMessage != nil && !sanitizer.IsBlank(*c.AvailabilityMessage) {
		return strings.TrimSpace(*c.AvailabilityMessage)
	}
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return unknownStatusMessage
}
