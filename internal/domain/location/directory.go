package location

import (
	"errors"
	"strconv"
	"strings"

	"carrental-storefront/internal/pkg/sanitizer"
)

var (
	ErrEmptyTable       = errors.New("location table is empty")
	ErrNonPositiveID    = errors.New("location id must be positive")
	ErrDuplicateID      = errors.New("duplicate location id")
	ErrUnknownDefaultID = errors.New("default location id is not in the table")
)

// Directory is an immutable, ordered registry of pickup and drop-off locations.
type Directory struct {
	locations []Location
	byID      map[int]int
	defaultID int
}

func NewDirectory(table []Location, defaultID int) (*Directory, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}

	locations := make([]Location, len(table))
	copy(locations, table)

	byID := make(map[int]int, len(locations))
	for i, loc := range locations {
		if loc.ID <= 0 {
			return nil, ErrNonPositiveID
		}
		if _, dup := byID[loc.ID]; dup {
			return nil, ErrDuplicateID
		}
		byID[loc.ID] = i
	}

	if _, ok := byID[defaultID]; !ok {
		return nil, ErrUnknownDefaultID
	}

	return &Directory{
		locations: locations,
		byID:      byID,
		defaultID: defaultID,
	}, nil
}

// All returns a copy of the table in declared order.
func (d *Directory) All() []Location {
	out := make([]Location, len(d.locations))
	copy(out, d.locations)
	return out
}

func (d *Directory) Default() Location {
	return d.locations[d.byID[d.defaultID]]
}

func (d *Directory) ResolveByID(id int) (Location, bool) {
	i, ok := d.byID[id]
	if !ok {
		return Location{}, false
	}
	return d.locations[i], true
}

// ResolveByText matches query against each location's name, address, or "name - address"
// label after trimming, collapsing whitespace and lower-casing both sides. The first
// location in declared order wins.
func (d *Directory) ResolveByText(query string) (Location, bool) {
	q := sanitizer.NormalizeLabel(query)
	if q == "" {
		return Location{}, false
	}
	for _, loc := range d.locations {
		if sanitizer.NormalizeLabel(loc.Name) == q ||
			sanitizer.NormalizeLabel(loc.Address) == q ||
			sanitizer.NormalizeLabel(loc.Label()) == q {
			return loc, true
		}
	}
	return Location{}, false
}

// IsValidID reports whether an externally supplied identifier names a known location.
func (d *Directory) IsValidID(value string) bool {
	id, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || id <= 0 {
		return false
	}
	_, ok := d.byID[id]
	return ok
}
