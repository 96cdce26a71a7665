package booking

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"carrental-storefront/internal/domain/daterange"
	"carrental-storefront/internal/domain/location"
	"carrental-storefront/internal/pkg/sanitizer"
)

// Query parameter names read at page entry and written on confirmation.
const (
	ParamCarID             = "carId"
	ParamPickupDate        = "pickupDate"
	ParamDropoffDate       = "dropoffDate"
	ParamPickup            = "pickup"
	ParamDropoff           = "dropoff"
	ParamPickupLocationID  = "pickupLocationId"
	ParamDropoffLocationID = "dropoffLocationId"
	ParamSameLocation      = "sameLocation"
)

// InstantLayout is how dates leave the service: UTC, millisecond precision, Z suffix.
const InstantLayout = "2006-01-02T15:04:05.000Z"

var bareDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateTimeLayouts are tried in order for anything that is not a bare calendar date.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	"Mon Jan 02 2006 15:04:05 GMT-0700",
	"Mon Jan 02 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2006/01/02",
	"01/02/2006",
}

// Resolution is the context built from a query string, plus whether the query named a
// location at all.
type Resolution struct {
	Context Context
	// ExplicitLocation is set when any of pickup, dropoff, pickupLocationId or
	// dropoffLocationId arrived non-blank. It suppresses adopting the car's location.
	ExplicitLocation bool
}

// locationAttempt returns a location id, or false to pass to the next attempt.
type locationAttempt func(q url.Values) (int, bool)

type Resolver struct {
	dir *location.Directory
	loc *time.Location
}

// NewResolver reads bare dates as calendar days in loc.
func NewResolver(dir *location.Directory, loc *time.Location) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return &Resolver{dir: dir, loc: loc}
}

func (r *Resolver) Directory() *location.Directory { return r.dir }
func (r *Resolver) TimeZone() *time.Location       { return r.loc }

// FromQuery builds the initial context. Malformed values fall back rather than fail.
func (r *Resolver) FromQuery(q url.Values) Resolution {
	pickupID := r.first(q,
		r.byIDParam(ParamPickupLocationID),
		r.byTextParam(ParamPickup),
		r.byDefault(),
	)

	dropoffID := r.first(q,
		r.byIDParam(ParamDropoffLocationID),
		r.byTextParam(ParamDropoff),
		func(url.Values) (int, bool) { return pickupID, true },
	)

	start := r.ParseDate(q.Get(ParamPickupDate))
	end := r.ParseDate(q.Get(ParamDropoffDate))

	return Resolution{
		Context:          NewContext(pickupID, dropoffID, ParseSameLocation(q.Get(ParamSameLocation)), daterange.NewRange(start, end)),
		ExplicitLocation: hasAny(q, ParamPickup, ParamDropoff, ParamPickupLocationID, ParamDropoffLocationID),
	}
}

// AdoptCarLocation points the context at the location matching the car's recorded location
// text. It does nothing when the query named a location or the text matches nothing.
func (r *Resolver) AdoptCarLocation(res *Resolution, carLocation string) bool {
	if res.ExplicitLocation {
		return false
	}
	loc, ok := r.dir.ResolveByText(carLocation)
	if !ok {
		return false
	}
	res.Context.SetPickupLocation(loc.ID)
	if !res.Context.SameLocation {
		res.Context.DropoffLocationID = loc.ID
	}
	return true
}

// Encode serializes the context for the checkout step.
func (r *Resolver) Encode(carID int64, c Context) url.Values {
	v := url.Values{}
	v.Set(ParamCarID, strconv.FormatInt(carID, 10))
	if c.Dates.Start != nil {
		v.Set(ParamPickupDate, r.FormatInstant(*c.Dates.Start))
	}
	if c.Dates.End != nil {
		v.Set(ParamDropoffDate, r.FormatInstant(*c.Dates.End))
	}
	v.Set(ParamPickupLocationID, strconv.Itoa(c.PickupLocationID))
	v.Set(ParamSameLocation, strconv.FormatBool(c.SameLocation))
	if !c.SameLocation {
		v.Set(ParamDropoffLocationID, strconv.Itoa(c.DropoffLocationID))
	}
	return v
}

// FormatInstant renders local midnight of d as a UTC instant.
func (r *Resolver) FormatInstant(d daterange.Day) string {
	return d.Time(r.loc).UTC().Format(InstantLayout)
}

// ParseDate returns nil for blank or unparseable input.
func (r *Resolver) ParseDate(raw string) *daterange.Day {
	s := sanitizer.TrimAndNormalize(raw)
	if s == "" {
		return nil
	}
	if bareDate.MatchString(s) {
		d, err := daterange.ParseDay(s)
		if err != nil {
			return nil
		}
		return &d
	}
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, s, r.loc)
		if err == nil {
			d := daterange.DayOf(t, r.loc)
			return &d
		}
	}
	return nil
}

// ParseSameLocation is true unless raw is "false" or "0", ignoring case.
func ParseSameLocation(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "false", "0":
		return false
	default:
		return true
	}
}

func (r *Resolver) first(q url.Values, attempts ...locationAttempt) int {
	for _, attempt := range attempts {
		if id, ok := attempt(q); ok {
			return id
		}
	}
	return r.dir.Default().ID
}

func (r *Resolver) byIDParam(name string) locationAttempt {
	return func(q url.Values) (int, bool) {
		raw := q.Get(name)
		if !r.dir.IsValidID(raw) {
			return 0, false
		}
		id, _ := strconv.Atoi(strings.TrimSpace(raw))
		return id, true
	}
}

func (r *Resolver) byTextParam(name string) locationAttempt {
	return func(q url.Values) (int, bool) {
		loc, ok := r.dir.ResolveByText(q.Get(name))
		return loc.ID, ok
	}
}

func (r *Resolver) byDefault() locationAttempt {
	return func(url.Values) (int, bool) {
		return r.dir.Default().ID, true
	}
}

func hasAny(q url.Values, names ...string) bool {
	for _, name := range names {
		if !sanitizer.IsBlank(q.Get(name)) {
			return true
		}
	}
	return false
}
