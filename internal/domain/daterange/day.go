package daterange

import (
	"encoding/json"
	"errors"
	"time"
)

const DayLayout = "2006-01-02"

var ErrInvalidDay = errors.New("invalid calendar day")

// Day is a calendar date with no time-of-day, so comparisons are exact-day comparisons.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay normalizes out-of-range parts the way time.Date does (e.g. June 31 becomes July 1).
func NewDay(year int, month time.Month, day int) Day {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

// DayOf truncates t to its calendar date as observed in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	if loc != nil {
		t = t.In(loc)
	}
	return Day{year: t.Year(), month: t.Month(), day: t.Day()}
}

func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, ErrInvalidDay
	}
	return DayOf(t, nil), nil
}

func (d Day) Year() int             { return d.year }
func (d Day) Month() time.Month     { return d.month }
func (d Day) Day() int              { return d.day }
func (d Day) IsZero() bool          { return d == Day{} }
func (d Day) Weekday() time.Weekday { return d.utc().Weekday() }

// Time is midnight of d in loc.
func (d Day) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

func (d Day) utc() time.Time {
	return d.Time(time.UTC)
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool  { return d.Compare(o) > 0 }

func (d Day) Compare(o Day) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

// DaysUntil is the number of calendar days from d to o, negative when o is earlier.
func (d Day) DaysUntil(o Day) int {
	return int(o.utc().Sub(d.utc()) / (24 * time.Hour))
}

func (d Day) String() string {
	return d.utc().Format(DayLayout)
}

func (d Day) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Day) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return ErrInvalidDay
	}
	parsed, err := ParseDay(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
