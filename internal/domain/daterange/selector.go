package daterange

// State names a range by which endpoints are occupied.
type State int

const (
	Empty State = iota
	StartOnly
	Complete
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case StartOnly:
		return "start_only"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

// Range holds optional endpoints. When both are set, Start is never after End.
type Range struct {
	Start *Day `json:"start,omitempty"`
	End   *Day `json:"end,omitempty"`
}

// NewRange builds a normalized range; a reversed pair is swapped and an end without a start
// becomes the start.
func NewRange(start, end *Day) Range {
	switch {
	case start == nil && end == nil:
		return Range{}
	case start == nil:
		return Range{Start: copyDay(end)}
	case end == nil:
		return Range{Start: copyDay(start)}
	case end.Before(*start):
		return Range{Start: copyDay(end), End: copyDay(start)}
	default:
		return Range{Start: copyDay(start), End: copyDay(end)}
	}
}

func (r Range) State() State {
	switch {
	case r.Start == nil:
		return Empty
	case r.End == nil:
		return StartOnly
	default:
		return Complete
	}
}

// Span is the rental span in days of a complete range; a one-day range counts as one.
func (r Range) Span() int {
	if r.State() != Complete {
		return 0
	}
	n := r.Start.DaysUntil(*r.End)
	if n < 1 {
		return 1
	}
	return n
}

func (r Range) IsEndpoint(d Day) bool {
	return (r.Start != nil && *r.Start == d) || (r.End != nil && *r.End == d)
}

// Contains reports whether d lies strictly between the endpoints of a complete range.
func (r Range) Contains(d Day) bool {
	if r.State() != Complete {
		return false
	}
	return d.After(*r.Start) && d.Before(*r.End)
}

// Next is the whole selection state machine. Clicks on days before today never change the
// range; otherwise:
//
//	Empty              -> StartOnly(day)
//	Complete           -> StartOnly(day)
//	StartOnly, day<start -> Complete(day, start)
//	StartOnly, day>=start -> Complete(start, day)
func Next(r Range, day, today Day) Range {
	if day.Before(today) {
		return r
	}

	switch r.State() {
	case StartOnly:
		if day.Before(*r.Start) {
			return Range{Start: copyDay(&day), End: copyDay(r.Start)}
		}
		return Range{Start: copyDay(r.Start), End: copyDay(&day)}
	default:
		return Range{Start: copyDay(&day)}
	}
}

// Selector owns one session's range and gates it on the car being bookable.
type Selector struct {
	rng      Range
	today    Day
	bookable bool
}

func NewSelector(initial Range, today Day, bookable bool) *Selector {
	s := &Selector{
		rng:      NewRange(initial.Start, initial.End),
		today:    today,
		bookable: bookable,
	}
	if !bookable {
		s.rng = Range{}
	}
	return s
}

// Click applies one day click and reports whether the range changed.
func (s *Selector) Click(day Day) bool {
	if !s.bookable {
		return false
	}
	before := s.rng
	s.rng = Next(s.rng, day, s.today)
	return !sameRange(before, s.rng)
}

// SetBookable enables or disables selection. Losing bookability discards the range.
func (s *Selector) SetBookable(bookable bool) {
	s.bookable = bookable
	if !bookable {
		s.rng = Range{}
	}
}

func (s *Selector) SetToday(today Day) {
	s.today = today
}

func (s *Selector) Reset() {
	s.rng = Range{}
}

func (s *Selector) Range() Range {
	return Range{Start: copyDay(s.rng.Start), End: copyDay(s.rng.End)}
}

func (s *Selector) State() State    { return s.rng.State() }
func (s *Selector) Today() Day      { return s.today }
func (s *Selector) IsEnabled() bool { return s.bookable }

func copyDay(d *Day) *Day {
	if d == nil {
		return nil
	}
	c := *d
	return &c
}

func sameDay(a, b *Day) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameRange(a, b Range) bool {
	return sameDay(a.Start, b.Start) && sameDay(a.End, b.End)
}
