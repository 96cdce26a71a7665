package daterange

import "time"

// Cell is the derived rendering state of one calendar day. Nothing here is stored.
type Cell struct {
	Date               Day          `json:"date"`
	Weekday            time.Weekday `json:"weekday"`
	IsToday            bool         `json:"isToday"`
	IsPast             bool         `json:"isPast"`
	IsSelectedEndpoint bool         `json:"isSelectedEndpoint"`
	IsInRange          bool         `json:"isInRange"`
	Selectable         bool         `json:"selectable"`
}

func CellFor(d Day, r Range, today Day, enabled bool) Cell {
	past := d.Before(today)
	return Cell{
		Date:               d,
		Weekday:            d.Weekday(),
		IsToday:            d == today,
		IsPast:             past,
		IsSelectedEndpoint: r.IsEndpoint(d),
		IsInRange:          r.Contains(d),
		Selectable:         enabled && !past,
	}
}

// Month derives one cell per day of the given month.
func Month(year int, month time.Month, r Range, today Day, enabled bool) []Cell {
	first := NewDay(year, month, 1)
	cells := make([]Cell, 0, 31)
	for d := first; d.Month() == first.Month(); d = d.AddDays(1) {
		cells = append(cells, CellFor(d, r, today, enabled))
	}
	return cells
}

// Month renders the selector's current range.
func (s *Selector) Month(year int, month time.Month) []Cell {
	return Month(year, month, s.rng, s.today, s.bookable)
}
