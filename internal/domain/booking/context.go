package booking

import "carrental-storefront/internal/domain/daterange"

// Context is the pickup/drop-off choice and date range of one prospective reservation.
// While SameLocation is set, DropoffLocationID always equals PickupLocationID.
type Context struct {
	PickupLocationID  int             `json:"pickupLocationId"`
	DropoffLocationID int             `json:"dropoffLocationId"`
	SameLocation      bool            `json:"sameLocation"`
	Dates             daterange.Range `json:"dates"`
}

func NewContext(pickupID, dropoffID int, sameLocation bool, dates daterange.Range) Context {
	c := Context{
		PickupLocationID:  pickupID,
		DropoffLocationID: dropoffID,
		SameLocation:      sameLocation,
		Dates:             dates,
	}
	c.sync()
	return c
}

func (c *Context) SetPickupLocation(id int) {
	c.PickupLocationID = id
	c.sync()
}

// SetDropoffLocation is ignored while SameLocation is set.
func (c *Context) SetDropoffLocation(id int) {
	if c.SameLocation {
		return
	}
	c.DropoffLocationID = id
}

func (c *Context) SetSameLocation(same bool) {
	c.SameLocation = same
	c.sync()
}

func (c *Context) SetDates(r daterange.Range) {
	c.Dates = r
}

func (c *Context) sync() {
	if c.SameLocation {
		c.DropoffLocationID = c.PickupLocationID
	}
}
