package location

import "fmt"

type Location struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Label is the "name - address" form shown in location pickers.
func (l Location) Label() string {
	return fmt.Sprintf("%s - %s", l.Name, l.Address)
}

// DefaultTable is the storefront's pickup and drop-off network, in display order.
func DefaultTable() []Location {
	return []Location{
		{ID: 1, Name: "JKIA", Address: "Jomo Kenyatta International Airport, Nairobi"},
		{ID: 2, Name: "Westlands", Address: "Westlands Square, Nairobi"},
		{ID: 3, Name: "Karen", Address: "The Hub Karen, Dagoretti Road"},
		{ID: 4, Name: "Nairobi CBD", Address: "Kenyatta Avenue, Nairobi"},
		{ID: 5, Name: "Kilimani", Address: "Yaya Centre, Argwings Kodhek Road"},
		{ID: 6, Name: "Wilson Airport", Address: "Langata Road, Nairobi"},
		{ID: 7, Name: "Mombasa", Address: "Moi International Airport, Mombasa"},
	}
}
