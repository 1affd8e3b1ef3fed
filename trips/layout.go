package trips

import "fmt"

// Layout fixes which 0-based field indices carry the pickup zone and the
// date-time for one dataset format variant. The variant is chosen explicitly
// by name per invocation, never auto-detected from the data.
type Layout struct {
	Name           string
	Header         bool  // first line is read and discarded unconditionally
	ZoneField      int   // index of the pickup zone field
	DateTimeFields []int // candidate indices tried in order, first extractable hour wins
}

// LayoutMinimal is the header-less variant: zone in field 1, date-time in
// field 2, falling back to field 3 for the wider shape that inserts a
// dropoff zone before it.
var LayoutMinimal = Layout{
	Name:           "minimal",
	ZoneField:      1,
	DateTimeFields: []int{2, 3},
}

// LayoutHeadered is the six-column export shape (trip id, pickup zone,
// dropoff zone, pickup date-time, distance, fare). The header line is always
// present and always discarded.
var LayoutHeadered = Layout{
	Name:           "headered",
	Header:         true,
	ZoneField:      1,
	DateTimeFields: []int{3},
}

// LayoutByName resolves a layout from its config/flag name.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case LayoutMinimal.Name:
		return LayoutMinimal, nil
	case LayoutHeadered.Name:
		return LayoutHeadered, nil
	}
	return Layout{}, fmt.Errorf("unknown layout %q", name)
}
