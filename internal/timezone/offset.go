package timezone

import "fmt"

// Offset is a UTC offset counted in quarter hours, so partial-hour zones stay exact
type Offset int

const (
	// Quarter is a fifteen minute offset
	Quarter Offset = 1
	// Hour is a one hour offset
	Hour Offset = 4 * Quarter
)

// MinutesPerQuarter is the length of one Offset tick
const MinutesPerQuarter = 15

// Hours returns the offset as a possibly fractional number of hours
func (o Offset) Hours() float64 {
	return float64(o) / float64(Hour)
}

// Minutes returns the offset in whole minutes
func (o Offset) Minutes() int {
	return int(o) * MinutesPerQuarter
}

// String renders the offset as ±HH:MM
func (o Offset) String() string {
	sign := '+'
	m := o.Minutes()
	if m < 0 {
		sign = '-'
		m = -m
	}
	return fmt.Sprintf("%c%02d:%02d", sign, m/60, m%60)
}
