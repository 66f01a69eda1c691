// Package app is the root package of all domain related packages.
//
// All entity types are defined in this package.
package app

import "time"

// Default formats and sizes
const (
	DateFormat     = "2006.01.02"
	DateTimeFormat = "2006.01.02 15:04"
)

// EntityShort is a short representation of an entity.
type EntityShort[T comparable] struct {
	ID   T
	Name string
}

// Coordinates is a geographic position.
type Coordinates struct {
	Lat float64
	Lon float64
}

// Location is a geographic position with an optional display name.
type Location struct {
	Coordinates
	Name string
}

// IsZero reports whether the location has no coordinates set.
func (l Location) IsZero() bool {
	return l.Lat == 0 && l.Lon == 0
}

// VariableDateFormat returns a variable dateformat.
func VariableDateFormat(t time.Time) string {
	var dateFormat string
	if isToday(t) {
		dateFormat = "15:04"
	} else if t.Year() == time.Now().Year() {
		dateFormat = "Jan 2"
	} else {
		dateFormat = DateFormat
	}
	return dateFormat
}

func isToday(t time.Time) bool {
	n := time.Now()
	return t.Day() == n.Day() && t.Month() == n.Month() && t.Year() == n.Year()
}
