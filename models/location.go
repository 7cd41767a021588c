package models

import "fmt"

// ResolvedLocation is a geocoded place: either the top hit for a city
// query or coordinates passed directly on the command line. It only lives
// long enough to build the request URL and annotate output headers.
type ResolvedLocation struct {
	Latitude   float64
	Longitude  float64
	Name       string
	Country    string
	Admin1     string
	Timezone   string
	Population int
	Elevation  float64
}

// Label formats the location for output headers: "Name, Country" when the
// place was geocoded, bare coordinates otherwise.
func (l ResolvedLocation) Label() string {
	if l.Name == "" {
		return fmt.Sprintf("%.4f, %.4f", l.Latitude, l.Longitude)
	}
	if l.Country == "" {
		return l.Name
	}
	return fmt.Sprintf("%s, %s", l.Name, l.Country)
}
