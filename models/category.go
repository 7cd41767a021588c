package models

import "fmt"

// Category identifies the time granularity of a variable or response
// section. It is a closed enumeration: every switch over Category in this
// codebase is exhaustive, so adding a category is a compile-time change.
type Category int

const (
	Current Category = iota
	Hourly
	Daily
)

// Categories lists every category in display order.
var Categories = []Category{Current, Hourly, Daily}

// String returns the category name as used in API query parameters and
// response keys ("current", "hourly", "daily").
func (c Category) String() string {
	switch c {
	case Current:
		return "current"
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory converts a category name to its Category value.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "current":
		return Current, nil
	case "hourly":
		return Hourly, nil
	case "daily":
		return Daily, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}
