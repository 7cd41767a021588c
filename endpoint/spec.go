// Package endpoint holds the static descriptor for every API endpoint the
// CLI knows: base URL, the variables each time category accepts, default
// variable lists, model allow-lists and numeric bounds. The tables are
// immutable; commands look their spec up by name at dispatch time.
package endpoint

import (
	"github.com/lstpsche/openmeteo-cli/models"
)

// Spec describes one upstream endpoint.
type Spec struct {
	// Name is the subcommand name.
	Name string
	// Title is the human endpoint name used in error messages.
	Title string
	// BaseURL is the full request URL before query parameters.
	BaseURL string

	// HourlyVars/DailyVars/CurrentVars list the accepted variables per
	// category. An empty list means the endpoint has no such category.
	HourlyVars  []string
	DailyVars   []string
	CurrentVars []string

	// Default variables requested when the caller names none.
	DefaultHourly  []string
	DefaultDaily   []string
	DefaultCurrent []string

	// Models is the allow-list for --models; empty when the endpoint
	// takes no model selector.
	Models []string

	// MultiModel marks endpoints whose responses carry one column-set
	// per model or ensemble member and need aggregation.
	MultiModel bool
	// EnsembleMembers marks responses using _memberNN column suffixes.
	EnsembleMembers bool
	// EnsembleOption marks endpoints where --ensemble switches the
	// response to per-member columns.
	EnsembleOption bool
	// ModelsRequired marks endpoints that reject requests without --models.
	ModelsRequired bool

	// MaxForecastDays bounds --forecast-days (0 = flag not accepted).
	MaxForecastDays int
	// MaxPastDays bounds --past-days (0 = flag not accepted).
	MaxPastDays int
	// MinDate/MaxDate bound --start-date/--end-date ("" = unbounded).
	MinDate string
	MaxDate string
	// DatesRequired marks endpoints that only work with an explicit range.
	DatesRequired bool
}

// Variables returns the allowed variable names for a category.
func (s *Spec) Variables(c models.Category) []string {
	switch c {
	case models.Current:
		return s.CurrentVars
	case models.Hourly:
		return s.HourlyVars
	case models.Daily:
		return s.DailyVars
	}
	return nil
}

// Defaults returns the default variable list for a category.
func (s *Spec) Defaults(c models.Category) []string {
	switch c {
	case models.Current:
		return s.DefaultCurrent
	case models.Hourly:
		return s.DefaultHourly
	case models.Daily:
		return s.DefaultDaily
	}
	return nil
}

// HasCategory reports whether the endpoint serves the category at all.
func (s *Spec) HasCategory(c models.Category) bool {
	return len(s.Variables(c)) > 0
}

// HasVariable reports whether name is a valid variable in the category.
func (s *Spec) HasVariable(c models.Category, name string) bool {
	for _, v := range s.Variables(c) {
		if v == name {
			return true
		}
	}
	return false
}

// HasModel reports whether name is in the endpoint's model allow-list.
func (s *Spec) HasModel(name string) bool {
	for _, m := range s.Models {
		if m == name {
			return true
		}
	}
	return false
}

// ByName looks an endpoint spec up by subcommand name.
func ByName(name string) (*Spec, bool) {
	s, ok := registry[name]
	return s, ok
}

// All returns every endpoint spec in registration order.
func All() []*Spec {
	return ordered
}
