package validate

import (
	"strings"
	"testing"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/models"
)

// Every suggestion must name a variable that exists in the endpoint's own
// tables; a hint pointing at a nonexistent name is worse than no hint.
func TestSuggestionsNameExistingVariables(t *testing.T) {
	for _, spec := range endpoint.All() {
		for _, wrongCat := range models.Categories {
			// Feed every variable of every other category into wrongCat.
			for _, sourceCat := range models.Categories {
				if sourceCat == wrongCat {
					continue
				}
				for _, name := range spec.Variables(sourceCat) {
					if spec.HasVariable(wrongCat, name) {
						continue // legitimately valid in both
					}
					hint := Suggest(spec, wrongCat, name)
					if hint == "" {
						continue
					}
					assertHintNamesExistingVariable(t, spec, hint, name)
				}
			}
		}
	}
}

// assertHintNamesExistingVariable checks that at least one quoted or
// comma-listed name in the hint exists somewhere in the endpoint's tables.
func assertHintNamesExistingVariable(t *testing.T, spec *endpoint.Spec, hint, original string) {
	t.Helper()
	for _, cat := range models.Categories {
		for _, v := range spec.Variables(cat) {
			if v != original && strings.Contains(hint, v) {
				return
			}
		}
		// The cross-category case suggests the original name itself under
		// a different category flag.
		if spec.HasVariable(cat, original) && strings.Contains(hint, string('-')+cat.String()) {
			return
		}
		if spec.HasVariable(cat, original) && strings.Contains(hint, cat.String()) {
			return
		}
	}
	t.Errorf("%s: hint %q names no existing variable", spec.Name, hint)
}

func TestSuggestCrossCategory(t *testing.T) {
	forecast, _ := endpoint.ByName("forecast")

	cases := []struct {
		name     string
		cat      models.Category
		variable string
		contains string
	}{
		{"hourly name in daily list", models.Daily, "visibility", "hourly"},
		{"daily max in hourly list", models.Hourly, "temperature_2m_max", "temperature_2m"},
		{"hourly name with rollup forms", models.Daily, "temperature_2m", "temperature_2m_max"},
		{"unknown everywhere", models.Daily, "nonexistent_thing", ""},
		{"valid hourly name", models.Hourly, "temperature_2m", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hint := Suggest(forecast, tc.cat, tc.variable)
			if tc.contains == "" {
				if hint != "" {
					t.Errorf("unexpected hint: %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tc.contains) {
				t.Errorf("hint %q does not mention %q", hint, tc.contains)
			}
		})
	}
}

func TestSuggestDailyRollupForms(t *testing.T) {
	forecast, _ := endpoint.ByName("forecast")
	hint := Suggest(forecast, models.Daily, "wind_speed_10m")
	if !strings.Contains(hint, "wind_speed_10m_max") {
		t.Errorf("expected wind_speed_10m_max in hint, got %q", hint)
	}
}
