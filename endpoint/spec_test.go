package endpoint

import (
	"testing"

	"github.com/lstpsche/openmeteo-cli/models"
)

func TestRegistryLookup(t *testing.T) {
	names := []string{
		"forecast", "geocoding", "historical", "ensemble", "climate",
		"marine", "air-quality", "flood", "elevation", "satellite",
	}
	for _, name := range names {
		spec, ok := ByName(name)
		if !ok {
			t.Fatalf("missing endpoint %q", name)
		}
		if spec.Name != name {
			t.Errorf("spec name %q under key %q", spec.Name, name)
		}
		if spec.BaseURL == "" {
			t.Errorf("%s has no base URL", name)
		}
	}
	if _, ok := ByName("moon"); ok {
		t.Error("unexpected endpoint")
	}
	if len(All()) != len(names) {
		t.Errorf("All() returned %d specs, want %d", len(All()), len(names))
	}
}

func TestCategoryShapes(t *testing.T) {
	cases := []struct {
		name    string
		hourly  bool
		daily   bool
		current bool
	}{
		{"forecast", true, true, true},
		{"historical", true, true, false},
		{"ensemble", true, false, false},
		{"climate", false, true, false},
		{"marine", true, true, true},
		{"air-quality", true, false, true},
		{"flood", false, true, false},
		{"elevation", false, false, false},
		{"satellite", true, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, _ := ByName(tc.name)
			if got := spec.HasCategory(models.Hourly); got != tc.hourly {
				t.Errorf("hourly = %v, want %v", got, tc.hourly)
			}
			if got := spec.HasCategory(models.Daily); got != tc.daily {
				t.Errorf("daily = %v, want %v", got, tc.daily)
			}
			if got := spec.HasCategory(models.Current); got != tc.current {
				t.Errorf("current = %v, want %v", got, tc.current)
			}
		})
	}
}

func TestDefaultsAreValidVariables(t *testing.T) {
	for _, spec := range All() {
		for _, cat := range models.Categories {
			for _, def := range spec.Defaults(cat) {
				if !spec.HasVariable(cat, def) {
					t.Errorf("%s: default %s variable %q not in the allow-list",
						spec.Name, cat, def)
				}
			}
		}
	}
}

func TestMultiModelEndpointsRequireModels(t *testing.T) {
	for _, spec := range All() {
		if spec.MultiModel && len(spec.Models) == 0 {
			t.Errorf("%s is multi-model but has no model allow-list", spec.Name)
		}
		if spec.ModelsRequired && !spec.MultiModel {
			t.Errorf("%s requires models but is not marked multi-model", spec.Name)
		}
	}
}

func TestFloodAggregation(t *testing.T) {
	spec, _ := ByName("flood")
	if !spec.MultiModel {
		t.Error("flood responses carry per-model columns and must aggregate")
	}
	if !spec.EnsembleOption {
		t.Error("flood must offer the --ensemble per-member switch")
	}
	if spec.ModelsRequired {
		t.Error("flood works without --models (seamless default)")
	}
}

func TestForecastDayBounds(t *testing.T) {
	bounds := map[string]int{
		"forecast": 16, "ensemble": 35, "flood": 210, "marine": 8,
		"air-quality": 7, "satellite": 1,
	}
	for name, want := range bounds {
		spec, _ := ByName(name)
		if spec.MaxForecastDays != want {
			t.Errorf("%s MaxForecastDays = %d, want %d", name, spec.MaxForecastDays, want)
		}
	}
}

func TestClimateDateWindow(t *testing.T) {
	spec, _ := ByName("climate")
	if spec.MinDate != "1950-01-01" || spec.MaxDate != "2050-12-31" {
		t.Errorf("climate window = %s..%s", spec.MinDate, spec.MaxDate)
	}
	if !spec.DatesRequired {
		t.Error("climate must require an explicit date range")
	}
}
