package validate

import (
	"fmt"
	"strings"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/models"
)

// dailySuffixes are the naming transforms the API applies when an hourly
// variable is rolled up to daily resolution. The scheme is irregular, so
// suggestions are derived by probing the endpoint's own tables with these
// suffixes rather than by a general rule.
var dailySuffixes = []string{"_max", "_min", "_mean", "_sum", "_dominant"}

// Suggest returns a corrective hint for a variable name that is invalid
// in the requested category, or "" when no deterministic correction
// exists. Every suggestion names a variable that actually exists in the
// endpoint's tables.
func Suggest(spec *endpoint.Spec, cat models.Category, name string) string {
	// A name that is valid where it was used needs no correction.
	if spec.HasVariable(cat, name) {
		return ""
	}

	// Hourly name used in a daily list: probe the daily table with the
	// known roll-up suffixes. These hints come first because they are
	// the most actionable correction.
	if cat == models.Daily {
		var hits []string
		for _, sfx := range dailySuffixes {
			if spec.HasVariable(models.Daily, name+sfx) {
				hits = append(hits, name+sfx)
			}
		}
		if len(hits) > 0 {
			return fmt.Sprintf("%q is not a daily variable for the %s; did you mean %s?",
				name, spec.Title, strings.Join(hits, ", "))
		}
	}

	// Daily name used in an hourly or current list: strip the roll-up
	// suffix and check the requested category for the base name.
	if cat == models.Hourly || cat == models.Current {
		for _, sfx := range dailySuffixes {
			base, found := strings.CutSuffix(name, sfx)
			if !found {
				continue
			}
			if spec.HasVariable(cat, base) {
				return fmt.Sprintf("%q is not valid in --%s-params for the %s; did you mean %q?",
					name, cat, spec.Title, base)
			}
		}
	}

	// Same name, different category.
	for _, other := range models.Categories {
		if other == cat {
			continue
		}
		if spec.HasVariable(other, name) {
			return fmt.Sprintf("%q is a %s variable for the %s; use --%s-params",
				name, other, spec.Title, other)
		}
	}

	return ""
}
