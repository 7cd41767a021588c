// Package reshape converts the API's column-oriented sections into
// row-oriented records and aggregates multi-model column sets into
// per-variable statistics.
package reshape

import (
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/models"
)

// Record is one time-step in row-oriented form.
type Record struct {
	Time   string
	Values map[string]models.Value
}

// AllNull reports whether every variable at this time-step is null.
// Common for flood discharge at riverless grid cells and satellite
// radiation outside coverage; such records render as an explicit
// "no data" marker instead of being dropped.
func (r Record) AllNull() bool {
	for _, v := range r.Values {
		if !v.Null {
			return false
		}
	}
	return len(r.Values) > 0
}

// Zip turns a section's parallel arrays into one record per time-step.
// Every variable array must match the time axis length exactly; a
// mismatch means a malformed response and is an error, never a silent
// truncation or padding.
func Zip(sec *models.Section) ([]Record, error) {
	n := len(sec.Time)
	for name, vals := range sec.Series {
		if len(vals) != n {
			return nil, errs.Upstreamf(
				"malformed response: series %q has %d values for %d time steps",
				name, len(vals), n)
		}
	}

	records := make([]Record, n)
	for i := 0; i < n; i++ {
		values := make(map[string]models.Value, len(sec.Series))
		for name, vals := range sec.Series {
			values[name] = vals[i]
		}
		records[i] = Record{Time: sec.Time[i], Values: values}
	}
	return records, nil
}

// DayGroup collects the consecutive records of one calendar day.
type DayGroup struct {
	Date    string
	Records []Record
}

// GroupByDay splits records into per-day groups keyed by the date part
// of the ISO timestamp. Input order is preserved; the API returns
// chronologically sorted arrays and they are not re-sorted here.
func GroupByDay(records []Record) []DayGroup {
	var groups []DayGroup
	for _, rec := range records {
		date := rec.Time
		if len(date) > 10 {
			date = date[:10]
		}
		if len(groups) == 0 || groups[len(groups)-1].Date != date {
			groups = append(groups, DayGroup{Date: date})
		}
		last := &groups[len(groups)-1]
		last.Records = append(last.Records, rec)
	}
	return groups
}
