package render

import (
	"fmt"
	"io"

	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/reshape"
)

// renderPorcelain flattens the response to one key=value line per datum:
// section.timestampOrIndex.variable=value. Nulls map to the empty string.
// Variable order inside a time-step is sorted so output is stable.
func renderPorcelain(w io.Writer, doc *Document) error {
	r := doc.Resp

	if r.Elevations != nil {
		for i, e := range r.Elevations {
			fmt.Fprintf(w, "elevation.%d=%s\n", i, number(e))
		}
		return nil
	}

	fmt.Fprintf(w, "latitude=%s\n", number(r.Latitude))
	fmt.Fprintf(w, "longitude=%s\n", number(r.Longitude))
	if r.Timezone != "" {
		fmt.Fprintf(w, "timezone=%s\n", r.Timezone)
	}
	if doc.Location.Name != "" {
		fmt.Fprintf(w, "location=%s\n", doc.Location.Label())
	}

	if r.Current != nil {
		for _, name := range r.Current.VariableNames() {
			fmt.Fprintf(w, "current.%s.%s=%s\n", r.Current.Time, name,
				r.Current.Values[name].Text())
		}
	}
	if r.Hourly != nil {
		if err := porcelainSection(w, "hourly", r.Hourly); err != nil {
			return err
		}
	}
	if r.Daily != nil {
		if err := porcelainSection(w, "daily", r.Daily); err != nil {
			return err
		}
	}
	return nil
}

func porcelainSection(w io.Writer, label string, sec *models.Section) error {
	records, err := reshape.Zip(sec)
	if err != nil {
		return err
	}
	names := sec.VariableNames()
	for _, rec := range records {
		for _, name := range names {
			fmt.Fprintf(w, "%s.%s.%s=%s\n", label, rec.Time, name, rec.Values[name].Text())
		}
	}
	return nil
}
