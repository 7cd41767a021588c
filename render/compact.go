package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/reshape"
)

// renderCompact emits one metadata line, then per section a header row
// (column names with units) followed by one tab-separated row per
// time-step. Headers appear once, so a downstream consumer pays the
// column-name token cost a single time. Weather codes are resolved to
// short labels instead of opaque integers.
func renderCompact(w io.Writer, doc *Document) error {
	r := doc.Resp

	if r.Elevations != nil {
		fmt.Fprintln(w, "point\televation(m)")
		for i, e := range r.Elevations {
			fmt.Fprintf(w, "%d\t%s\n", i+1, number(e))
		}
		return nil
	}

	meta := []string{
		"lat=" + number(r.Latitude),
		"lon=" + number(r.Longitude),
	}
	if r.Timezone != "" {
		meta = append(meta, "tz="+r.Timezone)
	}
	if doc.Location.Name != "" {
		meta = append([]string{doc.Location.Label()}, meta...)
	}
	fmt.Fprintln(w, strings.Join(meta, "\t"))

	if r.Current != nil {
		fmt.Fprintf(w, "[current] %s\n", r.Current.Time)
		names := r.Current.VariableNames()
		cells := make([]string, len(names))
		for i, name := range names {
			cells[i] = compactHeader(name, r.Current.Units[name]) + "=" +
				compactValue(name, r.Current.Values[name])
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	if r.Hourly != nil {
		if err := compactSection(w, "hourly", r.Hourly); err != nil {
			return err
		}
	}
	if r.Daily != nil {
		if err := compactSection(w, "daily", r.Daily); err != nil {
			return err
		}
	}
	return nil
}

func compactSection(w io.Writer, label string, sec *models.Section) error {
	records, err := reshape.Zip(sec)
	if err != nil {
		return err
	}

	names := sec.VariableNames()
	header := make([]string, 0, len(names)+1)
	header = append(header, "time")
	for _, name := range names {
		header = append(header, compactHeader(name, sec.Units[name]))
	}

	fmt.Fprintf(w, "[%s]\n", label)
	fmt.Fprintln(w, strings.Join(header, "\t"))

	row := make([]string, len(names)+1)
	for _, rec := range records {
		row[0] = rec.Time
		if rec.AllNull() {
			for i := range names {
				row[i+1] = noData
			}
			fmt.Fprintln(w, strings.Join(row, "\t"))
			continue
		}
		for i, name := range names {
			row[i+1] = compactValue(name, rec.Values[name])
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return nil
}

func compactHeader(name, unit string) string {
	if unit == "" {
		return name
	}
	return name + "(" + unit + ")"
}

func compactValue(name string, val models.Value) string {
	if val.Null {
		return ""
	}
	if strings.HasPrefix(name, "weather_code") {
		if f, ok := val.Float(); ok {
			return WeatherCodeLabel(int(f))
		}
	}
	return val.Text()
}
