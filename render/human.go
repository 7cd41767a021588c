package render

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/reshape"
)

func renderHuman(w io.Writer, doc *Document, opts Options) error {
	r := doc.Resp

	if r.Elevations != nil {
		return renderHumanElevations(w, r.Elevations, opts)
	}

	renderHumanHeader(w, doc, opts)

	if r.Current != nil {
		renderHumanCurrent(w, r.Current, opts)
	}
	if r.Hourly != nil {
		if err := renderHumanSeries(w, doc, r.Hourly, models.Hourly, opts); err != nil {
			return err
		}
	}
	if r.Daily != nil {
		if err := renderHumanSeries(w, doc, r.Daily, models.Daily, opts); err != nil {
			return err
		}
	}
	return nil
}

func renderHumanHeader(w io.Writer, doc *Document, opts Options) {
	label := doc.Location.Label()
	if label == "0.0000, 0.0000" || doc.Location.Name == "" {
		label = fmt.Sprintf("%.4f, %.4f", doc.Resp.Latitude, doc.Resp.Longitude)
	}
	fmt.Fprintf(w, "%s (%.4f°, %.4f°)", colorize(opts.Color, ansiBold, label),
		doc.Resp.Latitude, doc.Resp.Longitude)
	if doc.Resp.Timezone != "" {
		fmt.Fprintf(w, "  %s", colorize(opts.Color, ansiDim, doc.Resp.Timezone))
	}
	fmt.Fprintln(w)
}

func renderHumanCurrent(w io.Writer, cur *models.CurrentSection, opts Options) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s  %s\n", colorize(opts.Color, ansiCyan, "current"), cur.Time)
	for _, name := range cur.VariableNames() {
		val := cur.Values[name]
		fmt.Fprintf(w, "  %s %-28s %s\n", VariableEmoji(name),
			VariableLabel(name), humanValue(name, val, cur.Units[name]))
	}
}

func renderHumanSeries(w io.Writer, doc *Document, sec *models.Section, cat models.Category, opts Options) error {
	records, err := reshape.Zip(sec)
	if err != nil {
		return err
	}

	level := reshape.BucketDaily
	if cat == models.Daily {
		level = reshape.LevelFor(len(records))
		records = reshape.Rebucket(records, level, doc.Suffixes)
	}

	fmt.Fprintln(w)
	heading := cat.String()
	if level != reshape.BucketDaily {
		heading = fmt.Sprintf("daily (per %s)", level.Label())
	}
	fmt.Fprintln(w, colorize(opts.Color, ansiCyan, heading))

	if !doc.Suffixes.Empty() {
		return renderHumanAggregated(w, doc, sec, records, cat, level, opts)
	}

	if cat == models.Hourly {
		for _, group := range reshape.GroupByDay(records) {
			fmt.Fprintln(w, colorize(opts.Color, ansiBold, group.Date))
			for _, rec := range group.Records {
				renderHumanRecord(w, rec, clockOf(rec.Time), sec.Units)
			}
		}
		return nil
	}

	for _, rec := range records {
		renderHumanRecord(w, rec, rec.Time, sec.Units)
	}
	return nil
}

func renderHumanRecord(w io.Writer, rec reshape.Record, key string, units map[string]string) {
	if rec.AllNull() {
		fmt.Fprintf(w, "  %-6s %s\n", key, noData)
		return
	}
	fmt.Fprintf(w, "  %-6s", key)
	for _, name := range sortedNames(rec.Values) {
		fmt.Fprintf(w, "  %s %s", VariableEmoji(name),
			humanValue(name, rec.Values[name], units[name]))
	}
	fmt.Fprintln(w)
}

func renderHumanAggregated(w io.Writer, doc *Document, sec *models.Section, records []reshape.Record, cat models.Category, level reshape.BucketLevel, opts Options) error {
	agg := reshape.Aggregate(records, doc.Suffixes, doc.Median)
	units := baseUnits(sec.Units, doc.Suffixes)

	var lastDate string
	for _, rec := range agg {
		key := rec.Time
		if cat == models.Hourly && level == reshape.BucketDaily {
			if date := dateOf(rec.Time); date != lastDate {
				fmt.Fprintln(w, colorize(opts.Color, ansiBold, date))
				lastDate = date
			}
			key = clockOf(rec.Time)
		}

		names := make([]string, 0, len(rec.Stats))
		for name := range rec.Stats {
			names = append(names, name)
		}
		sort.Strings(names)

		allNull := true
		for _, name := range names {
			if rec.Stats[name].N > 0 {
				allNull = false
			}
		}
		if allNull {
			fmt.Fprintf(w, "  %-6s %s\n", key, noData)
			continue
		}

		fmt.Fprintf(w, "  %-6s", key)
		for _, name := range names {
			st := rec.Stats[name]
			if st.N == 0 {
				fmt.Fprintf(w, "  %s %s %s", VariableEmoji(name), VariableLabel(name), noData)
				continue
			}
			fmt.Fprintf(w, "  %s %s", VariableEmoji(name), formatStat(name, st, units[name]))
		}
		fmt.Fprintln(w)
	}
	return nil
}

// formatStat renders "mean (min to max, n=K)" plus median/mode when
// present.
func formatStat(name string, st reshape.Stat, unit string) string {
	out := fmt.Sprintf("%s (%s to %s",
		numberWithUnit(st.Mean, unit), number(st.Min), numberWithUnit(st.Max, unit))
	if st.Median != nil {
		out += fmt.Sprintf(", median %s", number(*st.Median))
	}
	if st.Mode != nil {
		if name == "weather_code" {
			out += fmt.Sprintf(", mostly %s", WeatherCodeLabel(int(*st.Mode)))
		} else {
			out += fmt.Sprintf(", mode %s", number(*st.Mode))
		}
	}
	return out + fmt.Sprintf(", n=%d)", st.N)
}

func renderHumanElevations(w io.Writer, elevations []float64, opts Options) error {
	fmt.Fprintln(w, colorize(opts.Color, ansiCyan, "elevation"))
	for i, e := range elevations {
		fmt.Fprintf(w, "  ⛰️ point %d: %s m\n", i+1, number(e))
	}
	return nil
}

// humanValue formats one value with its unit; weather codes become text.
func humanValue(name string, val models.Value, unit string) string {
	if val.Null {
		return noData
	}
	if name == "weather_code" {
		if f, ok := val.Float(); ok {
			code := int(f)
			return fmt.Sprintf("%s %s", WeatherCodeEmoji(code), WeatherCodeLabel(code))
		}
	}
	if f, ok := val.Float(); ok {
		return numberWithUnit(f, unit)
	}
	return val.Text()
}

func numberWithUnit(f float64, unit string) string {
	if unit == "" {
		return number(f)
	}
	return number(f) + unit
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedNames(values map[string]models.Value) []string {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clockOf extracts the HH:MM part of an ISO timestamp.
func clockOf(ts string) string {
	if len(ts) >= 16 {
		return ts[11:16]
	}
	return ts
}

// dateOf extracts the date part of an ISO timestamp.
func dateOf(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}

// baseUnits maps aggregated base names to the unit of any column sharing
// that base; models report in the same unit, so the first match wins.
func baseUnits(units map[string]string, sfx reshape.SuffixSet) map[string]string {
	out := make(map[string]string, len(units))
	for column, unit := range units {
		base, _ := sfx.Split(column)
		if _, seen := out[base]; !seen {
			out[base] = unit
		}
	}
	return out
}
