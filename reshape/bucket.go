package reshape

import (
	"github.com/lstpsche/openmeteo-cli/models"
)

// BucketLevel selects the time granularity daily records are rolled up
// to for display.
type BucketLevel int

const (
	// BucketDaily leaves records untouched.
	BucketDaily BucketLevel = iota
	// BucketMonthly rolls daily records up to one per calendar month.
	BucketMonthly
	// BucketYearly rolls daily records up to one per calendar year.
	BucketYearly
)

const (
	// monthlyThreshold is the record count above which the human
	// renderer switches daily output to monthly summaries.
	monthlyThreshold = 31
	// yearlyThreshold switches to yearly summaries; wide climate
	// projections would otherwise dump thousands of daily lines.
	yearlyThreshold = 730
)

// LevelFor picks the display granularity for a daily record count.
func LevelFor(n int) BucketLevel {
	switch {
	case n > yearlyThreshold:
		return BucketYearly
	case n > monthlyThreshold:
		return BucketMonthly
	}
	return BucketDaily
}

// Label returns the period label for a bucket level ("day", "month",
// "year").
func (b BucketLevel) Label() string {
	switch b {
	case BucketMonthly:
		return "month"
	case BucketYearly:
		return "year"
	}
	return "day"
}

func bucketKey(ts string, level BucketLevel) string {
	switch level {
	case BucketMonthly:
		if len(ts) > 7 {
			return ts[:7]
		}
	case BucketYearly:
		if len(ts) > 4 {
			return ts[:4]
		}
	}
	return ts
}

// Rebucket rolls daily records up to the given level. Within a bucket,
// variables whose base name ends in _sum are summed (they are cumulative
// totals); everything else is averaged. Nulls are skipped, and a bucket
// where a variable is null throughout stays null. Suffixed model columns
// are rolled up per column; sfx only matters for classifying the base
// name as a sum variable.
func Rebucket(records []Record, level BucketLevel, sfx SuffixSet) []Record {
	if level == BucketDaily {
		return records
	}

	type acc struct {
		sum   map[string]float64
		count map[string]int
	}
	var order []string
	buckets := make(map[string]*acc)
	columns := make(map[string]bool)

	for _, rec := range records {
		key := bucketKey(rec.Time, level)
		a, ok := buckets[key]
		if !ok {
			a = &acc{sum: make(map[string]float64), count: make(map[string]int)}
			buckets[key] = a
			order = append(order, key)
		}
		for column, val := range rec.Values {
			columns[column] = true
			if f, ok := val.Float(); ok {
				a.sum[column] += f
				a.count[column]++
			}
		}
	}

	out := make([]Record, 0, len(order))
	for _, key := range order {
		a := buckets[key]
		values := make(map[string]models.Value, len(columns))
		for column := range columns {
			n := a.count[column]
			if n == 0 {
				values[column] = models.NullValue()
				continue
			}
			base, _ := sfx.Split(column)
			if IsSumVariable(base) {
				values[column] = models.NumberValue(a.sum[column])
			} else {
				values[column] = models.NumberValue(a.sum[column] / float64(n))
			}
		}
		out = append(out, Record{Time: key, Values: values})
	}
	return out
}
