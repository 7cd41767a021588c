package reshape

import (
	"sort"
	"strings"
)

// Stat holds the statistics for one variable at one time-step, computed
// across all models/members that reported a value. N is the number of
// non-null inputs; N == 0 means every input was null and the aggregate
// itself is null.
type Stat struct {
	Mean   float64
	Min    float64
	Max    float64
	Median *float64
	Mode   *float64
	N      int
}

// AggRecord is one time-step of an aggregated multi-model response.
type AggRecord struct {
	Time  string
	Stats map[string]Stat
}

// discreteVars aggregate with a mode in addition to mean/min/max; the
// mean of a coded value is meaningless on its own.
var discreteVars = map[string]bool{
	"weather_code": true,
	"is_day":       true,
}

// Aggregate collapses suffixed model/member columns into per-variable
// statistics at each time-step. Median is computed when withMedian is
// set (ensemble endpoints); mode is always computed for discrete codes.
// Null inputs are skipped; a time-step where every member is null
// produces a null aggregate (N == 0), never a zero.
func Aggregate(records []Record, sfx SuffixSet, withMedian bool) []AggRecord {
	out := make([]AggRecord, len(records))
	for i, rec := range records {
		groups := make(map[string][]float64)
		sawBase := make(map[string]bool)
		for column, val := range rec.Values {
			base, _ := sfx.Split(column)
			sawBase[base] = true
			if f, ok := val.Float(); ok {
				groups[base] = append(groups[base], f)
			}
		}

		stats := make(map[string]Stat, len(sawBase))
		for base := range sawBase {
			stats[base] = computeStat(groups[base], withMedian, discreteVars[base])
		}
		out[i] = AggRecord{Time: rec.Time, Stats: stats}
	}
	return out
}

func computeStat(vals []float64, withMedian, discrete bool) Stat {
	if len(vals) == 0 {
		return Stat{}
	}
	st := Stat{Min: vals[0], Max: vals[0], N: len(vals)}
	sum := 0.0
	for _, v := range vals {
		sum += v
		if v < st.Min {
			st.Min = v
		}
		if v > st.Max {
			st.Max = v
		}
	}
	st.Mean = sum / float64(len(vals))

	if withMedian {
		m := median(vals)
		st.Median = &m
	}
	if discrete {
		m := mode(vals)
		st.Mode = &m
	}
	return st
}

func median(vals []float64) float64 {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// mode returns the most frequent value; ties resolve to the smallest so
// the result is deterministic.
func mode(vals []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range vals {
		counts[v]++
	}
	best, bestCount := vals[0], 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && v < best) {
			best, bestCount = v, c
		}
	}
	return best
}

// IsSumVariable reports whether a base variable name represents a
// cumulative total. Sum variables roll up across coarser time buckets by
// summation instead of averaging.
func IsSumVariable(base string) bool {
	return strings.HasSuffix(base, "_sum")
}
