// Package request assembles endpoint URLs from validated parameters and
// performs the single bounded GET against the API.
package request

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
)

// commercialHostPrefix is prepended to the API hostname when a key is
// present. The commercial tier requires both the prefixed host and the
// apikey query parameter; neither works alone.
const commercialHostPrefix = "customer-"

// BuildURL produces the full request URL for a validated parameter set.
// Query parameters are only added when the value is non-empty, so omitted
// flags fall through to the upstream defaults.
func BuildURL(spec *endpoint.Spec, p *Params, now time.Time) (string, error) {
	q := url.Values{}

	if spec.Name == "elevation" {
		q.Set("latitude", joinFloats(p.Latitudes))
		q.Set("longitude", joinFloats(p.Longitudes))
	} else {
		q.Set("latitude", formatFloat(p.Latitude))
		q.Set("longitude", formatFloat(p.Longitude))
	}

	setList(q, "hourly", p.Hourly)
	setList(q, "daily", p.Daily)
	setList(q, "current", p.Current)
	setList(q, "models", p.Models)
	if p.Ensemble {
		q.Set("ensemble", "true")
	}

	start, end := p.StartDate, p.EndDate
	if p.ForecastSince > 0 {
		var err error
		start, end, err = ForecastWindow(p.ForecastSince, p.ForecastDays, now)
		if err != nil {
			return "", err
		}
	}
	if start != "" {
		q.Set("start_date", start)
		q.Set("end_date", end)
	} else {
		if p.ForecastDays > 0 {
			q.Set("forecast_days", strconv.Itoa(p.ForecastDays))
		}
		if p.PastDays > 0 {
			q.Set("past_days", strconv.Itoa(p.PastDays))
		}
	}

	setString(q, "temperature_unit", p.TemperatureUnit)
	setString(q, "wind_speed_unit", p.WindSpeedUnit)
	setString(q, "precipitation_unit", p.PrecipitationUnit)
	setString(q, "length_unit", p.LengthUnit)
	setString(q, "cell_selection", p.CellSelection)
	setString(q, "domains", p.Domains)
	setString(q, "timezone", p.Timezone)

	if p.Tilt != nil {
		q.Set("tilt", formatFloat(*p.Tilt))
	}
	if p.Azimuth != nil {
		q.Set("azimuth", formatFloat(*p.Azimuth))
	}

	base := spec.BaseURL
	if p.APIKey != "" {
		var err error
		base, err = commercialBase(base)
		if err != nil {
			return "", err
		}
		q.Set("apikey", p.APIKey)
	}

	return base + "?" + q.Encode(), nil
}

// ForecastWindow converts --forecast-since K of an N-day forecast window
// into a concrete start_date/end_date pair: day 1 is today, so the range
// covers today+(K-1) through today+(N-1).
func ForecastWindow(since, days int, now time.Time) (string, string, error) {
	if days == 0 {
		days = 7
	}
	if since < 1 || since > days {
		return "", "", errs.Validationf(
			"--forecast-since %d is outside the %d-day forecast window", since, days)
	}
	start := now.AddDate(0, 0, since-1)
	end := now.AddDate(0, 0, days-1)
	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

func commercialBase(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL %q: %w", base, err)
	}
	u.Host = commercialHostPrefix + u.Host
	return u.String(), nil
}

func setList(q url.Values, key string, items []string) {
	if len(items) > 0 {
		q.Set(key, strings.Join(items, ","))
	}
}

func setString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ",")
}
