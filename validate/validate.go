// Package validate checks every user-supplied parameter against the
// endpoint tables before any network call. Problems accumulate so a
// request with three bad variables reports all three at once.
package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/request"
)

// Problems collects validation messages for one invocation.
type Problems struct {
	msgs []string
}

func (p *Problems) addf(format string, args ...any) {
	p.msgs = append(p.msgs, fmt.Sprintf(format, args...))
}

// Empty reports whether any problem was recorded.
func (p *Problems) Empty() bool {
	return len(p.msgs) == 0
}

// Err returns the accumulated problems as a single validation error, or
// nil when everything passed.
func (p *Problems) Err() error {
	if len(p.msgs) == 0 {
		return nil
	}
	return errs.Validation(p.msgs)
}

// Request validates a parsed request against its endpoint spec. Returns
// nil when the request is safe to send.
func Request(spec *endpoint.Spec, p *request.Params) error {
	var probs Problems

	probs.coordinates(spec, p)
	probs.variables(spec, models.Hourly, p.Hourly)
	probs.variables(spec, models.Daily, p.Daily)
	probs.variables(spec, models.Current, p.Current)
	probs.dates(spec, p)
	probs.bounds(spec, p)
	probs.models(spec, p.Models)
	probs.units(p)
	probs.coupling(spec, p)

	return probs.Err()
}

func (p *Problems) coordinates(spec *endpoint.Spec, req *request.Params) {
	if spec.Name == "elevation" {
		if len(req.Latitudes) == 0 || len(req.Longitudes) == 0 {
			p.addf("--lat and --lon are required")
			return
		}
		if len(req.Latitudes) != len(req.Longitudes) {
			p.addf("mismatched coordinate lists: %d latitudes but %d longitudes",
				len(req.Latitudes), len(req.Longitudes))
		}
		for _, lat := range req.Latitudes {
			p.latitude(lat)
		}
		for _, lon := range req.Longitudes {
			p.longitude(lon)
		}
		return
	}
	if req.City != "" {
		// Coordinates come from the resolver after validation.
		return
	}
	p.latitude(req.Latitude)
	p.longitude(req.Longitude)
}

func (p *Problems) latitude(lat float64) {
	if lat < -90 || lat > 90 {
		p.addf("latitude %g out of range [-90, 90]", lat)
	}
}

func (p *Problems) longitude(lon float64) {
	if lon < -180 || lon > 180 {
		p.addf("longitude %g out of range [-180, 180]", lon)
	}
}

func (p *Problems) variables(spec *endpoint.Spec, cat models.Category, names []string) {
	if len(names) == 0 {
		return
	}
	if !spec.HasCategory(cat) {
		p.addf("the %s does not have %s variables", spec.Title, cat)
		return
	}
	for _, name := range names {
		if spec.HasVariable(cat, name) {
			continue
		}
		if hint := Suggest(spec, cat, name); hint != "" {
			p.msgs = append(p.msgs, hint)
			continue
		}
		p.addf("unknown %s variable %q for the %s", cat, name, spec.Title)
	}
}

func (p *Problems) dates(spec *endpoint.Spec, req *request.Params) {
	start := p.date("--start-date", req.StartDate)
	end := p.date("--end-date", req.EndDate)

	if (req.StartDate == "") != (req.EndDate == "") {
		p.addf("--start-date and --end-date must be given together")
	}
	if req.StartDate != "" && req.ForecastSince > 0 {
		p.addf("--forecast-since and --start-date are mutually exclusive")
	}
	if spec.DatesRequired && req.StartDate == "" && req.ForecastSince == 0 {
		p.addf("the %s requires --start-date and --end-date", spec.Title)
	}

	if start == nil || end == nil {
		return
	}
	if end.Before(*start) {
		p.addf("--start-date %s is after --end-date %s", req.StartDate, req.EndDate)
	}
	if spec.MinDate != "" && req.StartDate < spec.MinDate {
		p.addf("the %s has no data before %s", spec.Title, spec.MinDate)
	}
	if spec.MaxDate != "" && req.EndDate > spec.MaxDate {
		p.addf("the %s has no data after %s", spec.Title, spec.MaxDate)
	}
}

// date checks ISO-8601 syntax and calendar plausibility, returning the
// parsed date or nil when absent or invalid.
func (p *Problems) date(flag, s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		p.addf("%s %q is not a valid date (expected YYYY-MM-DD)", flag, s)
		return nil
	}
	return &t
}

func (p *Problems) bounds(spec *endpoint.Spec, req *request.Params) {
	if req.ForecastDays > 0 {
		if spec.MaxForecastDays == 0 {
			p.addf("the %s does not accept --forecast-days", spec.Title)
		} else if req.ForecastDays > spec.MaxForecastDays {
			p.addf("--forecast-days %d exceeds the %s maximum of %d",
				req.ForecastDays, spec.Title, spec.MaxForecastDays)
		}
	}
	if req.ForecastDays < 0 {
		p.addf("--forecast-days must not be negative")
	}
	if req.PastDays < 0 {
		p.addf("--past-days must not be negative")
	}
	if req.PastDays > 0 && spec.MaxPastDays > 0 && req.PastDays > spec.MaxPastDays {
		p.addf("--past-days %d exceeds the %s maximum of %d",
			req.PastDays, spec.Title, spec.MaxPastDays)
	}
	if req.ForecastSince < 0 {
		p.addf("--forecast-since must not be negative")
	}
	if req.ForecastSince > 0 {
		days := req.ForecastDays
		if days == 0 {
			days = 7
		}
		if req.ForecastSince > days {
			p.addf("--forecast-since %d is outside the %d-day forecast window",
				req.ForecastSince, days)
		}
	}
}

func (p *Problems) models(spec *endpoint.Spec, names []string) {
	if len(names) == 0 {
		if spec.ModelsRequired {
			p.addf("the %s requires --models (one of: %s)", spec.Title, strings.Join(spec.Models, ", "))
		}
		return
	}
	if len(spec.Models) == 0 {
		p.addf("the %s does not accept --models", spec.Title)
		return
	}
	for _, name := range names {
		if !spec.HasModel(name) {
			p.addf("unknown model %q for the %s (valid: %s)", name, spec.Title, strings.Join(spec.Models, ", "))
		}
	}
}

func (p *Problems) units(req *request.Params) {
	p.enum("--temperature-unit", req.TemperatureUnit, endpoint.TemperatureUnits)
	p.enum("--wind-speed-unit", req.WindSpeedUnit, endpoint.WindSpeedUnits)
	p.enum("--precipitation-unit", req.PrecipitationUnit, endpoint.PrecipitationUnits)
	p.enum("--length-unit", req.LengthUnit, endpoint.LengthUnits)
	p.enum("--cell-selection", req.CellSelection, endpoint.CellSelections)
	p.enum("--domains", req.Domains, endpoint.AirQualityDomains)
}

func (p *Problems) enum(flag, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if a == value {
			return
		}
	}
	p.addf("invalid %s %q (valid: %s)", flag, value, strings.Join(allowed, ", "))
}

// coupling enforces parameter pairs the API needs together.
func (p *Problems) coupling(spec *endpoint.Spec, req *request.Params) {
	for _, name := range req.Hourly {
		if name == "global_tilted_irradiance" && (req.Tilt == nil || req.Azimuth == nil) {
			p.addf("global_tilted_irradiance requires both --tilt and --azimuth")
		}
	}
	if req.Tilt != nil && (*req.Tilt < 0 || *req.Tilt > 90) {
		p.addf("--tilt %g out of range [0, 90]", *req.Tilt)
	}
	if req.Azimuth != nil && (*req.Azimuth < -180 || *req.Azimuth > 180) {
		p.addf("--azimuth %g out of range [-180, 180]", *req.Azimuth)
	}
}
