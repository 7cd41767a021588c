package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Section holds one time-series block of a response (hourly or daily):
// a chronological time axis plus one parallel value array per variable.
// Arrays are kept in API order; callers that need deterministic variable
// iteration use VariableNames.
type Section struct {
	Time   []string
	Series map[string][]Value
	Units  map[string]string
}

// VariableNames returns the section's variable names sorted for
// deterministic output.
func (s *Section) VariableNames() []string {
	names := make([]string, 0, len(s.Series))
	for name := range s.Series {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CurrentSection holds the scalar current-conditions block.
type CurrentSection struct {
	Time   string
	Values map[string]Value
	Units  map[string]string
}

// VariableNames returns the block's variable names sorted for
// deterministic output.
func (s *CurrentSection) VariableNames() []string {
	names := make([]string, 0, len(s.Values))
	for name := range s.Values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// APIResponse is a decoded Open-Meteo response. Sections the endpoint did
// not return stay nil; renderers treat nil sections as absent, never as
// an error. Elevations is populated only by the elevation endpoint.
type APIResponse struct {
	Latitude   float64
	Longitude  float64
	Elevation  float64
	Timezone   string
	Current    *CurrentSection
	Hourly     *Section
	Daily      *Section
	Elevations []float64

	// Raw keeps the untouched body for the raw renderer.
	Raw []byte
}

// Section returns the response block for a category, or nil when the
// endpoint has no such block. Current conditions are exposed through the
// Current field directly because they are scalars, not series.
func (r *APIResponse) Section(c Category) *Section {
	switch c {
	case Hourly:
		return r.Hourly
	case Daily:
		return r.Daily
	case Current:
		return nil
	}
	return nil
}

type rawResponse struct {
	Latitude     float64                    `json:"latitude"`
	Longitude    float64                    `json:"longitude"`
	Elevation    float64                    `json:"elevation"`
	Timezone     string                     `json:"timezone"`
	Current      map[string]json.RawMessage `json:"current"`
	CurrentUnits map[string]string          `json:"current_units"`
	Hourly       map[string]json.RawMessage `json:"hourly"`
	HourlyUnits  map[string]string          `json:"hourly_units"`
	Daily        map[string]json.RawMessage `json:"daily"`
	DailyUnits   map[string]string          `json:"daily_units"`
}

// DecodeResponse parses a response body into the typed structure. The
// JSON is walked exactly once here; downstream code never re-parses it.
func DecodeResponse(body []byte) (*APIResponse, error) {
	var raw rawResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("malformed response body: %w", err)
	}

	resp := &APIResponse{
		Latitude:  raw.Latitude,
		Longitude: raw.Longitude,
		Elevation: raw.Elevation,
		Timezone:  raw.Timezone,
		Raw:       body,
	}

	if raw.Current != nil {
		cur, err := decodeCurrent(raw.Current, raw.CurrentUnits)
		if err != nil {
			return nil, err
		}
		resp.Current = cur
	}
	if raw.Hourly != nil {
		sec, err := decodeSection("hourly", raw.Hourly, raw.HourlyUnits)
		if err != nil {
			return nil, err
		}
		resp.Hourly = sec
	}
	if raw.Daily != nil {
		sec, err := decodeSection("daily", raw.Daily, raw.DailyUnits)
		if err != nil {
			return nil, err
		}
		resp.Daily = sec
	}
	return resp, nil
}

// DecodeElevation parses the elevation endpoint's body, which carries a
// bare elevation array instead of time-series sections.
func DecodeElevation(body []byte) (*APIResponse, error) {
	var raw struct {
		Elevation []float64 `json:"elevation"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("malformed elevation response: %w", err)
	}
	return &APIResponse{Elevations: raw.Elevation, Raw: body}, nil
}

func decodeCurrent(block map[string]json.RawMessage, units map[string]string) (*CurrentSection, error) {
	sec := &CurrentSection{Values: make(map[string]Value), Units: units}
	for key, msg := range block {
		switch key {
		case "time":
			if err := json.Unmarshal(msg, &sec.Time); err != nil {
				return nil, fmt.Errorf("malformed current time: %w", err)
			}
		case "interval":
			// reporting interval in seconds, not a weather variable
		default:
			var v Value
			if err := json.Unmarshal(msg, &v); err != nil {
				return nil, fmt.Errorf("malformed current value %q: %w", key, err)
			}
			sec.Values[key] = v
		}
	}
	return sec, nil
}

func decodeSection(name string, block map[string]json.RawMessage, units map[string]string) (*Section, error) {
	sec := &Section{Series: make(map[string][]Value), Units: units}
	for key, msg := range block {
		if key == "time" {
			if err := json.Unmarshal(msg, &sec.Time); err != nil {
				return nil, fmt.Errorf("malformed %s time axis: %w", name, err)
			}
			continue
		}
		var vals []Value
		if err := json.Unmarshal(msg, &vals); err != nil {
			return nil, fmt.Errorf("malformed %s series %q: %w", name, key, err)
		}
		sec.Series[key] = vals
	}
	if sec.Time == nil {
		return nil, fmt.Errorf("%s section has no time axis", name)
	}
	return sec, nil
}
