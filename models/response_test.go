package models

import (
	"testing"
)

func TestDecodeResponseSections(t *testing.T) {
	body := []byte(`{
		"latitude": 52.52,
		"longitude": 13.41,
		"timezone": "Europe/Berlin",
		"elevation": 38.0,
		"current_units": {"temperature_2m": "°C"},
		"current": {"time": "2024-01-01T12:00", "interval": 900, "temperature_2m": 5.2, "is_day": 1},
		"hourly_units": {"temperature_2m": "°C", "precipitation": "mm"},
		"hourly": {
			"time": ["2024-01-01T00:00", "2024-01-01T01:00"],
			"temperature_2m": [4.1, null],
			"precipitation": [0, 0.3]
		},
		"daily_units": {"sunrise": "iso8601"},
		"daily": {
			"time": ["2024-01-01"],
			"sunrise": ["2024-01-01T08:15"]
		}
	}`)

	resp, err := DecodeResponse(body)
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}

	if resp.Latitude != 52.52 || resp.Longitude != 13.41 {
		t.Errorf("coordinates = %v, %v", resp.Latitude, resp.Longitude)
	}
	if resp.Timezone != "Europe/Berlin" {
		t.Errorf("timezone = %q", resp.Timezone)
	}

	if resp.Current == nil {
		t.Fatal("current section missing")
	}
	if resp.Current.Time != "2024-01-01T12:00" {
		t.Errorf("current time = %q", resp.Current.Time)
	}
	if _, ok := resp.Current.Values["interval"]; ok {
		t.Error("interval should not be treated as a variable")
	}
	if f, ok := resp.Current.Values["temperature_2m"].Float(); !ok || f != 5.2 {
		t.Errorf("current temperature = %v, %v", f, ok)
	}
	if resp.Current.Units["temperature_2m"] != "°C" {
		t.Errorf("current unit = %q", resp.Current.Units["temperature_2m"])
	}

	if resp.Hourly == nil {
		t.Fatal("hourly section missing")
	}
	if len(resp.Hourly.Time) != 2 {
		t.Fatalf("hourly time length = %d", len(resp.Hourly.Time))
	}
	if !resp.Hourly.Series["temperature_2m"][1].Null {
		t.Error("expected null at hourly temperature index 1")
	}

	if resp.Daily == nil {
		t.Fatal("daily section missing")
	}
	if v := resp.Daily.Series["sunrise"][0]; !v.IsStr || v.Str != "2024-01-01T08:15" {
		t.Errorf("sunrise = %+v", v)
	}
}

func TestDecodeResponseAbsentSections(t *testing.T) {
	resp, err := DecodeResponse([]byte(`{"latitude": 1, "longitude": 2}`))
	if err != nil {
		t.Fatalf("DecodeResponse: %v", err)
	}
	if resp.Current != nil || resp.Hourly != nil || resp.Daily != nil {
		t.Error("absent sections must stay nil")
	}
}

func TestDecodeResponseMissingTimeAxis(t *testing.T) {
	_, err := DecodeResponse([]byte(`{"hourly": {"temperature_2m": [1, 2]}}`))
	if err == nil {
		t.Fatal("expected error for section without time axis")
	}
}

func TestDecodeResponseBadJSON(t *testing.T) {
	if _, err := DecodeResponse([]byte(`{`)); err == nil {
		t.Fatal("expected error for truncated body")
	}
}

func TestDecodeElevation(t *testing.T) {
	resp, err := DecodeElevation([]byte(`{"elevation": [228.1, 45.5]}`))
	if err != nil {
		t.Fatalf("DecodeElevation: %v", err)
	}
	if len(resp.Elevations) != 2 || resp.Elevations[0] != 228.1 {
		t.Errorf("elevations = %v", resp.Elevations)
	}
}

func TestValueText(t *testing.T) {
	cases := []struct {
		name string
		val  Value
		want string
	}{
		{"number", NumberValue(5.2), "5.2"},
		{"integer", NumberValue(3), "3"},
		{"string", StringValue("2024-01-01T08:15"), "2024-01-01T08:15"},
		{"null", NullValue(), ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.val.Text(); got != tc.want {
				t.Errorf("Text() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCategoryRoundTrip(t *testing.T) {
	for _, cat := range Categories {
		parsed, err := ParseCategory(cat.String())
		if err != nil {
			t.Fatalf("ParseCategory(%q): %v", cat.String(), err)
		}
		if parsed != cat {
			t.Errorf("round trip %v -> %v", cat, parsed)
		}
	}
	if _, err := ParseCategory("weekly"); err == nil {
		t.Error("expected error for unknown category")
	}
}
