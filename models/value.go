package models

import (
	"encoding/json"
	"strconv"
)

// Value is a single data point from a response series. The API mixes
// numbers (temperature_2m), strings (sunrise, weather descriptions) and
// JSON nulls (no coverage) inside the same section, so Value keeps the
// three cases apart instead of collapsing everything to float64.
type Value struct {
	Num   float64
	Str   string
	IsStr bool
	Null  bool
}

// NumberValue builds a numeric Value.
func NumberValue(f float64) Value {
	return Value{Num: f}
}

// StringValue builds a string Value.
func StringValue(s string) Value {
	return Value{Str: s, IsStr: true}
}

// NullValue is the Value for a JSON null.
func NullValue() Value {
	return Value{Null: true}
}

// Float returns the numeric value and whether the Value holds a number.
func (v Value) Float() (float64, bool) {
	if v.Null || v.IsStr {
		return 0, false
	}
	return v.Num, true
}

// Text formats the value for display. Nulls format as the empty string;
// numbers keep their shortest round-trip representation.
func (v Value) Text() string {
	if v.Null {
		return ""
	}
	if v.IsStr {
		return v.Str
	}
	return strconv.FormatFloat(v.Num, 'f', -1, 64)
}

// UnmarshalJSON accepts a number, a string, a bool or null.
func (v *Value) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*v = NullValue()
		return nil
	}
	if s == "true" {
		*v = NumberValue(1)
		return nil
	}
	if s == "false" {
		*v = NumberValue(0)
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*v = StringValue(str)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = NumberValue(f)
	return nil
}
