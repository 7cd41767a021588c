package render

import "strings"

// variableClasses maps a name fragment to the emoji shown next to the
// variable in human output. First match wins; unmatched variables get the
// generic chart emoji and are still shown, never dropped.
var variableClasses = []struct {
	fragment string
	emoji    string
}{
	{"temperature", "🌡️"},
	{"apparent", "🌡️"},
	{"dew_point", "🌡️"},
	{"precipitation", "🌧️"},
	{"rain", "🌧️"},
	{"showers", "🌧️"},
	{"drizzle", "🌧️"},
	{"snow", "❄️"},
	{"freezing", "❄️"},
	{"wind", "💨"},
	{"gust", "💨"},
	{"cloud", "☁️"},
	{"fog", "🌫️"},
	{"visibility", "🌫️"},
	{"humidity", "💧"},
	{"soil_moisture", "💧"},
	{"vapour", "💧"},
	{"pressure", "🔽"},
	{"radiation", "☀️"},
	{"irradiance", "☀️"},
	{"sunshine", "☀️"},
	{"uv_index", "☀️"},
	{"sunrise", "🌅"},
	{"sunset", "🌇"},
	{"daylight", "🌅"},
	{"is_day", "🌅"},
	{"wave", "🌊"},
	{"swell", "🌊"},
	{"sea_", "🌊"},
	{"ocean", "🌊"},
	{"discharge", "🌊"},
	{"pm10", "😷"},
	{"pm2_5", "😷"},
	{"aqi", "😷"},
	{"ozone", "😷"},
	{"dioxide", "😷"},
	{"monoxide", "😷"},
	{"ammonia", "😷"},
	{"methane", "😷"},
	{"dust", "😷"},
	{"aerosol", "😷"},
	{"pollen", "🌼"},
	{"evapotranspiration", "🌱"},
	{"soil", "🌱"},
	{"elevation", "⛰️"},
	{"cape", "⛈️"},
}

// VariableEmoji returns the class emoji for a variable name.
func VariableEmoji(name string) string {
	for _, c := range variableClasses {
		if strings.Contains(name, c.fragment) {
			return c.emoji
		}
	}
	return "📈"
}

// VariableLabel prettifies a variable name for human output.
func VariableLabel(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
