package render

// WMO weather interpretation codes, as used by the weather_code variable.
// Labels are short on purpose: the compact renderer inlines them in rows.
var weatherCodes = map[int]struct {
	Label string
	Emoji string
}{
	0:  {"clear sky", "☀️"},
	1:  {"mainly clear", "🌤️"},
	2:  {"partly cloudy", "⛅"},
	3:  {"overcast", "☁️"},
	45: {"fog", "🌫️"},
	48: {"depositing rime fog", "🌫️"},
	51: {"light drizzle", "🌦️"},
	53: {"drizzle", "🌦️"},
	55: {"dense drizzle", "🌦️"},
	56: {"light freezing drizzle", "🌦️"},
	57: {"freezing drizzle", "🌦️"},
	61: {"slight rain", "🌧️"},
	63: {"rain", "🌧️"},
	65: {"heavy rain", "🌧️"},
	66: {"light freezing rain", "🌧️"},
	67: {"freezing rain", "🌧️"},
	71: {"slight snowfall", "🌨️"},
	73: {"snowfall", "🌨️"},
	75: {"heavy snowfall", "🌨️"},
	77: {"snow grains", "🌨️"},
	80: {"slight rain showers", "🌦️"},
	81: {"rain showers", "🌦️"},
	82: {"violent rain showers", "⛈️"},
	85: {"slight snow showers", "🌨️"},
	86: {"snow showers", "🌨️"},
	95: {"thunderstorm", "⛈️"},
	96: {"thunderstorm with hail", "⛈️"},
	99: {"thunderstorm with heavy hail", "⛈️"},
}

// WeatherCodeLabel resolves a WMO code to its short text, falling back to
// "code N" for values outside the table.
func WeatherCodeLabel(code int) string {
	if c, ok := weatherCodes[code]; ok {
		return c.Label
	}
	return "unknown"
}

// WeatherCodeEmoji resolves a WMO code to its emoji.
func WeatherCodeEmoji(code int) string {
	if c, ok := weatherCodes[code]; ok {
		return c.Emoji
	}
	return "🌡️"
}
