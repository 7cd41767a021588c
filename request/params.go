package request

// Params is the resolved parameter set for one invocation, built from CLI
// flags over config-file defaults over built-ins (flags always win). It is
// validated before any network call and discarded after rendering.
type Params struct {
	// Location. Either coordinates or a city to geocode first.
	Latitude  float64
	Longitude float64
	City      string
	Country   string

	// Coordinate lists, elevation endpoint only.
	Latitudes  []float64
	Longitudes []float64

	// Variable lists per category.
	Hourly  []string
	Daily   []string
	Current []string

	// Time window. StartDate/EndDate or ForecastDays/PastDays;
	// ForecastSince narrows the forecast window and converts to a
	// concrete date pair at build time.
	StartDate     string
	EndDate       string
	ForecastDays  int
	PastDays      int
	ForecastSince int

	Models []string

	// Ensemble requests per-member columns where the endpoint offers
	// the switch (flood).
	Ensemble bool

	// Unit and selector enums; empty values are omitted from the query
	// so the upstream defaults apply.
	TemperatureUnit   string
	WindSpeedUnit     string
	PrecipitationUnit string
	LengthUnit        string
	CellSelection     string
	Domains           string
	Timezone          string

	// Panel geometry for global_tilted_irradiance.
	Tilt    *float64
	Azimuth *float64

	APIKey string
}
