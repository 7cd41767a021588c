package endpoint

// Enumerations shared by the validation layer. The upstream API silently
// ignores unknown selector values, so the CLI checks them locally to give
// an actionable message instead of a confusing default-unit response.
var (
	TemperatureUnits   = []string{"celsius", "fahrenheit"}
	WindSpeedUnits     = []string{"kmh", "ms", "mph", "kn"}
	PrecipitationUnits = []string{"mm", "inch"}
	LengthUnits        = []string{"metric", "imperial"}
	CellSelections     = []string{"land", "sea", "nearest"}
	AirQualityDomains  = []string{"auto", "cams_europe", "cams_global"}
)

// GeocodingURL is the search endpoint behind both the geocoding
// subcommand and the city resolver.
const GeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"

// GeocodingMaxCount bounds the --count flag of the geocoding subcommand.
const GeocodingMaxCount = 100

var forecastSpec = &Spec{
	Name:    "forecast",
	Title:   "Weather Forecast API",
	BaseURL: "https://api.open-meteo.com/v1/forecast",
	HourlyVars: []string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"apparent_temperature", "precipitation_probability", "precipitation",
		"rain", "showers", "snowfall", "snow_depth", "weather_code",
		"pressure_msl", "surface_pressure", "cloud_cover", "cloud_cover_low",
		"cloud_cover_mid", "cloud_cover_high", "visibility",
		"evapotranspiration", "et0_fao_evapotranspiration",
		"vapour_pressure_deficit", "wind_speed_10m", "wind_speed_80m",
		"wind_direction_10m", "wind_direction_80m", "wind_gusts_10m",
		"uv_index", "is_day", "sunshine_duration", "shortwave_radiation",
		"direct_radiation", "diffuse_radiation", "direct_normal_irradiance",
		"global_tilted_irradiance", "terrestrial_radiation",
		"soil_temperature_0cm", "soil_moisture_0_to_1cm", "freezing_level_height",
	},
	DailyVars: []string{
		"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
		"apparent_temperature_max", "apparent_temperature_min",
		"precipitation_sum", "rain_sum", "showers_sum", "snowfall_sum",
		"precipitation_hours", "precipitation_probability_max",
		"weather_code", "sunrise", "sunset", "daylight_duration",
		"sunshine_duration", "uv_index_max", "wind_speed_10m_max",
		"wind_gusts_10m_max", "wind_direction_10m_dominant",
		"shortwave_radiation_sum", "et0_fao_evapotranspiration",
	},
	CurrentVars: []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"is_day", "precipitation", "rain", "showers", "snowfall",
		"weather_code", "cloud_cover", "pressure_msl", "surface_pressure",
		"wind_speed_10m", "wind_direction_10m", "wind_gusts_10m",
	},
	DefaultHourly: []string{
		"temperature_2m", "relative_humidity_2m", "precipitation",
		"weather_code", "wind_speed_10m",
	},
	DefaultDaily: []string{
		"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
		"weather_code", "wind_speed_10m_max",
	},
	DefaultCurrent: []string{
		"temperature_2m", "relative_humidity_2m", "apparent_temperature",
		"precipitation", "weather_code", "cloud_cover", "wind_speed_10m",
		"wind_direction_10m",
	},
	Models: []string{
		"best_match", "ecmwf_ifs025", "gfs_seamless", "gfs_global",
		"icon_seamless", "icon_global", "icon_eu", "icon_d2", "gem_seamless",
		"meteofrance_seamless", "jma_seamless", "ukmo_seamless",
	},
	MaxForecastDays: 16,
	MaxPastDays:     92,
}

var historicalSpec = &Spec{
	Name:    "historical",
	Title:   "Historical Weather API",
	BaseURL: "https://archive-api.open-meteo.com/v1/archive",
	HourlyVars: []string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"apparent_temperature", "precipitation", "rain", "snowfall",
		"snow_depth", "weather_code", "pressure_msl", "surface_pressure",
		"cloud_cover", "cloud_cover_low", "cloud_cover_mid",
		"cloud_cover_high", "et0_fao_evapotranspiration",
		"vapour_pressure_deficit", "wind_speed_10m", "wind_speed_100m",
		"wind_direction_10m", "wind_direction_100m", "wind_gusts_10m",
		"soil_temperature_0_to_7cm", "soil_moisture_0_to_7cm",
		"shortwave_radiation", "direct_radiation", "diffuse_radiation",
		"sunshine_duration",
	},
	DailyVars: []string{
		"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
		"apparent_temperature_max", "apparent_temperature_min",
		"apparent_temperature_mean", "precipitation_sum", "rain_sum",
		"snowfall_sum", "precipitation_hours", "weather_code", "sunrise",
		"sunset", "daylight_duration", "sunshine_duration",
		"wind_speed_10m_max", "wind_gusts_10m_max",
		"wind_direction_10m_dominant", "shortwave_radiation_sum",
		"et0_fao_evapotranspiration",
	},
	DefaultHourly: []string{
		"temperature_2m", "relative_humidity_2m", "precipitation",
		"weather_code", "wind_speed_10m",
	},
	DefaultDaily: []string{
		"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
		"weather_code",
	},
	MinDate:       "1940-01-01",
	DatesRequired: true,
}

var ensembleSpec = &Spec{
	Name:    "ensemble",
	Title:   "Ensemble Models API",
	BaseURL: "https://ensemble-api.open-meteo.com/v1/ensemble",
	HourlyVars: []string{
		"temperature_2m", "relative_humidity_2m", "dew_point_2m",
		"apparent_temperature", "precipitation", "rain", "snowfall",
		"snow_depth", "weather_code", "pressure_msl", "surface_pressure",
		"cloud_cover", "wind_speed_10m", "wind_direction_10m",
		"wind_gusts_10m", "shortwave_radiation", "direct_radiation",
		"sunshine_duration", "uv_index", "freezing_level_height",
		"cape", "soil_temperature_0_to_10cm",
	},
	DefaultHourly: []string{
		"temperature_2m", "precipitation", "wind_speed_10m",
	},
	Models: []string{
		"icon_seamless", "icon_global", "icon_eu", "icon_d2",
		"gfs_seamless", "gfs025", "gfs05", "ecmwf_ifs025",
		"gem_global", "bom_access_global_ensemble",
	},
	MultiModel:      true,
	EnsembleMembers: true,
	ModelsRequired:  true,
	MaxForecastDays: 35,
	MaxPastDays:     92,
}

var climateSpec = &Spec{
	Name:    "climate",
	Title:   "Climate Change API",
	BaseURL: "https://climate-api.open-meteo.com/v1/climate",
	DailyVars: []string{
		"temperature_2m_max", "temperature_2m_min", "temperature_2m_mean",
		"cloud_cover_mean", "relative_humidity_2m_max",
		"relative_humidity_2m_min", "relative_humidity_2m_mean",
		"soil_moisture_0_to_10cm_mean", "precipitation_sum", "rain_sum",
		"snowfall_sum", "wind_speed_10m_max", "wind_speed_10m_mean",
		"pressure_msl_mean", "shortwave_radiation_sum",
		"et0_fao_evapotranspiration_sum", "dew_point_2m_mean",
	},
	DefaultDaily: []string{
		"temperature_2m_max", "temperature_2m_min", "precipitation_sum",
	},
	Models: []string{
		"CMCC_CM2_VHR4", "FGOALS_f3_H", "HiRAM_SIT_HR", "MRI_AGCM3_2_S",
		"EC_Earth3P_HR", "MPI_ESM1_2_XR", "NICAM16_8S",
	},
	MultiModel:     true,
	ModelsRequired: true,
	MinDate:        "1950-01-01",
	MaxDate:        "2050-12-31",
	DatesRequired:  true,
}

var marineSpec = &Spec{
	Name:    "marine",
	Title:   "Marine Weather API",
	BaseURL: "https://marine-api.open-meteo.com/v1/marine",
	HourlyVars: []string{
		"wave_height", "wave_direction", "wave_period",
		"wind_wave_height", "wind_wave_direction", "wind_wave_period",
		"swell_wave_height", "swell_wave_direction", "swell_wave_period",
		"sea_surface_temperature", "ocean_current_velocity",
		"ocean_current_direction", "sea_level_height_msl",
	},
	DailyVars: []string{
		"wave_height_max", "wave_direction_dominant", "wave_period_max",
		"wind_wave_height_max", "wind_wave_direction_dominant",
		"wind_wave_period_max", "swell_wave_height_max",
		"swell_wave_direction_dominant", "swell_wave_period_max",
	},
	CurrentVars: []string{
		"wave_height", "wave_direction", "wave_period",
		"sea_surface_temperature", "ocean_current_velocity",
		"ocean_current_direction",
	},
	DefaultHourly:   []string{"wave_height", "wave_direction", "wave_period"},
	DefaultDaily:    []string{"wave_height_max", "wave_direction_dominant", "wave_period_max"},
	DefaultCurrent:  []string{"wave_height", "wave_direction", "wave_period"},
	MaxForecastDays: 8,
	MaxPastDays:     92,
}

var airQualitySpec = &Spec{
	Name:    "air-quality",
	Title:   "Air Quality API",
	BaseURL: "https://air-quality-api.open-meteo.com/v1/air-quality",
	HourlyVars: []string{
		"pm10", "pm2_5", "carbon_monoxide", "carbon_dioxide",
		"nitrogen_dioxide", "sulphur_dioxide", "ozone",
		"aerosol_optical_depth", "dust", "ammonia", "methane", "uv_index",
		"uv_index_clear_sky", "alder_pollen", "birch_pollen", "grass_pollen",
		"mugwort_pollen", "olive_pollen", "ragweed_pollen",
		"european_aqi", "us_aqi",
	},
	CurrentVars: []string{
		"pm10", "pm2_5", "carbon_monoxide", "nitrogen_dioxide",
		"sulphur_dioxide", "ozone", "dust", "uv_index",
		"european_aqi", "us_aqi",
	},
	DefaultHourly:   []string{"pm10", "pm2_5", "european_aqi", "us_aqi"},
	DefaultCurrent:  []string{"pm10", "pm2_5", "european_aqi", "us_aqi"},
	MaxForecastDays: 7,
	MaxPastDays:     92,
}

var floodSpec = &Spec{
	Name:    "flood",
	Title:   "Flood API",
	BaseURL: "https://flood-api.open-meteo.com/v1/flood",
	DailyVars: []string{
		"river_discharge", "river_discharge_mean", "river_discharge_median",
		"river_discharge_max", "river_discharge_min", "river_discharge_p25",
		"river_discharge_p75",
	},
	DefaultDaily: []string{"river_discharge"},
	Models: []string{
		"seamless_v4", "forecast_v4", "consolidated_v4",
	},
	MultiModel:      true,
	EnsembleOption:  true,
	MaxForecastDays: 210,
	MaxPastDays:     92,
	MinDate:         "1984-01-01",
}

var elevationSpec = &Spec{
	Name:    "elevation",
	Title:   "Elevation API",
	BaseURL: "https://api.open-meteo.com/v1/elevation",
}

var satelliteSpec = &Spec{
	Name:    "satellite",
	Title:   "Satellite Radiation API",
	BaseURL: "https://satellite-api.open-meteo.com/v1/archive",
	HourlyVars: []string{
		"shortwave_radiation", "direct_radiation", "diffuse_radiation",
		"direct_normal_irradiance", "global_tilted_irradiance",
		"terrestrial_radiation", "shortwave_radiation_instant",
		"direct_normal_irradiance_instant",
	},
	DailyVars: []string{
		"shortwave_radiation_sum", "sunshine_duration", "daylight_duration",
	},
	DefaultHourly: []string{"shortwave_radiation", "direct_radiation", "diffuse_radiation"},
	DefaultDaily:  []string{"shortwave_radiation_sum"},
	Models: []string{
		"satellite_radiation_seamless", "eumetsat_sarah3",
		"eumetsat_lsa_saf_msg", "eumetsat_lsa_saf_iodc", "jma_jaxa_himawari",
	},
	MultiModel:      true,
	ModelsRequired:  true,
	MaxForecastDays: 1,
	MaxPastDays:     92,
}

var geocodingSpec = &Spec{
	Name:    "geocoding",
	Title:   "Geocoding API",
	BaseURL: GeocodingURL,
}

var ordered = []*Spec{
	forecastSpec, geocodingSpec, historicalSpec, ensembleSpec, climateSpec,
	marineSpec, airQualitySpec, floodSpec, elevationSpec, satelliteSpec,
}

var registry = func() map[string]*Spec {
	m := make(map[string]*Spec, len(ordered))
	for _, s := range ordered {
		m[s.Name] = s
	}
	return m
}()
