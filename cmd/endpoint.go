package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/geocode"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/render"
	"github.com/lstpsche/openmeteo-cli/request"
	"github.com/lstpsche/openmeteo-cli/reshape"
	"github.com/lstpsche/openmeteo-cli/validate"
)

// endpointFlags holds the per-endpoint flag values. Which flags are
// registered depends on the endpoint spec; unregistered fields keep
// their zero value.
type endpointFlags struct {
	lat     float64
	lon     float64
	city    string
	country string

	hourly        bool
	daily         bool
	current       bool
	hourlyParams  string
	dailyParams   string
	currentParams string

	startDate     string
	endDate       string
	forecastDays  int
	pastDays      int
	forecastSince int

	modelList string
	ensemble  bool

	temperatureUnit   string
	windSpeedUnit     string
	precipitationUnit string
	lengthUnit        string
	cellSelection     string
	domains           string
	timezone          string

	tilt    float64
	azimuth float64
}

// newEndpointCmd builds the cobra command for one time-series endpoint.
func newEndpointCmd(a *app, spec *endpoint.Spec) *cobra.Command {
	f := &endpointFlags{}
	cmd := &cobra.Command{
		Use:   spec.Name,
		Short: fmt.Sprintf("Query the %s", spec.Title),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEndpoint(cmd, spec, f)
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.lat, "lat", 0, "latitude")
	fl.Float64Var(&f.lon, "lon", 0, "longitude")
	fl.StringVar(&f.city, "city", "", "city name to geocode")
	fl.StringVar(&f.country, "country", "", "ISO-3166 country code filter for --city")
	fl.StringVar(&f.timezone, "timezone", "", "response timezone (default auto)")
	fl.StringVar(&f.cellSelection, "cell-selection", "", "grid cell selection (land, sea, nearest)")

	// Category flags are registered even for categories the endpoint
	// lacks, so a wrong --daily-params gets the corrective validation
	// message instead of cobra's bare "unknown flag".
	fl.BoolVar(&f.hourly, "hourly", false, "request the default hourly variables")
	fl.StringVar(&f.hourlyParams, "hourly-params", "", "comma-separated hourly variables")
	fl.BoolVar(&f.daily, "daily", false, "request the default daily variables")
	fl.StringVar(&f.dailyParams, "daily-params", "", "comma-separated daily variables")
	fl.BoolVar(&f.current, "current", false, "request the default current variables")
	fl.StringVar(&f.currentParams, "current-params", "", "comma-separated current variables")

	fl.StringVar(&f.startDate, "start-date", "", "range start (YYYY-MM-DD)")
	fl.StringVar(&f.endDate, "end-date", "", "range end (YYYY-MM-DD)")
	if spec.MaxForecastDays > 0 {
		fl.IntVar(&f.forecastDays, "forecast-days", 0,
			fmt.Sprintf("forecast window in days (max %d)", spec.MaxForecastDays))
		fl.IntVar(&f.forecastSince, "forecast-since", 0,
			"skip the first N-1 days of the forecast window")
	}
	if spec.MaxPastDays > 0 {
		fl.IntVar(&f.pastDays, "past-days", 0,
			fmt.Sprintf("include past days (max %d)", spec.MaxPastDays))
	}
	if len(spec.Models) > 0 {
		fl.StringVar(&f.modelList, "models", "", "comma-separated model names")
	}
	if spec.EnsembleOption {
		fl.BoolVar(&f.ensemble, "ensemble", false, "request per-member columns and aggregate them")
	}

	if spec.Name == "forecast" || spec.Name == "historical" ||
		spec.Name == "ensemble" || spec.Name == "climate" {
		fl.StringVar(&f.temperatureUnit, "temperature-unit", "", "celsius or fahrenheit")
		fl.StringVar(&f.windSpeedUnit, "wind-speed-unit", "", "kmh, ms, mph or kn")
		fl.StringVar(&f.precipitationUnit, "precipitation-unit", "", "mm or inch")
	}
	if spec.Name == "marine" {
		fl.StringVar(&f.lengthUnit, "length-unit", "", "metric or imperial")
	}
	if spec.Name == "air-quality" {
		fl.StringVar(&f.domains, "domains", "", "auto, cams_europe or cams_global")
	}
	if spec.HasVariable(models.Hourly, "global_tilted_irradiance") {
		fl.Float64Var(&f.tilt, "tilt", 0, "panel tilt in degrees (0-90)")
		fl.Float64Var(&f.azimuth, "azimuth", 0, "panel azimuth in degrees (-180-180)")
	}

	cmd.AddCommand(newParamsCmd(a, spec))
	return cmd
}

// runEndpoint is the shared pipeline: flags -> params -> validation ->
// resolver -> URL -> fetch -> decode -> render.
func (a *app) runEndpoint(cmd *cobra.Command, spec *endpoint.Spec, f *endpointFlags) error {
	params, err := a.buildParams(cmd, spec, f)
	if err != nil {
		return err
	}
	if err := validate.Request(spec, params); err != nil {
		return err
	}

	ctx := cmd.Context()
	location := models.ResolvedLocation{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	}
	if params.City != "" {
		resolver := geocode.NewResolver(a.fetcher, endpoint.GeocodingURL, params.APIKey, a.log, a.errOut)
		location, err = resolver.Resolve(ctx, params.City, params.Country)
		if err != nil {
			return err
		}
		params.Latitude = location.Latitude
		params.Longitude = location.Longitude
	}

	url, err := request.BuildURL(spec, params, a.now())
	if err != nil {
		return err
	}

	body, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	resp, err := models.DecodeResponse(body)
	if err != nil {
		return errs.Upstreamf("%s", err)
	}

	doc := &render.Document{
		Spec:     spec,
		Location: location,
		Resp:     resp,
		Suffixes: suffixSet(spec, params),
		Median:   spec.EnsembleMembers || params.Ensemble,
	}
	return render.Render(a.out, a.cfg.Format, doc, a.renderOptions())
}

// suffixSet builds the model/member suffix association from the request,
// so the reshaper never has to guess where a variable name ends.
func suffixSet(spec *endpoint.Spec, p *request.Params) reshape.SuffixSet {
	if !spec.MultiModel {
		return reshape.NewSuffixSet(nil, false)
	}
	return reshape.NewSuffixSet(p.Models, spec.EnsembleMembers || p.Ensemble)
}

// buildParams merges endpoint flags with config-file defaults. Flags win;
// the config's default city applies only when no location was given at
// all.
func (a *app) buildParams(cmd *cobra.Command, spec *endpoint.Spec, f *endpointFlags) (*request.Params, error) {
	fl := cmd.Flags()

	p := &request.Params{
		Latitude:          f.lat,
		Longitude:         f.lon,
		City:              f.city,
		Country:           f.country,
		StartDate:         f.startDate,
		EndDate:           f.endDate,
		ForecastDays:      f.forecastDays,
		PastDays:          f.pastDays,
		ForecastSince:     f.forecastSince,
		Models:            splitList(f.modelList),
		Ensemble:          f.ensemble,
		TemperatureUnit:   firstOf(f.temperatureUnit, a.cfg.TemperatureUnit),
		WindSpeedUnit:     firstOf(f.windSpeedUnit, a.cfg.WindSpeedUnit),
		PrecipitationUnit: firstOf(f.precipitationUnit, a.cfg.PrecipitationUnit),
		LengthUnit:        f.lengthUnit,
		CellSelection:     f.cellSelection,
		Domains:           f.domains,
		Timezone:          firstOf(f.timezone, a.cfg.Timezone),
		APIKey:            a.cfg.APIKey,
	}

	if !fl.Changed("lat") && !fl.Changed("lon") && f.city == "" {
		if a.cfg.City == "" {
			return nil, errs.Usagef("no location: pass --lat/--lon or --city (or set a default city in the config file)")
		}
		p.City = a.cfg.City
		p.Country = firstOf(f.country, a.cfg.Country)
	}
	if fl.Changed("lat") != fl.Changed("lon") {
		return nil, errs.Usagef("--lat and --lon must be given together")
	}

	if fl.Changed("tilt") {
		p.Tilt = &f.tilt
	}
	if fl.Changed("azimuth") {
		p.Azimuth = &f.azimuth
	}

	for cat, on := range map[models.Category]bool{
		models.Hourly:  f.hourly,
		models.Daily:   f.daily,
		models.Current: f.current,
	} {
		if on && !spec.HasCategory(cat) {
			return nil, errs.Validationf("the %s does not have %s variables", spec.Title, cat)
		}
	}

	p.Hourly = categoryParams(spec, models.Hourly, f.hourly, f.hourlyParams)
	p.Daily = categoryParams(spec, models.Daily, f.daily, f.dailyParams)
	p.Current = categoryParams(spec, models.Current, f.current, f.currentParams)

	// Nothing selected: fall back to the endpoint's most useful block.
	if len(p.Hourly) == 0 && len(p.Daily) == 0 && len(p.Current) == 0 &&
		f.hourlyParams == "" && f.dailyParams == "" && f.currentParams == "" {
		switch {
		case spec.HasCategory(models.Current):
			p.Current = spec.Defaults(models.Current)
		case spec.HasCategory(models.Daily):
			p.Daily = spec.Defaults(models.Daily)
		case spec.HasCategory(models.Hourly):
			p.Hourly = spec.Defaults(models.Hourly)
		}
	}

	return p, nil
}

// categoryParams resolves one category: an explicit list wins, the bare
// boolean flag requests the endpoint defaults. The explicit list is kept
// verbatim even when invalid so validation can report each name.
func categoryParams(spec *endpoint.Spec, cat models.Category, defaults bool, list string) []string {
	if list != "" {
		return splitList(list)
	}
	if defaults {
		return spec.Defaults(cat)
	}
	return nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
