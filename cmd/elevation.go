package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/render"
	"github.com/lstpsche/openmeteo-cli/request"
	"github.com/lstpsche/openmeteo-cli/reshape"
	"github.com/lstpsche/openmeteo-cli/validate"
)

// newElevationCmd builds the elevation command. Unlike the time-series
// endpoints it takes coordinate lists: up to 100 points per request.
func newElevationCmd(a *app, spec *endpoint.Spec) *cobra.Command {
	var latList, lonList string
	cmd := &cobra.Command{
		Use:   "elevation",
		Short: "Query the Elevation API",
		Long: `Look up terrain elevation for one or more coordinates.

Coordinates are comma-separated lists of equal length:
  openmeteo elevation --lat 47.37,46.95 --lon 8.55,7.45`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lats, err := parseFloatList("--lat", latList)
			if err != nil {
				return err
			}
			lons, err := parseFloatList("--lon", lonList)
			if err != nil {
				return err
			}

			params := &request.Params{
				Latitudes:  lats,
				Longitudes: lons,
				APIKey:     a.cfg.APIKey,
			}
			if err := validate.Request(spec, params); err != nil {
				return err
			}

			url, err := request.BuildURL(spec, params, a.now())
			if err != nil {
				return err
			}
			body, err := a.fetcher.Fetch(cmd.Context(), url)
			if err != nil {
				return err
			}
			resp, err := models.DecodeElevation(body)
			if err != nil {
				return errs.Upstreamf("%s", err)
			}

			doc := &render.Document{
				Spec:     spec,
				Resp:     resp,
				Suffixes: reshape.NewSuffixSet(nil, false),
			}
			return render.Render(a.out, a.cfg.Format, doc, a.renderOptions())
		},
	}

	cmd.Flags().StringVar(&latList, "lat", "", "comma-separated latitudes")
	cmd.Flags().StringVar(&lonList, "lon", "", "comma-separated longitudes")
	return cmd
}

func parseFloatList(flag, s string) ([]float64, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, errs.Usagef("invalid %s value %q", flag, strings.TrimSpace(p))
		}
		out = append(out, f)
	}
	return out, nil
}
