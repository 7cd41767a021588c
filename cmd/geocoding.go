package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/geocode"
	"github.com/lstpsche/openmeteo-cli/render"
)

// newGeocodingCmd builds the geocoding search command.
func newGeocodingCmd(a *app) *cobra.Command {
	var (
		country  string
		count    int
		language string
	)
	cmd := &cobra.Command{
		Use:   "geocoding <name>",
		Short: "Search the Geocoding API for a place name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == "" {
				return errs.Usagef("place name must not be empty")
			}
			if count < 1 || count > endpoint.GeocodingMaxCount {
				return errs.Validationf("--count %d out of range [1, %d]",
					count, endpoint.GeocodingMaxCount)
			}

			resolver := geocode.NewResolver(a.fetcher, endpoint.GeocodingURL,
				a.cfg.APIKey, a.log, a.errOut)
			results, err := resolver.Search(cmd.Context(), name, country, count, language)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return errs.Resolutionf("no geocoding results for %q", name)
			}

			// The raw renderer needs a body; re-encode the typed results
			// so all four formats share one code path.
			raw, err := json.Marshal(map[string]any{"results": results})
			if err != nil {
				return fmt.Errorf("encoding results: %w", err)
			}
			return render.Geocoding(a.out, a.cfg.Format, results, raw, a.renderOptions())
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "ISO-3166 country code filter")
	cmd.Flags().IntVar(&count, "count", 10, "number of results (1-100)")
	cmd.Flags().StringVar(&language, "language", "", "result language code")
	return cmd
}
