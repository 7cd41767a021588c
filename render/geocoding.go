package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/lstpsche/openmeteo-cli/geocode"
)

// Geocoding renders a geocoding search result list in the requested
// format. The raw body is kept around for the raw renderer.
func Geocoding(w io.Writer, format Format, results []geocode.Result, raw []byte, opts Options) error {
	switch format {
	case FormatRaw:
		return renderRaw(w, raw, opts)
	case FormatPorcelain:
		for i, res := range results {
			prefix := fmt.Sprintf("result.%d.", i)
			fmt.Fprintf(w, "%sname=%s\n", prefix, res.Name)
			fmt.Fprintf(w, "%scountry=%s\n", prefix, res.Country)
			fmt.Fprintf(w, "%scountry_code=%s\n", prefix, res.CountryCode)
			fmt.Fprintf(w, "%sadmin1=%s\n", prefix, res.Admin1)
			fmt.Fprintf(w, "%slatitude=%s\n", prefix, number(res.Latitude))
			fmt.Fprintf(w, "%slongitude=%s\n", prefix, number(res.Longitude))
			fmt.Fprintf(w, "%selevation=%s\n", prefix, number(res.Elevation))
			fmt.Fprintf(w, "%stimezone=%s\n", prefix, res.Timezone)
			fmt.Fprintf(w, "%spopulation=%d\n", prefix, res.Population)
		}
		return nil
	case FormatCompact:
		fmt.Fprintln(w, "name\tcountry\tadmin1\tlat\tlon\ttz\tpopulation")
		for _, res := range results {
			fmt.Fprintln(w, strings.Join([]string{
				res.Name, res.CountryCode, res.Admin1,
				number(res.Latitude), number(res.Longitude),
				res.Timezone, fmt.Sprintf("%d", res.Population),
			}, "\t"))
		}
		return nil
	case FormatHuman:
		for i, res := range results {
			place := res.Name
			if res.Admin1 != "" {
				place += ", " + res.Admin1
			}
			if res.Country != "" {
				place += ", " + res.Country
			}
			fmt.Fprintf(w, "%2d. %s 📍 (%.4f°, %.4f°)",
				i+1, colorize(opts.Color, ansiBold, place), res.Latitude, res.Longitude)
			if res.Timezone != "" {
				fmt.Fprintf(w, "  %s", colorize(opts.Color, ansiDim, res.Timezone))
			}
			if res.Population > 0 {
				fmt.Fprintf(w, "  pop %d", res.Population)
			}
			fmt.Fprintln(w)
		}
		return nil
	}
	return fmt.Errorf("unknown output format %d", int(format))
}
