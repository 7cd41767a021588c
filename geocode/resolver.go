// Package geocode turns free-text city queries into coordinates via the
// geocoding endpoint. It backs both the city flags of the weather
// commands and the standalone geocoding subcommand.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"github.com/lstpsche/openmeteo-cli/errs"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/request"
)

// Result is one geocoding hit.
type Result struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Elevation   float64 `json:"elevation"`
	CountryCode string  `json:"country_code"`
	Country     string  `json:"country"`
	Admin1      string  `json:"admin1"`
	Timezone    string  `json:"timezone"`
	Population  int     `json:"population"`
}

type searchResponse struct {
	Results []Result `json:"results"`
}

// Resolver queries the geocoding endpoint.
type Resolver struct {
	fetcher request.Fetcher
	baseURL string
	apiKey  string
	log     *zap.Logger
	warnOut io.Writer
}

// NewResolver creates a resolver. Warnings (country-filter fallback) are
// written to warnOut, which should be stderr so stdout stays parseable.
func NewResolver(fetcher request.Fetcher, baseURL, apiKey string, log *zap.Logger, warnOut io.Writer) *Resolver {
	return &Resolver{
		fetcher: fetcher,
		baseURL: baseURL,
		apiKey:  apiKey,
		log:     log,
		warnOut: warnOut,
	}
}

// Search returns up to count geocoding hits for a name, optionally
// filtered by ISO-3166-1 alpha-2 country code.
func (r *Resolver) Search(ctx context.Context, name, countryCode string, count int, language string) ([]Result, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("count", strconv.Itoa(count))
	q.Set("format", "json")
	if countryCode != "" {
		q.Set("countryCode", countryCode)
	}
	if language != "" {
		q.Set("language", language)
	}
	if r.apiKey != "" {
		q.Set("apikey", r.apiKey)
	}

	body, err := r.fetcher.Fetch(ctx, r.baseURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("malformed geocoding response: %w", err)
	}
	return resp.Results, nil
}

// Resolve returns the top geocoding hit for a city. When a country filter
// yields nothing, it retries once unfiltered and warns: users commonly
// pass full country names instead of ISO codes, and a best-effort match
// with a visible warning beats failing hard.
func (r *Resolver) Resolve(ctx context.Context, city, countryCode string) (models.ResolvedLocation, error) {
	results, err := r.Search(ctx, city, countryCode, 1, "")
	if err != nil {
		return models.ResolvedLocation{}, err
	}

	if len(results) == 0 && countryCode != "" {
		results, err = r.Search(ctx, city, "", 1, "")
		if err != nil {
			return models.ResolvedLocation{}, err
		}
		if len(results) > 0 {
			fmt.Fprintf(r.warnOut,
				"warning: no match for %q in country %q; using %s, %s instead (country filters take ISO codes like GB or DE)\n",
				city, countryCode, results[0].Name, results[0].Country)
		}
	}

	if len(results) == 0 {
		if countryCode != "" {
			return models.ResolvedLocation{}, errs.Resolutionf(
				"location %q not found (tried with and without country filter %q)", city, countryCode)
		}
		return models.ResolvedLocation{}, errs.Resolutionf("location %q not found", city)
	}

	top := results[0]
	r.log.Debug("resolved location",
		zap.String("name", top.Name),
		zap.String("country", top.CountryCode),
		zap.Float64("lat", top.Latitude),
		zap.Float64("lon", top.Longitude))

	return models.ResolvedLocation{
		Latitude:   top.Latitude,
		Longitude:  top.Longitude,
		Name:       top.Name,
		Country:    top.Country,
		Admin1:     top.Admin1,
		Timezone:   top.Timezone,
		Population: top.Population,
		Elevation:  top.Elevation,
	}, nil
}
