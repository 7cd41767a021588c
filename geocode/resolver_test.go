package geocode

import (
	"bytes"
	"context"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lstpsche/openmeteo-cli/errs"
)

// scriptedFetcher returns canned bodies in order and records request URLs.
type scriptedFetcher struct {
	bodies []string
	urls   []string
}

func (f *scriptedFetcher) Fetch(_ context.Context, u string) ([]byte, error) {
	f.urls = append(f.urls, u)
	body := f.bodies[0]
	if len(f.bodies) > 1 {
		f.bodies = f.bodies[1:]
	}
	return []byte(body), nil
}

const londonHit = `{"results":[{"id":1,"name":"London","latitude":51.50853,"longitude":-0.12574,"country":"United Kingdom","country_code":"GB","admin1":"England","timezone":"Europe/London","population":8961989}]}`

func newTestResolver(f *scriptedFetcher, warn *bytes.Buffer) *Resolver {
	return NewResolver(f, "https://geocoding-api.open-meteo.com/v1/search", "", zap.NewNop(), warn)
}

func TestResolveTopHit(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{londonHit}}
	var warn bytes.Buffer
	loc, err := newTestResolver(f, &warn).Resolve(context.Background(), "London", "GB")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if loc.Name != "London" || loc.Country != "United Kingdom" {
		t.Errorf("location = %+v", loc)
	}
	if loc.Latitude != 51.50853 || loc.Longitude != -0.12574 {
		t.Errorf("coordinates = %v, %v", loc.Latitude, loc.Longitude)
	}
	if warn.Len() != 0 {
		t.Errorf("unexpected warning: %q", warn.String())
	}
	if len(f.urls) != 1 {
		t.Fatalf("expected a single request, got %d", len(f.urls))
	}
	u, err := url.Parse(f.urls[0])
	if err != nil {
		t.Fatal(err)
	}
	q := u.Query()
	if q.Get("name") != "London" || q.Get("countryCode") != "GB" || q.Get("count") != "1" {
		t.Errorf("query = %v", q)
	}
}

func TestResolveCountryFallbackWarnsOnce(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{`{"results":[]}`, londonHit}}
	var warn bytes.Buffer
	loc, err := newTestResolver(f, &warn).Resolve(context.Background(), "London", "United Kingdom")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if loc.Name != "London" {
		t.Errorf("fallback did not use unfiltered hit: %+v", loc)
	}
	if len(f.urls) != 2 {
		t.Fatalf("expected filtered then unfiltered request, got %d", len(f.urls))
	}
	if u, _ := url.Parse(f.urls[1]); u.Query().Get("countryCode") != "" {
		t.Error("retry must drop the country filter")
	}
	out := warn.String()
	if n := strings.Count(out, "warning:"); n != 1 {
		t.Errorf("want exactly one warning, got %d:\n%s", n, out)
	}
	if !strings.Contains(out, `"United Kingdom"`) || !strings.Contains(out, "ISO codes") {
		t.Errorf("warning must name the rejected filter and hint at ISO codes:\n%s", out)
	}
}

func TestResolveBothPassesEmpty(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{`{"results":[]}`}}
	var warn bytes.Buffer
	_, err := newTestResolver(f, &warn).Resolve(context.Background(), "Atlantis", "GR")
	if err == nil {
		t.Fatal("expected resolution error")
	}
	if !errs.IsKind(err, errs.KindResolution) {
		t.Errorf("kind = %v", err)
	}
	if !strings.Contains(err.Error(), "Atlantis") || !strings.Contains(err.Error(), "GR") {
		t.Errorf("error must name query and filter: %v", err)
	}
	if warn.Len() != 0 {
		t.Errorf("no warning when nothing matched at all, got %q", warn.String())
	}
}

func TestResolveNoFilterNotFound(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{`{"results":[]}`}}
	var warn bytes.Buffer
	_, err := newTestResolver(f, &warn).Resolve(context.Background(), "Atlantis", "")
	if err == nil || !errs.IsKind(err, errs.KindResolution) {
		t.Fatalf("expected resolution error, got %v", err)
	}
	if len(f.urls) != 1 {
		t.Errorf("no country filter means no retry, got %d requests", len(f.urls))
	}
}

func TestSearchMalformedBody(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{`not json`}}
	var warn bytes.Buffer
	_, err := newTestResolver(f, &warn).Search(context.Background(), "London", "", 5, "")
	if err == nil || !strings.Contains(err.Error(), "malformed geocoding response") {
		t.Errorf("err = %v", err)
	}
}

func TestSearchPassesLanguageAndCount(t *testing.T) {
	f := &scriptedFetcher{bodies: []string{londonHit}}
	var warn bytes.Buffer
	results, err := newTestResolver(f, &warn).Search(context.Background(), "Londres", "", 10, "fr")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d", len(results))
	}
	u, _ := url.Parse(f.urls[0])
	q := u.Query()
	if q.Get("count") != "10" || q.Get("language") != "fr" || q.Get("format") != "json" {
		t.Errorf("query = %v", q)
	}
}
