package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lstpsche/openmeteo-cli/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
# defaults for the weather tooling
api_key = "secret"
format = llm
city = Berlin
country = DE
timeout = 10s
verbose = true
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != "secret" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Format != render.FormatCompact {
		t.Errorf("format = %v", cfg.Format)
	}
	if cfg.City != "Berlin" || cfg.Country != "DE" {
		t.Errorf("default location = %q/%q", cfg.City, cfg.Country)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", cfg.Timeout)
	}
	if !cfg.Verbose {
		t.Error("verbose not applied")
	}
	// Untouched keys keep their defaults.
	if cfg.Timezone != "auto" {
		t.Errorf("timezone default = %q", cfg.Timezone)
	}
}

func TestLoadMissingDefaultFileIsFine(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope"), false)
	if err != nil {
		t.Fatalf("missing default file must not error: %v", err)
	}
	if cfg.Format != render.FormatHuman {
		t.Errorf("format = %v", cfg.Format)
	}
}

func TestLoadMissingExplicitFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope"), true); err == nil {
		t.Fatal("explicitly named missing file must error")
	}
}

func TestLoadUnknownKey(t *testing.T) {
	path := writeConfig(t, "api_keey = oops\n")
	_, err := Load(path, true)
	if err == nil || !strings.Contains(err.Error(), `unknown key "api_keey"`) {
		t.Errorf("err = %v", err)
	}
}

func TestLoadMalformedLine(t *testing.T) {
	path := writeConfig(t, "just some words\n")
	_, err := Load(path, true)
	if err == nil || !strings.Contains(err.Error(), "expected key=value") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadBadFormatValue(t *testing.T) {
	path := writeConfig(t, "format = yaml\n")
	if _, err := Load(path, true); err == nil {
		t.Fatal("unknown format value must error")
	}
}

func TestEnvKeyOverridesFile(t *testing.T) {
	path := writeConfig(t, "api_key = from-file\n")
	t.Setenv(EnvAPIKey, "from-env")
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.APIKey != "from-env" {
		t.Errorf("api key = %q, env must win over file", cfg.APIKey)
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfigPath, "/tmp/custom-config")
	if got := DefaultPath(); got != "/tmp/custom-config" {
		t.Errorf("path = %q", got)
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in   string
		want render.Format
		ok   bool
	}{
		{"human", render.FormatHuman, true},
		{"", render.FormatHuman, true},
		{"porcelain", render.FormatPorcelain, true},
		{"llm", render.FormatCompact, true},
		{"compact", render.FormatCompact, true},
		{"raw", render.FormatRaw, true},
		{"json", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseFormat(tc.in)
		if tc.ok != (err == nil) {
			t.Errorf("ParseFormat(%q) err = %v", tc.in, err)
			continue
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
