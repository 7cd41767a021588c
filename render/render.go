// Package render turns decoded responses into the four output forms:
// human, porcelain, compact and raw. Renderer selection is a pure
// function of the format flag; rendering itself is deterministic, so the
// same response and format always produce byte-identical output.
package render

import (
	"fmt"
	"io"

	"github.com/lstpsche/openmeteo-cli/endpoint"
	"github.com/lstpsche/openmeteo-cli/models"
	"github.com/lstpsche/openmeteo-cli/reshape"
)

// Format selects the output renderer.
type Format int

const (
	// FormatHuman is the default colorized, emoji-annotated output.
	FormatHuman Format = iota
	// FormatPorcelain is flat machine-parseable key=value output.
	FormatPorcelain
	// FormatCompact is token-minimal tabular output for LLM consumers.
	FormatCompact
	// FormatRaw passes the upstream JSON through untouched.
	FormatRaw
)

// Options carries presentation switches shared by the renderers.
type Options struct {
	// Color enables ANSI colors; off when stdout is not a terminal.
	Color bool
}

// Document bundles a decoded response with the request context renderers
// need: the endpoint tables, the resolved location for the header, and
// the suffix association for multi-model aggregation.
type Document struct {
	Spec     *endpoint.Spec
	Location models.ResolvedLocation
	Resp     *models.APIResponse
	Suffixes reshape.SuffixSet
	// Median enables median statistics (ensemble endpoints).
	Median bool
}

// Render writes the document in the requested format.
func Render(w io.Writer, format Format, doc *Document, opts Options) error {
	switch format {
	case FormatHuman:
		return renderHuman(w, doc, opts)
	case FormatPorcelain:
		return renderPorcelain(w, doc)
	case FormatCompact:
		return renderCompact(w, doc)
	case FormatRaw:
		return renderRaw(w, doc.Resp.Raw, opts)
	}
	return fmt.Errorf("unknown output format %d", int(format))
}

// noData is the explicit marker for a time-step where every variable is
// null, so "no coverage here" stays distinguishable from "not requested".
const noData = "no data"

// ansi escape codes used by the human and raw renderers.
const (
	ansiReset = "\x1b[0m"
	ansiBold  = "\x1b[1m"
	ansiDim   = "\x1b[2m"
	ansiCyan  = "\x1b[36m"
	ansiGreen = "\x1b[32m"
)

func colorize(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return code + s + ansiReset
}
