package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// renderRaw writes the upstream body untouched. When color is on (an
// interactive terminal) the JSON is pretty-printed with keys and string
// values tinted; piped output stays byte-for-byte what the API sent.
func renderRaw(w io.Writer, body []byte, opts Options) error {
	if !opts.Color {
		_, err := w.Write(body)
		if err == nil && len(body) > 0 && body[len(body)-1] != '\n' {
			_, err = w.Write([]byte{'\n'})
		}
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		// Not JSON after all; pass it through as-is.
		_, werr := w.Write(body)
		return werr
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		fmt.Fprintln(w, tintJSONLine(line))
	}
	return nil
}

// tintJSONLine colors the key of a `"key": value` line and green-tints
// quoted string values. A line-oriented tint is enough here; the raw
// format is for eyeballing, not round-tripping.
func tintJSONLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	if strings.HasPrefix(trimmed, "\"") {
		if idx := strings.Index(trimmed, "\":"); idx >= 0 {
			key := trimmed[:idx+1]
			rest := trimmed[idx+1:]
			return indent + ansiCyan + key + ansiReset + tintValue(rest)
		}
	}
	return indent + tintValue(trimmed)
}

func tintValue(s string) string {
	start := strings.Index(s, "\"")
	end := strings.LastIndex(s, "\"")
	if start >= 0 && end > start {
		return s[:start] + ansiGreen + s[start:end+1] + ansiReset + s[end+1:]
	}
	return s
}
