package output

import (
	"encoding/json"
	"io"
	"os"

	"mission-copilot/internal/mission"
)

// JSONStdoutWriter prints each plan as one JSON document.
type JSONStdoutWriter struct {
	out    io.Writer
	indent bool
}

// NewJSONStdoutWriter creates a JSONStdoutWriter writing to os.Stdout.
func NewJSONStdoutWriter(indent bool) *JSONStdoutWriter {
	return NewJSONWriter(os.Stdout, indent)
}

// NewJSONWriter creates a JSON writer on an arbitrary stream.
func NewJSONWriter(out io.Writer, indent bool) *JSONStdoutWriter {
	return &JSONStdoutWriter{out: out, indent: indent}
}

// WritePlan outputs the plan in JSON format.
func (w *JSONStdoutWriter) WritePlan(p *mission.Plan) error {
	enc := json.NewEncoder(w.out)
	if w.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(p)
}
