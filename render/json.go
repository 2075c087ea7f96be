package render

import (
	"encoding/json"
	"io"

	"github.com/ngu132/eiken-vocab/count"
)

// JSONRenderer writes counting results as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Result serializes the two frequency tables as one JSON object.
func (r *JSONRenderer) Result(res count.Result) {
	json.NewEncoder(r.W).Encode(res)
}

// compile-time interface check
var _ Renderer = (*JSONRenderer)(nil)
