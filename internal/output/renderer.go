package output

import (
	"encoding/json"
	"io"

	"github.com/denis-bt/sync-core-visualization/internal/model"
)

// Renderer writes a set of trace groups to an output stream.
type Renderer interface {
	Render(w io.Writer, groups []model.TraceGroup) error
}

// ---------------------------------------------------------------------------
// JSON Renderer (raw series for further processing)
// ---------------------------------------------------------------------------

// JSONRenderer writes the groups as one indented JSON array.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer { return &JSONRenderer{} }

func (r *JSONRenderer) Render(w io.Writer, groups []model.TraceGroup) error {
	if groups == nil {
		groups = []model.TraceGroup{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groups)
}
