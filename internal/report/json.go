package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/gsmdata/internal/model"
)

// JSONWriter prints devices as JSON Lines: one compact object per device
// holding the layout's field keys and the detail page URL.
type JSONWriter struct {
	baseWriter
	enc *json.Encoder
}

// NewJSONWriter creates a JSONWriter.
func NewJSONWriter(output io.Writer, layout model.Layout) *JSONWriter {
	enc := json.NewEncoder(output)
	enc.SetEscapeHTML(false)
	return &JSONWriter{baseWriter: newBaseWriter(output, layout), enc: enc}
}

// Write encodes the device. Absent fields carry the placeholder, as in TSV.
func (w *JSONWriter) Write(device *model.Device) error {
	obj := make(map[string]string, len(w.layout.Columns())+1)
	for _, f := range w.layout.Columns() {
		obj[string(f)] = device.Value(f)
	}
	obj["url"] = device.URL
	return w.enc.Encode(obj)
}

// Flush is a no-op.
func (w *JSONWriter) Flush() error { return nil }
