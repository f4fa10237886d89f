package report

import (
	"io"
	"strings"

	"github.com/nao1215/gsmdata/internal/model"
)

// TSVWriter prints one tab-separated line per device, values only.
// Values are written as extracted. Field text has its whitespace collapsed
// during extraction, so it never contains tabs or newlines.
type TSVWriter struct {
	baseWriter
}

// NewTSVWriter creates a TSVWriter.
func NewTSVWriter(output io.Writer, layout model.Layout) *TSVWriter {
	return &TSVWriter{baseWriter: newBaseWriter(output, layout)}
}

// Write prints the device row.
func (w *TSVWriter) Write(device *model.Device) error {
	return writeLine(w.output, device.Row(w.layout))
}

// Flush is a no-op.
func (w *TSVWriter) Flush() error { return nil }

// WriteHeader prints the tab-separated header line of layout.
func WriteHeader(output io.Writer, layout model.Layout) error {
	return writeLine(output, layout.Header())
}

func writeLine(output io.Writer, cells []string) error {
	_, err := io.WriteString(output, strings.Join(cells, "\t")+"\n")
	return err
}
