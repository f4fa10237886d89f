package report

import (
	"fmt"
	"io"

	"github.com/nao1215/gsmdata/internal/config"
	"github.com/nao1215/gsmdata/internal/model"
)

// Writer outputs devices in one format.
// Callers must call Flush once after the last Write.
type Writer interface {
	// Write outputs a single device, or buffers it for Flush.
	Write(device *model.Device) error

	// Flush renders buffered devices. Streaming writers return nil.
	Flush() error
}

// NewWriter returns the Writer for format, printing the columns of layout.
func NewWriter(format config.OutputFormat, output io.Writer, layout model.Layout) (Writer, error) {
	switch format {
	case config.FormatTSV:
		return NewTSVWriter(output, layout), nil
	case config.FormatJSON:
		return NewJSONWriter(output, layout), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(output, layout), nil
	case config.FormatTable:
		return NewTableWriter(output, layout), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrInvalidFormat, format)
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
	layout model.Layout
}

func newBaseWriter(output io.Writer, layout model.Layout) baseWriter {
	return baseWriter{output: output, layout: layout}
}

// bufferedWriter collects rows for writers that render on Flush.
type bufferedWriter struct {
	baseWriter
	rows [][]string
}

// Write buffers the device's row.
func (w *bufferedWriter) Write(device *model.Device) error {
	w.rows = append(w.rows, device.Row(w.layout))
	return nil
}
