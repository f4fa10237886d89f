package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nao1215/gsmdata/internal/model"
)

// TableWriter renders all devices as a rounded terminal table.
type TableWriter struct {
	bufferedWriter
}

// NewTableWriter creates a TableWriter.
func NewTableWriter(output io.Writer, layout model.Layout) *TableWriter {
	return &TableWriter{bufferedWriter{baseWriter: newBaseWriter(output, layout)}}
}

// Flush renders the table. Nothing is printed when no device was written.
func (w *TableWriter) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w.output)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(toRow(w.layout.Header()))
	for _, r := range w.rows {
		t.AppendRow(toRow(r))
	}
	t.Render()
	w.rows = nil
	return nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
