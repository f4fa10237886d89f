package report

import (
	"io"

	"github.com/nao1215/gsmdata/internal/model"
	"github.com/nao1215/markdown"
)

// MarkdownWriter renders all devices as a single GitHub-flavored table.
type MarkdownWriter struct {
	bufferedWriter
}

// NewMarkdownWriter creates a MarkdownWriter.
func NewMarkdownWriter(output io.Writer, layout model.Layout) *MarkdownWriter {
	return &MarkdownWriter{bufferedWriter{baseWriter: newBaseWriter(output, layout)}}
}

// Flush renders the table. Nothing is printed when no device was written.
func (w *MarkdownWriter) Flush() error {
	if len(w.rows) == 0 {
		return nil
	}
	md := markdown.NewMarkdown(w.output)
	md.Table(markdown.TableSet{
		Header: w.layout.Header(),
		Rows:   w.rows,
	})
	w.rows = nil
	return md.Build()
}
