package scraper

import (
	"context"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/nao1215/gsmdata/internal/extract"
	"github.com/nao1215/gsmdata/internal/model"
	"github.com/nao1215/gsmdata/internal/report"
)

// Fetcher retrieves and parses one HTML page.
// fetch.Client is the production implementation.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Filter decides which devices are emitted.
type Filter struct {
	// OSQuery must be a case-sensitive substring of the device's OS text.
	// Empty matches every device.
	OSQuery string
}

// Match reports whether the device passes the filter. A device without an
// OS value never matches a non-empty query.
func (f Filter) Match(device *model.Device) bool {
	if f.OSQuery == "" {
		return true
	}
	osText, ok := device.Lookup(model.FieldOS)
	if !ok {
		return false
	}
	return strings.Contains(osText, f.OSQuery)
}

// DetailScraper turns one detail page into at most one output row.
type DetailScraper struct {
	fetcher   Fetcher
	extractor *extract.Extractor
	writer    report.Writer
	filter    Filter
	logger    *slog.Logger
}

// DetailOption configures a DetailScraper.
type DetailOption func(*DetailScraper)

// WithFilter sets the filter applied before a device is written.
func WithFilter(f Filter) DetailOption {
	return func(d *DetailScraper) {
		d.filter = f
	}
}

// WithDetailLogger sets the logger. The default is slog.Default().
func WithDetailLogger(logger *slog.Logger) DetailOption {
	return func(d *DetailScraper) {
		d.logger = logger
	}
}

// NewDetailScraper creates a DetailScraper writing matching devices to writer.
func NewDetailScraper(fetcher Fetcher, extractor *extract.Extractor, writer report.Writer, opts ...DetailOption) *DetailScraper {
	d := &DetailScraper{
		fetcher:   fetcher,
		extractor: extractor,
		writer:    writer,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Scrape fetches pageURL and extracts its device. Scrape has no side
// effects on the output, so it is safe to call from several goroutines.
func (d *DetailScraper) Scrape(ctx context.Context, pageURL string) (*model.Device, error) {
	doc, err := d.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	device := d.extractor.Device(doc, pageURL)
	d.logger.Debug("device scraped", "url", pageURL, "name", device.Value(model.FieldName))
	return device, nil
}

// Emit writes the device when it passes the filter and reports whether it
// was written.
func (d *DetailScraper) Emit(device *model.Device) (bool, error) {
	if !d.filter.Match(device) {
		d.logger.Debug("device filtered out", "url", device.URL, "os", device.Value(model.FieldOS))
		return false, nil
	}
	if err := d.writer.Write(device); err != nil {
		return false, err
	}
	return true, nil
}

// Process scrapes pageURL and emits the result.
func (d *DetailScraper) Process(ctx context.Context, pageURL string) error {
	device, err := d.Scrape(ctx, pageURL)
	if err != nil {
		return err
	}
	_, err = d.Emit(device)
	return err
}
