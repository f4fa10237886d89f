package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/andybalholm/cascadia"
	"github.com/nao1215/gsmdata/internal/config"
	"github.com/nao1215/gsmdata/internal/extract"
	"github.com/nao1215/gsmdata/internal/model"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes one run.
type Stats struct {
	// Links is the number of detail links found on the results page.
	Links int
	// Emitted is the number of devices written.
	Emitted int
	// Filtered is the number of devices dropped by the filter.
	Filtered int
	// Failed is the number of detail pages that could not be scraped.
	Failed int
}

// SearchScraper fetches a results page and drives a DetailScraper over
// every device link on it.
type SearchScraper struct {
	fetcher     Fetcher
	detail      *DetailScraper
	root        *url.URL
	results     cascadia.Selector
	policy      config.PageErrorPolicy
	concurrency int
	logger      *slog.Logger
}

// SearchOption configures a SearchScraper.
type SearchOption func(*SearchScraper)

// WithResultsSelector sets the selector matching device anchors.
func WithResultsSelector(sel cascadia.Selector) SearchOption {
	return func(s *SearchScraper) {
		s.results = sel
	}
}

// WithPageErrorPolicy sets what happens when a detail page fails.
// Default is config.PageErrorSkip.
func WithPageErrorPolicy(p config.PageErrorPolicy) SearchOption {
	return func(s *SearchScraper) {
		s.policy = p
	}
}

// WithConcurrency sets how many detail pages are fetched at once.
// Values below 2 keep processing sequential.
func WithConcurrency(n int) SearchOption {
	return func(s *SearchScraper) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// WithSearchLogger sets the logger. The default is slog.Default().
func WithSearchLogger(logger *slog.Logger) SearchOption {
	return func(s *SearchScraper) {
		s.logger = logger
	}
}

// NewSearchScraper creates a SearchScraper. Links found on the results
// page are resolved against root.
func NewSearchScraper(fetcher Fetcher, detail *DetailScraper, root *url.URL, opts ...SearchOption) *SearchScraper {
	s := &SearchScraper{
		fetcher:     fetcher,
		detail:      detail,
		root:        root,
		results:     cascadia.MustCompile(extract.DefaultResultsSelector),
		policy:      config.PageErrorSkip,
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// CollectLinks fetches searchURL and returns the absolute detail links in
// document order. Only the first results page is read.
func (s *SearchScraper) CollectLinks(ctx context.Context, searchURL string) ([]string, error) {
	doc, err := s.fetcher.Fetch(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSearchPage, err)
	}
	links := extract.Links(doc, s.results, s.root)
	s.logger.Debug("links collected", "url", searchURL, "count", len(links))
	return links, nil
}

// Run collects the links on searchURL and processes every detail page.
// Rows already written stay written when Run returns an error.
func (s *SearchScraper) Run(ctx context.Context, searchURL string) (Stats, error) {
	start := time.Now()

	links, err := s.CollectLinks(ctx, searchURL)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Links: len(links)}
	if s.concurrency > 1 && len(links) > 1 {
		err = s.runParallel(ctx, links, &stats)
	} else {
		err = s.runSequential(ctx, links, &stats)
	}

	s.logger.Info("search finished",
		"links", stats.Links,
		"emitted", stats.Emitted,
		"filtered", stats.Filtered,
		"failed", stats.Failed,
		"elapsed", time.Since(start),
	)
	return stats, err
}

func (s *SearchScraper) runSequential(ctx context.Context, links []string, stats *Stats) error {
	for _, link := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		device, err := s.detail.Scrape(ctx, link)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if s.policy == config.PageErrorAbort {
				stats.Failed++
				return detailError(link, err)
			}
			s.skip(link, err, stats)
			continue
		}

		if err := s.emit(device, stats); err != nil {
			return err
		}
	}
	return nil
}

// runParallel fetches with bounded concurrency and emits in link order once
// every fetch has finished. When the run is cut short, either by the first
// failure under the abort policy or by cancellation of ctx, the devices
// before the first gap are still emitted.
func (s *SearchScraper) runParallel(ctx context.Context, links []string, stats *Stats) error {
	devices := make([]*model.Device, len(links))
	errs := make([]error, len(links))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, link := range links {
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			device, err := s.detail.Scrape(gctx, link)
			if err != nil {
				errs[i] = err
				if s.policy == config.PageErrorAbort {
					return detailError(link, err)
				}
				return nil
			}
			devices[i] = device
			return nil
		})
	}
	waitErr := g.Wait()
	ctxErr := ctx.Err()

	for i, link := range links {
		if devices[i] == nil {
			switch {
			case waitErr != nil:
				stats.Failed++
				return waitErr
			case ctxErr != nil && (errs[i] == nil || errors.Is(errs[i], ctxErr)):
				return ctxErr
			}
			s.skip(link, errs[i], stats)
			continue
		}
		if err := s.emit(devices[i], stats); err != nil {
			return err
		}
	}
	if waitErr != nil {
		return waitErr
	}
	return ctxErr
}

func (s *SearchScraper) emit(device *model.Device, stats *Stats) error {
	written, err := s.detail.Emit(device)
	if err != nil {
		return fmt.Errorf("write %s: %w", device.URL, err)
	}
	if written {
		stats.Emitted++
	} else {
		stats.Filtered++
	}
	return nil
}

func (s *SearchScraper) skip(link string, err error, stats *Stats) {
	stats.Failed++
	s.logger.Warn("skipping detail page", "url", link, "error", err)
}

func detailError(link string, err error) error {
	return fmt.Errorf("detail page %s: %w", link, err)
}
