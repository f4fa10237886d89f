// Package scraper drives the two scraping stages: a results page is fetched
// and its device links collected, then every detail page is fetched,
// extracted into a model.Device, filtered by OS and handed to a
// report.Writer.
//
// Detail pages are processed in link order. A failing detail page is either
// skipped or aborts the run, depending on the configured
// config.PageErrorPolicy. A failing results page is always an error
// wrapping ErrSearchPage.
package scraper
