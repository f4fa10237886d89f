package config

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/nao1215/gsmdata/internal/extract"
	"github.com/nao1215/gsmdata/internal/model"
	"github.com/nao1215/gsmdata/internal/search"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "gsmdata"

	// DefaultSiteRoot is the site that search queries and result links
	// are resolved against.
	DefaultSiteRoot = search.DefaultSiteRoot

	// DefaultResultsSelector matches the device anchors on a results page.
	DefaultResultsSelector = extract.DefaultResultsSelector

	// DefaultTimeout bounds each HTTP request.
	DefaultTimeout = 30 * time.Second

	// DefaultConcurrency of 1 keeps fetching strictly sequential.
	DefaultConcurrency = 1

	// DefaultLayout is the column ordering used when none is configured.
	DefaultLayout = model.LayoutClassic
)

// OutputFormat selects how device rows are written.
type OutputFormat string

// Supported output formats.
const (
	FormatTSV      OutputFormat = "tsv"
	FormatJSON     OutputFormat = "json"
	FormatMarkdown OutputFormat = "markdown"
	FormatTable    OutputFormat = "table"
)

// Formats returns all supported output formats.
func Formats() []OutputFormat {
	return []OutputFormat{FormatTSV, FormatJSON, FormatMarkdown, FormatTable}
}

// PageErrorPolicy decides what happens when a single detail page fails.
type PageErrorPolicy string

const (
	// PageErrorSkip logs the failure and continues with the next page.
	PageErrorSkip PageErrorPolicy = "skip"

	// PageErrorAbort stops the batch and returns the failure.
	PageErrorAbort PageErrorPolicy = "abort"
)

// Config holds all options of a gsmdata run.
// It is populated from layout defaults, then the config file, then CLI flags.
type Config struct {
	// SiteRoot is the absolute URL that relative links and queries are
	// resolved against.
	SiteRoot string

	// MinYear is the minimum release year substituted into the search template.
	MinYear int

	// MinBattery is the minimum battery capacity (mAh) substituted into
	// the search template.
	MinBattery int

	// Query is a raw search URL that replaces the template when set.
	Query string

	// OSQuery keeps only devices whose OS text contains it (case-sensitive).
	// Empty disables the filter.
	OSQuery string

	// HeaderOnly prints the header row and exits without network access.
	HeaderOnly bool

	// Layout is the column ordering of printed rows.
	Layout model.Layout

	// Format is the output format of printed rows.
	Format OutputFormat

	// OnPageError is the policy applied when a detail page fails.
	OnPageError PageErrorPolicy

	// Concurrency is the number of detail pages fetched in parallel.
	// 1 means strictly sequential.
	Concurrency int

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// UserAgent overrides the HTTP client's User-Agent header when set.
	UserAgent string

	// Headers are extra HTTP headers sent with every request.
	Headers map[string]string

	// ResultsSelector matches the device anchors on the results page.
	ResultsSelector string

	// Selectors overrides the built-in selector of individual fields.
	Selectors map[model.Field]string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the config file given on the command line, if any.
	ConfigFilePath string
}

// NewConfig creates a Config with default values for the default layout.
func NewConfig() *Config {
	return &Config{
		SiteRoot:        DefaultSiteRoot,
		MinYear:         DefaultLayout.DefaultMinYear(),
		MinBattery:      DefaultLayout.DefaultMinBattery(),
		Layout:          DefaultLayout,
		Format:          FormatTSV,
		OnPageError:     PageErrorSkip,
		Concurrency:     DefaultConcurrency,
		Timeout:         DefaultTimeout,
		ResultsSelector: DefaultResultsSelector,
		Headers:         make(map[string]string),
		Selectors:       make(map[model.Field]string),
	}
}

// XDGConfigDir returns the XDG config directory for gsmdata.
// On Linux: ~/.config/gsmdata
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if _, err := model.ParseLayout(string(c.Layout)); err != nil {
		return ErrInvalidLayout
	}

	if !isOneOf(c.Format, Formats()) {
		return ErrInvalidFormat
	}

	// Header-only runs never touch the network, so the rest is irrelevant.
	if c.HeaderOnly {
		return nil
	}

	if !strings.HasPrefix(c.SiteRoot, "http://") && !strings.HasPrefix(c.SiteRoot, "https://") {
		return ErrInvalidSiteRoot
	}

	if c.MinYear < 0 {
		return ErrInvalidYear
	}

	if c.MinBattery < 0 {
		return ErrInvalidBattery
	}

	if c.OnPageError != PageErrorSkip && c.OnPageError != PageErrorAbort {
		return ErrInvalidPageErrorPolicy
	}

	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if strings.TrimSpace(c.ResultsSelector) == "" {
		return ErrEmptyResultsSelector
	}

	return nil
}

func isOneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
