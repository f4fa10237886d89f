package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/nao1215/gsmdata/internal/model"
)

// File represents the structure of the gsmdata configuration file.
// Every field is optional; only keys present in the file override the
// defaults, and CLI flags override the file.
type File struct {
	// SiteRoot overrides the site that queries and links resolve against.
	SiteRoot *string `yaml:"site_root,omitempty"`

	// MinYear is the minimum release year of the search template.
	MinYear *int `yaml:"min_year,omitempty"`

	// MinBattery is the minimum battery capacity (mAh) of the search template.
	MinBattery *int `yaml:"min_battery,omitempty"`

	// Layout is "classic" or "extended".
	Layout *string `yaml:"layout,omitempty"`

	// Format is "tsv", "json", "markdown" or "table".
	Format *string `yaml:"format,omitempty"`

	// OnPageError is "skip" or "abort".
	OnPageError *string `yaml:"on_page_error,omitempty"`

	// Concurrency is the number of detail pages fetched in parallel.
	Concurrency *int `yaml:"concurrency,omitempty"`

	// Timeout is a Go duration string such as "30s".
	Timeout *string `yaml:"timeout,omitempty"`

	// UserAgent overrides the User-Agent header.
	UserAgent *string `yaml:"user_agent,omitempty"`

	// Headers are extra request headers, merged over existing ones.
	Headers map[string]string `yaml:"headers,omitempty"`

	// ResultsSelector matches device anchors on the results page.
	ResultsSelector *string `yaml:"results_selector,omitempty"`

	// Selectors maps field keys (name, battery, os, ...) to CSS selectors.
	Selectors map[string]string `yaml:"selectors,omitempty"`
}

// Apply copies every key set in the file onto cfg.
// Enumerated values are checked here so that typos in the file are reported
// with the offending key rather than as a generic validation failure.
func (f *File) Apply(cfg *Config) error {
	if f == nil {
		return nil
	}

	if f.Layout != nil {
		layout, err := model.ParseLayout(*f.Layout)
		if err != nil {
			return fmt.Errorf("layout: %w", ErrInvalidLayout)
		}
		cfg.Layout = layout
		cfg.MinYear = layout.DefaultMinYear()
		cfg.MinBattery = layout.DefaultMinBattery()
	}
	if f.SiteRoot != nil {
		cfg.SiteRoot = *f.SiteRoot
	}
	if f.MinYear != nil {
		cfg.MinYear = *f.MinYear
	}
	if f.MinBattery != nil {
		cfg.MinBattery = *f.MinBattery
	}
	if f.Format != nil {
		format, err := ParseFormat(*f.Format)
		if err != nil {
			return fmt.Errorf("format: %w", err)
		}
		cfg.Format = format
	}
	if f.OnPageError != nil {
		policy, err := ParsePageErrorPolicy(*f.OnPageError)
		if err != nil {
			return fmt.Errorf("on_page_error: %w", err)
		}
		cfg.OnPageError = policy
	}
	if f.Concurrency != nil {
		cfg.Concurrency = *f.Concurrency
	}
	if f.Timeout != nil {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("timeout: %w: %w", ErrInvalidTimeout, err)
		}
		cfg.Timeout = d
	}
	if f.UserAgent != nil {
		cfg.UserAgent = *f.UserAgent
	}
	if len(f.Headers) > 0 {
		if cfg.Headers == nil {
			cfg.Headers = make(map[string]string, len(f.Headers))
		}
		for k, v := range f.Headers {
			cfg.Headers[k] = v
		}
	}
	if f.ResultsSelector != nil {
		cfg.ResultsSelector = *f.ResultsSelector
	}
	if len(f.Selectors) > 0 {
		if cfg.Selectors == nil {
			cfg.Selectors = make(map[model.Field]string, len(f.Selectors))
		}
		for k, v := range f.Selectors {
			field := model.Field(strings.ToLower(strings.TrimSpace(k)))
			if !field.Valid() {
				return fmt.Errorf("selectors: %w: %q", ErrUnknownField, k)
			}
			cfg.Selectors[field] = v
		}
	}
	return nil
}

// ParseFormat converts a format name into an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if !isOneOf(f, Formats()) {
		return "", ErrInvalidFormat
	}
	return f, nil
}

// ParsePageErrorPolicy converts a policy name into a PageErrorPolicy.
func ParsePageErrorPolicy(s string) (PageErrorPolicy, error) {
	p := PageErrorPolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PageErrorSkip, PageErrorAbort:
		return p, nil
	default:
		return "", ErrInvalidPageErrorPolicy
	}
}
