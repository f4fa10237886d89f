package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidSiteRoot is returned when the site root is not an http(s) URL.
	ErrInvalidSiteRoot = errors.New("invalid site root: must start with http:// or https://")

	// ErrInvalidYear is returned for a negative minimum year.
	ErrInvalidYear = errors.New("invalid year: must be non-negative")

	// ErrInvalidBattery is returned for a negative minimum battery capacity.
	ErrInvalidBattery = errors.New("invalid battery capacity: must be non-negative")

	// ErrInvalidLayout is returned for an unknown column layout.
	ErrInvalidLayout = errors.New("invalid layout: must be classic or extended")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid format: must be tsv, json, markdown or table")

	// ErrInvalidPageErrorPolicy is returned for an unknown page error policy.
	ErrInvalidPageErrorPolicy = errors.New("invalid page error policy: must be skip or abort")

	// ErrInvalidConcurrency is returned when concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrInvalidTimeout is returned when the request timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrEmptyResultsSelector is returned when the results selector is blank.
	ErrEmptyResultsSelector = errors.New("results selector must not be empty")
)

// ErrUnknownField is returned when the config file names a selector for a
// field that does not exist.
var ErrUnknownField = errors.New("unknown field")
