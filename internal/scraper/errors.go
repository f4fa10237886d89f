package scraper

import "errors"

// ErrSearchPage is returned when the results page cannot be fetched or parsed.
var ErrSearchPage = errors.New("search page failed")
