// Package model defines the data structures shared across gsmdata.
//
// This package contains the following main types:
//   - Field: One scraped specification (name, battery, OS, ...)
//   - Device: The ephemeral record extracted from one detail page
//   - Layout: A column ordering used when a Device is printed
//
// A Device is never stored. It is produced from one page fetch, printed,
// and discarded. Every value is free-form text taken from the page markup;
// no numeric parsing happens here.
package model
