// Package log builds the slog loggers used by gsmdata.
//
// Every logger returned here writes to the given writer (stderr in the CLI)
// and masks credentials that may come from user-supplied request headers or
// URLs before they are formatted. Standard output is reserved for data rows.
package log
