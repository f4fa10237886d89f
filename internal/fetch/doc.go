// Package fetch retrieves pages over HTTP and parses them into goquery
// documents.
//
// Each call performs exactly one GET. There is no retry, no backoff and no
// caching: a transport failure, a non-2xx status or a body that cannot be
// decoded is returned to the caller, who decides whether the batch goes on.
//
// Response bodies are converted to UTF-8 according to the charset in the
// Content-Type header (or sniffed from the markup) before parsing.
package fetch
