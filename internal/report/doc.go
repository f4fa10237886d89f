// Package report writes scraped devices to an output stream.
//
// TSV and JSON writers stream one line per device as soon as it is written.
// Markdown and table writers need every row to size their columns, so they
// buffer devices and render on Flush. The TSV writer is the default and the
// only format used for the header line.
package report
