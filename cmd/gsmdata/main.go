// Package main provides the entry point for the gsmdata CLI.
//
// gsmdata runs a filtered device search on GSMArena, follows every result
// and prints one tab-separated row of specifications per device.
//
// Usage:
//
//	gsmdata                      # classic layout, year >= 2020, battery >= 3300 mAh
//	gsmdata -y 2023 -b 5000 -o Android
//	gsmdata -h                   # header row only
//
// See --help for all available options.
package main

func main() {
	Execute()
}
