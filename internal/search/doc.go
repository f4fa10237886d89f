// Package search builds the GSMArena phone finder URL.
//
// The finder query is a fixed template: display size, resolution,
// storage, connectivity, maker, availability and OS filters are
// constants, and only the minimum release year and minimum battery
// capacity are substituted. A caller can bypass the template entirely
// with a raw override URL.
package search
