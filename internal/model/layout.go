package model

import (
	"errors"
	"fmt"
	"strings"
)

// Layout selects which fields are printed and in what order.
type Layout string

const (
	// LayoutClassic prints Name, Battery Capacity, OS, Released, Price, Screensize.
	LayoutClassic Layout = "classic"

	// LayoutExtended prints Battery Capacity, Screensize, RAM, Chipset,
	// Resolution, Name, Released, OS.
	LayoutExtended Layout = "extended"
)

// ErrUnknownLayout is returned by ParseLayout for unsupported names.
var ErrUnknownLayout = errors.New("unknown layout")

// Layouts returns all supported layouts.
func Layouts() []Layout {
	return []Layout{LayoutClassic, LayoutExtended}
}

// ParseLayout converts a user supplied name into a Layout.
// Matching is case-insensitive.
func ParseLayout(name string) (Layout, error) {
	l := Layout(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Layouts() {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected %s)", ErrUnknownLayout, name, LayoutNames())
}

// LayoutNames returns the supported layout names joined for messages.
func LayoutNames() string {
	layouts := Layouts()
	names := make([]string, len(layouts))
	for i, l := range layouts {
		names[i] = string(l)
	}
	return strings.Join(names, " or ")
}

// Columns returns the fields of the layout in print order.
func (l Layout) Columns() []Field {
	switch l {
	case LayoutExtended:
		return []Field{
			FieldBattery,
			FieldScreenSize,
			FieldRAM,
			FieldChipset,
			FieldResolution,
			FieldName,
			FieldReleased,
			FieldOS,
		}
	default:
		return []Field{
			FieldName,
			FieldBattery,
			FieldOS,
			FieldReleased,
			FieldPrice,
			FieldScreenSize,
		}
	}
}

// Header returns the column titles of the layout in print order.
func (l Layout) Header() []string {
	columns := l.Columns()
	header := make([]string, len(columns))
	for i, f := range columns {
		header[i] = f.Title()
	}
	return header
}

// DefaultMinYear is the minimum release year used when nothing else is configured.
func (l Layout) DefaultMinYear() int {
	if l == LayoutExtended {
		return 2023
	}
	return 2020
}

// DefaultMinBattery is the minimum battery capacity in mAh used when
// nothing else is configured.
func (l Layout) DefaultMinBattery() int {
	if l == LayoutExtended {
		return 4200
	}
	return 3300
}
