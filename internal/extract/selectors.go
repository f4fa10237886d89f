package extract

import "github.com/nao1215/gsmdata/internal/model"

// DefaultResultsSelector matches the device anchors of a search results page.
const DefaultResultsSelector = ".makers a"

// defaultSelectors maps each field to the selector that locates it on a
// GSMArena detail page.
var defaultSelectors = map[model.Field]string{
	model.FieldName:       ".specs-phone-name-title",
	model.FieldBattery:    `strong [data-spec="batsize-hl"]`,
	model.FieldOS:         `.specs-brief-accent [data-spec="os-hl"]`,
	model.FieldReleased:   `.specs-brief-accent [data-spec="released-hl"]`,
	model.FieldPrice:      `.nfo[data-spec="price"]`,
	model.FieldScreenSize: `[data-spec="displaysize-hl"]`,
	model.FieldRAM:        `[data-spec="ramsize-hl"]`,
	model.FieldChipset:    `[data-spec="chipset-hl"]`,
	model.FieldResolution: `[data-spec="displayres-hl"]`,
}

// DefaultSelectors returns a copy of the built-in field selectors.
func DefaultSelectors() map[model.Field]string {
	out := make(map[model.Field]string, len(defaultSelectors))
	for f, sel := range defaultSelectors {
		out[f] = sel
	}
	return out
}
