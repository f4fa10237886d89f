// Package extract pulls specification fields and result links out of
// parsed GSMArena pages.
//
// Selection is purely structural: CSS class and data-spec attribute
// selectors evaluated against the live markup with goquery. A selector
// that matches nothing is not an error; the field is reported as absent
// and renders as model.Placeholder when printed.
//
// # Usage
//
//	ex, err := extract.New(nil)
//	device := ex.Device(doc, pageURL)
//	links := extract.Links(doc, results, siteRoot)
package extract
