package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/nao1215/gsmdata/internal/model"
	"golang.org/x/text/unicode/norm"
)

// ErrInvalidSelector is returned when a configured selector does not compile.
var ErrInvalidSelector = errors.New("invalid selector")

// ErrUnknownField is returned when a selector override names a field
// that does not exist.
var ErrUnknownField = errors.New("unknown field")

// Extractor evaluates the field selectors against detail pages.
// Selectors are compiled once so every page reuses the same matchers.
type Extractor struct {
	matchers map[model.Field]cascadia.Selector
}

// New creates an Extractor from the built-in selectors with the given
// overrides applied. Empty override values keep the built-in selector.
func New(overrides map[model.Field]string) (*Extractor, error) {
	selectors := DefaultSelectors()
	for f, sel := range overrides {
		if !f.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		if strings.TrimSpace(sel) != "" {
			selectors[f] = sel
		}
	}

	e := &Extractor{matchers: make(map[model.Field]cascadia.Selector, len(selectors))}
	for f, sel := range selectors {
		m, err := Compile(sel)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f, err)
		}
		e.matchers[f] = m
	}
	return e, nil
}

// Compile parses a CSS selector.
func Compile(selector string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidSelector, selector, err)
	}
	return m, nil
}

// Field returns the text of the first node matching the field's selector,
// in document order. The second result is false when nothing matched.
func (e *Extractor) Field(doc *goquery.Document, f model.Field) (string, bool) {
	m, ok := e.matchers[f]
	if !ok || doc == nil {
		return "", false
	}

	sel := doc.FindMatcher(m)
	if sel.Length() == 0 {
		return "", false
	}
	return Text(sel.First()), true
}

// Device runs every field selector against the document and collects the
// matches into a Device. Absent fields are left unset.
func (e *Extractor) Device(doc *goquery.Document, pageURL string) *model.Device {
	d := model.NewDevice(pageURL)
	for _, f := range model.AllFields() {
		if v, ok := e.Field(doc, f); ok {
			d.Set(f, v)
		}
	}
	return d
}

// Text returns the text content of the selection with whitespace runs
// collapsed to a single space. Tabs and newlines never survive, so the
// value is always safe to print as one column of a tab separated row.
func Text(sel *goquery.Selection) string {
	return norm.NFC.String(strings.Join(strings.Fields(sel.Text()), " "))
}

// Links returns the href of every node matched by selector, resolved
// against root, in document order. Nodes without an href, or with one
// that does not parse, are skipped. Duplicates are kept.
func Links(doc *goquery.Document, selector cascadia.Selector, root *url.URL) []string {
	links := make([]string, 0)
	if doc == nil {
		return links
	}

	doc.FindMatcher(selector).Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		u, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		if root != nil {
			u = root.ResolveReference(u)
		}
		links = append(links, u.String())
	})

	return links
}
