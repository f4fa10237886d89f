package search

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// DefaultSiteRoot is the GSMArena site root that result links and
// relative queries are resolved against.
const DefaultSiteRoot = "https://www.gsmarena.com/"

// makers is the fixed list of manufacturer IDs included in every search.
const makers = "59,5,88,76,28,48,90,46,57,15,31,42,34,36,116,10,108,77,75," +
	"24,105,61,104,93,106,2,40,50,65,47,92,107,33,41,45,35,52,69,119,29,60," +
	"102,122,84,83,17,94,109,73,20,14,87,74,66,64,25,8,63,4,56,12,22,79,1," +
	"97,30,71,27,6,32,81,11,72,101,86,103,38,117,118,13,9,18,26,23,3,7," +
	"19,68,55,120,21,16,49,44,91,39,70,98,37,53,96,51,43,85,78,99,100"

// queryTemplate is the phone finder query relative to the site root.
// The two verbs are the minimum year and the minimum battery capacity.
const queryTemplate = "results.php3" +
	"?nYearMin=%d&nIntMemMin=40000&nDisplayResMin=2527200" +
	"&fDisplayInchesMin=6.0&fDisplayInchesMax=7.0&chkGPS=selected" +
	"&chkNFC=selected&chkUSBC=selected&nBatCapacityMin=%d" +
	"&sMakers=" + makers +
	"&sAvailabilities=1,2,3,5&sFormFactors=1&sOSes=2,3&sDisplayTechs=1,2" +
	"&idTouchscreen=1&nOrder=1"

// ErrInvalidRoot is returned when the site root is not an absolute URL.
var ErrInvalidRoot = errors.New("site root must be an absolute http(s) URL")

// Params are the user supplied search thresholds.
type Params struct {
	// MinYear is the earliest release year to include.
	MinYear int

	// MinBattery is the minimum battery capacity in mAh.
	MinBattery int
}

// ParseRoot parses and checks a site root URL. The returned URL always has
// a path ending in a slash.
func ParseRoot(root string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(root))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRoot, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoot, root)
	}
	// Relative references replace the last path segment, so a root that
	// points into a directory must end with a slash.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
		if u.RawPath != "" {
			u.RawPath += "/"
		}
	}
	return u, nil
}

// BuildURL renders the phone finder URL for the given thresholds.
func BuildURL(root *url.URL, p Params) (string, error) {
	if root == nil {
		return "", ErrInvalidRoot
	}
	ref, err := url.Parse(fmt.Sprintf(queryTemplate, p.MinYear, p.MinBattery))
	if err != nil {
		return "", err
	}
	return root.ResolveReference(ref).String(), nil
}

// Resolve turns a raw query override into a URL. An absolute override is
// returned untouched; a relative one is resolved against root.
func Resolve(root *url.URL, override string) (string, error) {
	override = strings.TrimSpace(override)
	ref, err := url.Parse(override)
	if err != nil {
		return "", fmt.Errorf("invalid query override %q: %w", override, err)
	}
	if ref.IsAbs() {
		return override, nil
	}
	if root == nil {
		return "", ErrInvalidRoot
	}
	return root.ResolveReference(ref).String(), nil
}

// URL returns the search URL for a run: the override when one is given,
// the rendered template otherwise.
func URL(root *url.URL, p Params, override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return Resolve(root, override)
	}
	return BuildURL(root, p)
}
