package extract

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/nao1215/gsmdata/internal/model"
)

// detailFixture mirrors the structure of a GSMArena detail page.
const detailFixture = `<html><body>
<div class="article-info">
  <h1 class="specs-phone-name-title" data-spec="modelname">Google Pixel 8 Pro</h1>
  <ul class="specs-spotlight-features">
    <li class="specs-brief">
      <span class="specs-brief-accent"><i class="head-icon icon-launched"></i><span data-spec="released-hl">Released 2023, October 12</span></span>
      <span class="specs-brief-accent"><i class="head-icon icon-os"></i><span data-spec="os-hl">Android 14</span></span>
    </li>
    <li class="help accented help-display">
      <strong class="accent"><span data-spec="displaysize-hl">6.7"</span></strong>
      <div data-spec="displayres-hl">1344x2992 pixels</div>
    </li>
    <li class="help accented help-expansion">
      <strong class="accent accent-expansion"><span data-spec="ramsize-hl">12</span><span>GB RAM</span></strong>
      <div data-spec="chipset-hl">Google Tensor G3</div>
    </li>
    <li class="help accented help-battery">
      <strong class="accent accent-battery"><span data-spec="batsize-hl">5050</span><span>mAh</span></strong>
    </li>
  </ul>
</div>
<table><tr><td class="ttl">Price</td><td class="nfo" data-spec="price">About 1000 EUR</td></tr></table>
</body></html>`

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

// TestExtractorField tests extraction of individual fields.
func TestExtractorField(t *testing.T) {
	t.Parallel()

	ex, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}
	doc := mustDoc(t, detailFixture)

	tests := []struct {
		field model.Field
		want  string
	}{
		{field: model.FieldName, want: "Google Pixel 8 Pro"},
		{field: model.FieldBattery, want: "5050"},
		{field: model.FieldOS, want: "Android 14"},
		{field: model.FieldReleased, want: "Released 2023, October 12"},
		{field: model.FieldPrice, want: "About 1000 EUR"},
		{field: model.FieldScreenSize, want: `6.7"`},
		{field: model.FieldRAM, want: "12"},
		{field: model.FieldChipset, want: "Google Tensor G3"},
		{field: model.FieldResolution, want: "1344x2992 pixels"},
	}

	for _, tt := range tests {
		t.Run(string(tt.field), func(t *testing.T) {
			t.Parallel()

			got, ok := ex.Field(doc, tt.field)
			if !ok {
				t.Fatalf("expected %s to be found", tt.field)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

// TestExtractorAbsence tests that missing markup is reported as absence.
func TestExtractorAbsence(t *testing.T) {
	t.Parallel()

	ex, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}

	t.Run("every field absent on an empty page", func(t *testing.T) {
		t.Parallel()

		d := ex.Device(mustDoc(t, `<html><body><p>nothing here</p></body></html>`), "x")
		for _, f := range model.AllFields() {
			if got := d.Value(f); got != model.Placeholder {
				t.Errorf("%s: expected %q, got %q", f, model.Placeholder, got)
			}
		}
	})

	t.Run("battery outside strong is not matched", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<html><body><span data-spec="batsize-hl">4000</span></body></html>`)
		if _, ok := ex.Field(doc, model.FieldBattery); ok {
			t.Error("expected battery to be absent")
		}
	})

	t.Run("os outside brief accent is not matched", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<html><body><span data-spec="os-hl">Android 13</span></body></html>`)
		if _, ok := ex.Field(doc, model.FieldOS); ok {
			t.Error("expected os to be absent")
		}
	})

	t.Run("nil document", func(t *testing.T) {
		t.Parallel()

		if _, ok := ex.Field(nil, model.FieldName); ok {
			t.Error("expected absence for nil document")
		}
	})
}

// TestExtractorFirstMatch tests that the first match in document order wins.
func TestExtractorFirstMatch(t *testing.T) {
	t.Parallel()

	ex, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}

	doc := mustDoc(t, `<html><body>
		<h1 class="specs-phone-name-title">First</h1>
		<h1 class="specs-phone-name-title">Second</h1>
	</body></html>`)

	got, ok := ex.Field(doc, model.FieldName)
	if !ok || got != "First" {
		t.Errorf("expected 'First', got %q (found=%v)", got, ok)
	}
}

// TestExtractorTextNormalization tests whitespace collapsing.
func TestExtractorTextNormalization(t *testing.T) {
	t.Parallel()

	ex, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create extractor: %v", err)
	}

	doc := mustDoc(t, "<html><body><h1 class=\"specs-phone-name-title\">\n\tSamsung Galaxy\n  S24\t</h1></body></html>")

	got, _ := ex.Field(doc, model.FieldName)
	if got != "Samsung Galaxy S24" {
		t.Errorf("expected 'Samsung Galaxy S24', got %q", got)
	}
}

// TestNew tests selector overrides and validation.
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("override replaces built-in selector", func(t *testing.T) {
		t.Parallel()

		ex, err := New(map[model.Field]string{model.FieldPrice: "#price"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		doc := mustDoc(t, `<html><body><span id="price">$ 799</span></body></html>`)
		got, ok := ex.Field(doc, model.FieldPrice)
		if !ok || got != "$ 799" {
			t.Errorf("expected '$ 799', got %q", got)
		}
	})

	t.Run("empty override keeps built-in selector", func(t *testing.T) {
		t.Parallel()

		ex, err := New(map[model.Field]string{model.FieldName: "  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := ex.Field(mustDoc(t, detailFixture), model.FieldName); !ok {
			t.Error("expected name to be found with built-in selector")
		}
	})

	t.Run("invalid selector", func(t *testing.T) {
		t.Parallel()

		_, err := New(map[model.Field]string{model.FieldName: "[[["})
		if !errors.Is(err, ErrInvalidSelector) {
			t.Errorf("expected ErrInvalidSelector, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		_, err := New(map[model.Field]string{"weight": ".weight"})
		if !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})
}

// TestLinks tests link collection from a results page.
func TestLinks(t *testing.T) {
	t.Parallel()

	root, err := url.Parse("https://www.gsmarena.com/")
	if err != nil {
		t.Fatal(err)
	}
	results, err := Compile(DefaultResultsSelector)
	if err != nil {
		t.Fatal(err)
	}

	t.Run("only anchors inside the results container", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<html><body>
			<div class="menu"><a href="news.php3">News</a></div>
			<div class="makers"><ul>
				<li><a href="google_pixel_8_pro-12545.php"><strong>Pixel 8 Pro</strong></a></li>
				<li><a href="samsung_galaxy_s24-12773.php"><strong>Galaxy S24</strong></a></li>
				<li><a href="/apple_iphone_15-12559.php"><strong>iPhone 15</strong></a></li>
			</ul></div>
			<div class="footer"><a href="contact.php3">Contact</a></div>
		</body></html>`)

		want := []string{
			"https://www.gsmarena.com/google_pixel_8_pro-12545.php",
			"https://www.gsmarena.com/samsung_galaxy_s24-12773.php",
			"https://www.gsmarena.com/apple_iphone_15-12559.php",
		}
		if diff := cmp.Diff(want, Links(doc, results, root)); diff != "" {
			t.Errorf("links mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("anchors without href are skipped and duplicates kept", func(t *testing.T) {
		t.Parallel()

		doc := mustDoc(t, `<html><body><div class="makers">
			<a name="top">top</a>
			<a href="a-1.php">A</a>
			<a href="a-1.php">A again</a>
			<a href="https://example.com/b.php">B</a>
		</div></body></html>`)

		want := []string{
			"https://www.gsmarena.com/a-1.php",
			"https://www.gsmarena.com/a-1.php",
			"https://example.com/b.php",
		}
		if diff := cmp.Diff(want, Links(doc, results, root)); diff != "" {
			t.Errorf("links mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no results container", func(t *testing.T) {
		t.Parallel()

		got := Links(mustDoc(t, `<html><body><a href="x.php">x</a></body></html>`), results, root)
		if len(got) != 0 {
			t.Errorf("expected no links, got %v", got)
		}
	})
}
