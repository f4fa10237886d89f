package model

// Placeholder is printed in place of a field that could not be located
// on the detail page.
const Placeholder = "(Unknown)"

// Field identifies one specification extracted from a detail page.
type Field string

// Known fields. The string value doubles as the key used in config files
// and in JSON output.
const (
	FieldName       Field = "name"
	FieldBattery    Field = "battery"
	FieldOS         Field = "os"
	FieldReleased   Field = "released"
	FieldPrice      Field = "price"
	FieldScreenSize Field = "screensize"
	FieldRAM        Field = "ram"
	FieldChipset    Field = "chipset"
	FieldResolution Field = "resolution"
)

// fieldTitles maps each field to its column title.
var fieldTitles = map[Field]string{
	FieldName:       "Name",
	FieldBattery:    "Battery Capacity",
	FieldOS:         "OS",
	FieldReleased:   "Released",
	FieldPrice:      "Price",
	FieldScreenSize: "Screensize",
	FieldRAM:        "RAM",
	FieldChipset:    "Chipset",
	FieldResolution: "Resolution",
}

// AllFields returns every known field in a stable order.
func AllFields() []Field {
	return []Field{
		FieldName,
		FieldBattery,
		FieldOS,
		FieldReleased,
		FieldPrice,
		FieldScreenSize,
		FieldRAM,
		FieldChipset,
		FieldResolution,
	}
}

// Title returns the column title of the field.
// Unknown fields fall back to their key.
func (f Field) Title() string {
	if title, ok := fieldTitles[f]; ok {
		return title
	}
	return string(f)
}

// Valid reports whether f is one of the known fields.
func (f Field) Valid() bool {
	_, ok := fieldTitles[f]
	return ok
}

// Device is the set of specification values scraped from one detail page.
// Fields that were not found on the page are simply not set.
type Device struct {
	// URL is the detail page the values were extracted from.
	URL string

	values map[Field]string
}

// NewDevice creates an empty Device for the given detail page URL.
func NewDevice(pageURL string) *Device {
	return &Device{
		URL:    pageURL,
		values: make(map[Field]string),
	}
}

// Set records the extracted text for a field.
func (d *Device) Set(f Field, value string) {
	if d.values == nil {
		d.values = make(map[Field]string)
	}
	d.values[f] = value
}

// Lookup returns the extracted text for a field and whether it was found.
func (d *Device) Lookup(f Field) (string, bool) {
	v, ok := d.values[f]
	return v, ok
}

// Value returns the extracted text for a field, or Placeholder when the
// field was not found.
func (d *Device) Value(f Field) string {
	if v, ok := d.values[f]; ok {
		return v
	}
	return Placeholder
}

// Row returns the printable values of the device in the layout's column order.
func (d *Device) Row(l Layout) []string {
	columns := l.Columns()
	row := make([]string, len(columns))
	for i, f := range columns {
		row[i] = d.Value(f)
	}
	return row
}
