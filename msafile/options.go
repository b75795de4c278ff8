// Package msafile: functional configuration for readers.
// Defaults are documented as constants; public entry points accept
// ...Option and resolve them via gatherOptions (last-writer-wins).
package msafile

// DefaultTitle is used when neither the file nor the caller provides one.
const DefaultTitle = "Unknown"

// Filter decides whether a parsed record is kept. It receives the raw
// (undecomposed) label and the full sequence text.
type Filter func(label, seq string) bool

// Option mutates reader options. Safe to apply repeatedly.
type Option func(*options)

// options stores the effective reader configuration. Unexported so the
// only way in is through the WithX constructors.
type options struct {
	format   Format  // Detect unless WithFormat
	title    string  // "" means derive from source
	filter   Filter  // nil means keep everything
	columns  []int   // nil means keep all columns
	hasSlice bool    // distinguishes nil from an explicit empty slice
}

// WithFormat bypasses auto-detection and parses the input as f.
func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithTitle overrides the display title derived from the source.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithFilter keeps only records for which fn returns true. Filtering
// happens before column slicing and before length validation, so records
// excluded by the filter never affect the alignment width.
func WithFilter(fn Filter) Option {
	return func(o *options) { o.filter = fn }
}

// WithSlice restricts every record to the given column positions, in the
// given order. Positions outside the alignment width surface as
// ErrBadSlice from the reader constructor. Useful for selective parsing
// of wide alignments in low-memory situations.
func WithSlice(columns []int) Option {
	return func(o *options) {
		o.columns = columns
		o.hasSlice = true
	}
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) options {
	o := options{format: Detect}
	for _, set := range user {
		set(&o)
	}

	return o
}
