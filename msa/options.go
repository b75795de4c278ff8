// Package msa: functional configuration for constructors.
package msa

// DefaultTitle is used when neither the source nor the caller supplies
// a display title.
const DefaultTitle = "Unknown"

// Option mutates constructor options. Safe to apply repeatedly;
// last-writer-wins.
type Option func(*options)

// options stores the effective construction configuration.
type options struct {
	title    string
	titleSet bool
	labels   []string
	mapping  map[string]int
}

// WithTitle sets the display title, overriding the source's own.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
		o.titleSet = true
	}
}

// WithLabels attaches row labels to a grid-wrapped matrix. The length
// must equal the row count (ErrLengthMismatch otherwise). Ignored by New
// and Open, which take labels from the source.
func WithLabels(labels []string) Option {
	return func(o *options) { o.labels = labels }
}

// WithMapping supplies a pre-built base-name → row mapping, skipping the
// rebuild from labels. The caller owns correctness: values must be valid
// row positions.
func WithMapping(mapping map[string]int) Option {
	return func(o *options) { o.mapping = mapping }
}

// gatherOptions applies user setters on top of defaults.
func gatherOptions(user ...Option) options {
	var o options
	for _, set := range user {
		set(&o)
	}

	return o
}
