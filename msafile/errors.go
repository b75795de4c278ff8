// Package msafile: sentinel error set.
// All reader entry points return these sentinels (possibly wrapped with
// line/context via fmt.Errorf("...: %w", ErrX)); callers match with
// errors.Is. No reader path panics on malformed input.
package msafile

import "errors"

var (
	// ErrUnknownFormat indicates the input matched none of the supported
	// alignment formats (FASTA, Stockholm, SELEX).
	ErrUnknownFormat = errors.New("msafile: unrecognized alignment format")

	// ErrMalformed indicates structurally invalid input: a sequence line
	// before any header, an empty sequence, or records of unequal length.
	// Wrapping adds the offending line number.
	ErrMalformed = errors.New("msafile: malformed alignment")

	// ErrClosed indicates Next was called on a closed Reader.
	ErrClosed = errors.New("msafile: reader is closed")

	// ErrBadSlice indicates a column slice referenced positions outside
	// the alignment width.
	ErrBadSlice = errors.New("msafile: column slice out of range")
)
