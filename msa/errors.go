// Package msa: sentinel error set.
// All public entry points return these sentinels; tests match them via
// errors.Is. Context is added at the detection site with
// fmt.Errorf("...: %w", ErrX). No user-triggered condition panics.
package msa

import "errors"

var (
	// ErrBadShape indicates the incoming grid is unusable: no rows, no
	// columns, or sequences of unequal length during ingestion.
	ErrBadShape = errors.New("msa: grid must be rectangular and non-empty")

	// ErrLengthMismatch indicates len(labels) differs from the row count.
	ErrLengthMismatch = errors.New("msa: labels length must equal sequence count")

	// ErrUnrecognizedSource indicates construction from a path or source
	// failed; the wrap carries the underlying cause's description.
	ErrUnrecognizedSource = errors.New("msa: source was not recognized")

	// ErrInvalidIndex indicates an index expression that cannot be
	// satisfied: an unknown label, an out-of-range position or span, or a
	// mask of the wrong length. The wrap names the original expression.
	ErrInvalidIndex = errors.New("msa: invalid index")

	// ErrNoLabels indicates a label-dependent accessor was called on a
	// matrix constructed without labels.
	ErrNoLabels = errors.New("msa: matrix has no labels")

	// ErrNilMatrix indicates a nil *MSA receiver on a fallible entry point.
	ErrNilMatrix = errors.New("msa: nil receiver")
)
