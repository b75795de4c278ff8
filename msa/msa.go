package msa

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/katalvlaran/msalign/msafile"
)

// MSA is an in-memory multiple sequence alignment: an R×C grid of
// single-byte characters, per-row labels, and a base-name → row mapping.
//
// The grid shape is immutable after construction; only the title is
// mutable. Views derived by Index may share the parent's row storage
// (contiguous spans) or own a fresh copy (list selections) — in both
// cases nothing mutates buffer contents in place, so aliasing is safe
// for concurrent reads.
type MSA struct {
	grid    [][]byte       // R rows × C columns, rectangular by construction
	labels  []string       // len == R when present; nil when unlabeled
	mapping map[string]int // base name → row; nil when unlabeled
	title   string
}

// New builds an MSA by eagerly consuming src: one (label, sequence) pair
// per row, in source order.
//
// Stage 1 (Consume): drain src until io.EOF, stacking rows and labels.
// Stage 2 (Validate): every sequence must match the first row's length
// (ErrBadShape), and at least one row must exist (ErrBadShape).
// Stage 3 (Map): insert base name → row per row, greedily. When two rows
// share a base name the later insertion overwrites the earlier one: both
// rows stay in the grid, but only the last remains reachable by name.
//
// Any src failure is re-raised as ErrUnrecognizedSource carrying the
// cause's description. Title comes from WithTitle, else src.Title().
//
// Complexity: O(R·C) time and memory.
func New(src Source, opts ...Option) (*MSA, error) {
	o := gatherOptions(opts...)

	var (
		grid    [][]byte
		labels  []string
		mapping = make(map[string]int)
	)
	for {
		label, seq, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w (%v)", ErrUnrecognizedSource, err)
		}
		if len(grid) > 0 && len(seq) != len(grid[0]) {
			return nil, fmt.Errorf("sequence %q: length %d != %d: %w",
				label, len(seq), len(grid[0]), ErrBadShape)
		}
		name, _, _ := msafile.SplitLabel(label)
		mapping[name] = len(grid)
		labels = append(labels, label)
		grid = append(grid, []byte(seq))
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("empty source: %w", ErrBadShape)
	}

	title := src.Title()
	if o.titleSet {
		title = o.title
	}
	if title == "" {
		title = DefaultTitle
	}

	return &MSA{grid: grid, labels: labels, mapping: mapping, title: title}, nil
}

// FromPairs builds an MSA from parallel label and sequence lists — the
// in-memory shortcut for New. Lengths must match (ErrLengthMismatch).
func FromPairs(labels, seqs []string, opts ...Option) (*MSA, error) {
	if len(labels) != len(seqs) {
		return nil, fmt.Errorf("%d labels for %d sequences: %w",
			len(labels), len(seqs), ErrLengthMismatch)
	}

	return New(&sliceSource{labels: labels, seqs: seqs, title: DefaultTitle}, opts...)
}

// FromGrid wraps a pre-built character grid.
//
// The grid must be non-empty (ErrBadShape); rectangularity is the
// caller's guarantee and is not re-validated here. WithLabels must match
// the row count (ErrLengthMismatch). The mapping is rebuilt from labels
// unless WithMapping supplies one; without labels, name-based access is
// unavailable until labels exist.
//
// The grid is reused as-is, not copied: the new MSA takes ownership.
//
// Complexity: O(R) (mapping rebuild only).
func FromGrid(grid [][]byte, opts ...Option) (*MSA, error) {
	o := gatherOptions(opts...)

	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("empty grid: %w", ErrBadShape)
	}
	if o.labels != nil && len(o.labels) != len(grid) {
		return nil, fmt.Errorf("%d labels for %d rows: %w",
			len(o.labels), len(grid), ErrLengthMismatch)
	}

	mapping := o.mapping
	if mapping == nil && o.labels != nil {
		mapping = make(map[string]int, len(o.labels))
		for i, label := range o.labels {
			name, _, _ := msafile.SplitLabel(label)
			mapping[name] = i
		}
	}

	title := DefaultTitle
	if o.titleSet {
		title = o.title
	}

	return &MSA{grid: grid, labels: o.labels, mapping: mapping, title: title}, nil
}

// Open reads the alignment file at path through the msafile collaborator
// (labels undecomposed) and builds an MSA from it. Every delegation
// failure — unreadable path, unknown format, malformed content — is
// re-raised as ErrUnrecognizedSource carrying the cause's description.
func Open(path string, opts ...Option) (*MSA, error) {
	r, err := msafile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w (%v)", ErrUnrecognizedSource, err)
	}
	defer r.Close()

	return New(r, opts...)
}

// Rows returns the number of sequences. Complexity: O(1).
func (m *MSA) Rows() int {
	if m == nil {
		return 0
	}

	return len(m.grid)
}

// Cols returns the number of residues (alignment columns).
// Complexity: O(1).
func (m *MSA) Cols() int {
	if m == nil || len(m.grid) == 0 {
		return 0
	}

	return len(m.grid[0])
}

// Title returns the display title.
func (m *MSA) Title() string {
	if m == nil {
		return ""
	}

	return m.title
}

// SetTitle sets the display title. The only mutation the type allows.
func (m *MSA) SetTitle(title string) {
	if m == nil {
		return
	}
	m.title = title
}

// Label returns the label of the row addressed by sel (a Pos or a Name;
// multi-row selectors fail with ErrInvalidIndex). With full=true the raw
// label text is returned; otherwise the base name with any residue-range
// suffix stripped.
func (m *MSA) Label(sel RowSelector, full bool) (string, error) {
	if m == nil {
		return "", ErrNilMatrix
	}
	if m.labels == nil {
		return "", ErrNoLabels
	}
	row, err := m.resolveSingleRow(sel)
	if err != nil {
		return "", err
	}
	if full {
		return m.labels[row], nil
	}
	name, _, _ := msafile.SplitLabel(m.labels[row])

	return name, nil
}

// ResidueRange returns the starting and ending residue numbers decoded
// from the label of the row addressed by sel. Labels without a range
// yield the (0, 0) sentinel.
func (m *MSA) ResidueRange(sel RowSelector) (start, end int, err error) {
	if m == nil {
		return 0, 0, ErrNilMatrix
	}
	if m.labels == nil {
		return 0, 0, ErrNoLabels
	}
	row, err := m.resolveSingleRow(sel)
	if err != nil {
		return 0, 0, err
	}
	_, start, end = msafile.SplitLabel(m.labels[row])

	return start, end, nil
}

// resolveSingleRow maps a Pos or Name selector to one row position.
func (m *MSA) resolveSingleRow(sel RowSelector) (int, error) {
	switch s := sel.(type) {
	case Pos:
		if int(s) < 0 || int(s) >= len(m.grid) {
			return 0, fmt.Errorf("row %d of %d: %w", int(s), len(m.grid), ErrInvalidIndex)
		}

		return int(s), nil
	case Name:
		row, ok := m.mapping[string(s)]
		if !ok {
			return 0, fmt.Errorf("unknown label %q: %w", string(s), ErrInvalidIndex)
		}

		return row, nil
	default:
		return 0, fmt.Errorf("selector %v addresses multiple rows: %w", sel, ErrInvalidIndex)
	}
}

// Contains reports whether key is a base name of some row's label,
// exactly (no partial match). It never fails: an unlabeled or nil matrix
// simply reports false.
func (m *MSA) Contains(key string) bool {
	if m == nil || m.mapping == nil {
		return false
	}
	_, ok := m.mapping[key]

	return ok
}

// Equal reports element-wise grid equality. Labels and titles are not
// compared: two matrices built from the same rows under different labels
// are equal. Comparing against a non-*MSA value (or nil) reports false,
// never an error — by the same soft-failure policy as Contains.
//
// Complexity: O(R·C).
func (m *MSA) Equal(other any) bool {
	o, ok := other.(*MSA)
	if !ok || o == nil || m == nil {
		return false
	}
	a, b := m.array(), o.array()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

// All returns a lazy, restartable iterator over the rows, in row order,
// decoding each row's label on demand:
//
//	for s := range m.All() {
//	    fmt.Println(s.Name, s.Seq, s.Start, s.End)
//	}
func (m *MSA) All() iter.Seq[Sequence] {
	return func(yield func(Sequence) bool) {
		if m == nil {
			return
		}
		for i, row := range m.grid {
			name, start, end := msafile.SplitLabel(m.labelAt(i))
			if !yield(Sequence{Name: name, Seq: string(row), Start: start, End: end}) {
				return
			}
		}
	}
}

// labelAt returns the label of row i, or "" when the matrix is unlabeled.
func (m *MSA) labelAt(i int) string {
	if m.labels == nil {
		return ""
	}

	return m.labels[i]
}

// Array returns an independent deep copy of the character grid.
// Complexity: O(R·C).
func (m *MSA) Array() [][]byte {
	if m == nil {
		return nil
	}
	out := make([][]byte, len(m.grid))
	for i, row := range m.grid {
		out[i] = append([]byte(nil), row...)
	}

	return out
}

// array exposes the live grid to trusted in-package collaborators (the
// equality check, the indexing engine). Never handed to external callers.
func (m *MSA) array() [][]byte {
	if m == nil {
		return nil
	}

	return m.grid
}

// String implements fmt.Stringer.
func (m *MSA) String() string {
	return "MSA " + m.Title()
}

// Describe renders the long form: title plus grid dimensions.
func (m *MSA) Describe() string {
	return fmt.Sprintf("<MSA: %s (%d sequences, %d residues)>",
		m.Title(), m.Rows(), m.Cols())
}
