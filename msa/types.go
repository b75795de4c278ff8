// Package msa: selector vocabulary, index expressions, result variants,
// and the alignment-source contract. Errors live in errors.go and
// options in options.go per the global conventions.
package msa

import (
	"fmt"
	"io"
	"strings"
)

// ToEnd is the open-end sentinel for Span: Span{2, ToEnd} addresses
// everything from position 2 through the last position of the axis.
const ToEnd = -1

// All addresses every position of an axis. Typical use is gap pruning:
// Index(RowsCols(All, Name("P1"))).
var All = Span{0, ToEnd}

// RowSelector addresses rows of an alignment. The closed set of
// implementations is Pos, Name, Span, PosList and NameList.
type RowSelector interface {
	fmt.Stringer
	rowSel()
}

// ColSelector addresses columns of an alignment. The closed set of
// implementations is Pos, Name, Span, PosList and Mask. As a column
// selector, Name means "columns where that row has no gap" — see Index.
type ColSelector interface {
	fmt.Stringer
	colSel()
}

// Pos is a single zero-based position (row or column).
type Pos int

// Name addresses a row by the base name of its label (range suffix
// stripped). As a column selector it triggers gap pruning.
type Name string

// Span is a half-open [Start, End) run of positions. End == ToEnd means
// "through the last position". Span is the only row selection that can
// share the parent's storage; see Index.
type Span struct {
	Start, End int
}

// PosList is an arbitrary list of positions, in selection order.
// Duplicates are allowed and produce duplicated rows/columns.
type PosList []int

// NameList is a list of row base names, in selection order. Every
// element must resolve through the mapping; one miss fails the whole
// selection with ErrInvalidIndex.
type NameList []string

// Mask selects columns where the boolean is true. Its length must equal
// the column count.
type Mask []bool

func (Pos) rowSel()      {}
func (Name) rowSel()     {}
func (Span) rowSel()     {}
func (PosList) rowSel()  {}
func (NameList) rowSel() {}

func (Pos) colSel()     {}
func (Name) colSel()    {}
func (Span) colSel()    {}
func (PosList) colSel() {}
func (Mask) colSel()    {}

func (p Pos) String() string  { return fmt.Sprintf("%d", int(p)) }
func (n Name) String() string { return fmt.Sprintf("%q", string(n)) }

func (s Span) String() string {
	if s.End == ToEnd {
		return fmt.Sprintf("%d:", s.Start)
	}

	return fmt.Sprintf("%d:%d", s.Start, s.End)
}

func (l PosList) String() string {
	parts := make([]string, len(l))
	for i, p := range l {
		parts[i] = fmt.Sprintf("%d", p)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func (l NameList) String() string {
	parts := make([]string, len(l))
	for i, n := range l {
		parts[i] = fmt.Sprintf("%q", n)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func (m Mask) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for _, v := range m {
		if v {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')

	return b.String()
}

// Expr is one access expression for Index: either rows only, or a
// (rows, columns) pair. Build it with Rows or RowsCols; the zero Expr is
// invalid and reported as ErrInvalidIndex.
type Expr struct {
	rows RowSelector
	cols ColSelector // nil for row-only expressions
}

// Rows builds a row-only expression.
func Rows(rows RowSelector) Expr {
	return Expr{rows: rows}
}

// RowsCols builds a two-axis expression. A nil column selector is the
// same as Rows(rows).
func RowsCols(rows RowSelector, cols ColSelector) Expr {
	return Expr{rows: rows, cols: cols}
}

// String renders the expression for error messages, in the familiar
// "[rows]" / "[rows, cols]" shape.
func (e Expr) String() string {
	if e.rows == nil {
		return "[]"
	}
	if e.cols == nil {
		return "[" + e.rows.String() + "]"
	}

	return "[" + e.rows.String() + ", " + e.cols.String() + "]"
}

// Value is the shape-classified result of Index. The closed set of
// implementations:
//
//	Char     — 0-D: one row and one column selected
//	Sequence — 1-D: one full row, label decoded alongside
//	Fragment — 1-D: part of one row, or one column across rows
//	*MSA     — 2-D: several rows (and possibly a column selection)
type Value interface {
	value()
}

// Char is a single alignment cell.
type Char byte

// Fragment is a partial row (or a single column read across rows). The
// label metadata is not reconstructable for a partial row, so none is
// attached.
type Fragment string

// Sequence is one full decoded row: base name, residue text, and the
// residue-number range from the label ((0, 0) when the label has none).
type Sequence struct {
	Name       string
	Seq        string
	Start, End int
}

func (Char) value()     {}
func (Fragment) value() {}
func (Sequence) value() {}
func (*MSA) value()     {}

// Source is the alignment-source collaborator contract: an ordered
// stream of (label, sequence) pairs plus a display title.
// msafile.Reader satisfies it; any iterator with the same shape works.
//
// Next returns io.EOF after the last pair. Labels must be undecomposed
// (full "<name>/<start>-<end>" text); the mapping is keyed by the base
// name, which New derives itself.
type Source interface {
	Next() (label, seq string, err error)
	Title() string
}

// sliceSource adapts an in-memory label/sequence list to Source. Used by
// FromPairs and throughout the tests.
type sliceSource struct {
	labels []string
	seqs   []string
	title  string
	pos    int
}

func (s *sliceSource) Next() (string, string, error) {
	if s.pos >= len(s.labels) {
		return "", "", io.EOF
	}
	i := s.pos
	s.pos++

	return s.labels[i], s.seqs[i], nil
}

func (s *sliceSource) Title() string { return s.title }
