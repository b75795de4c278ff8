// Package msa: the indexing engine behind (*MSA).Index.
package msa

import (
	"fmt"

	"github.com/katalvlaran/msalign/msafile"
)

// pickKind tags a resolved axis selection.
type pickKind int

const (
	pickSingle pickKind = iota // exactly one position
	pickSpan                   // contiguous half-open run
	pickList                   // arbitrary position list
)

// axisPick is one axis selector after symbolic resolution and bounds
// validation: positions only, no names left.
type axisPick struct {
	kind     pickKind
	at       int   // pickSingle
	from, to int   // pickSpan, normalized half-open
	list     []int // pickList
}

// count reports how many positions the pick addresses.
func (p axisPick) count() int {
	switch p.kind {
	case pickSingle:
		return 1
	case pickSpan:
		return p.to - p.from
	default:
		return len(p.list)
	}
}

// indices materializes the addressed positions in selection order.
func (p axisPick) indices() []int {
	switch p.kind {
	case pickSingle:
		return []int{p.at}
	case pickSpan:
		out := make([]int, 0, p.to-p.from)
		for i := p.from; i < p.to; i++ {
			out = append(out, i)
		}

		return out
	default:
		return p.list
	}
}

// Index is the single polymorphic accessor over the alignment.
//
// Algorithm Outline:
//  1. Classify: e addresses rows only (Rows) or rows and columns
//     (RowsCols); a zero Expr is ErrInvalidIndex.
//  2. Resolve rows: names are looked up in the mapping first, positions
//     pass through; symbolic addressing wins whenever a name is a key.
//     A NameList with any unresolvable element fails the selection.
//  3. Resolve columns (two-axis form only): a Name that resolves through
//     the mapping becomes the alphabetic mask of that row — the
//     gap-pruning idiom, selecting columns where the named sequence has
//     a non-gap residue. Gap classification is case-independent.
//  4. Select and classify by result shape:
//     0-D → Char; 1-D without columns → Sequence (label decoded);
//     1-D with columns → Fragment; 2-D → a derived *MSA titled with a
//     trailing prime and carrying the row-subset labels.
//
// Ownership: a contiguous row Span without a column selector shares the
// parent's row storage (read-only); every other multi-row selection
// materializes an owned copy. Derived views rebuild their mapping.
//
// Errors: every unsatisfiable selection — unknown label, out-of-range
// position or span, wrong-length mask — is ErrInvalidIndex, wrapped
// with the original expression.
//
// Complexity: O(selected cells); O(1) for the shared-span fast path.
func (m *MSA) Index(e Expr) (Value, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	if e.rows == nil {
		return nil, fmt.Errorf("expression %s: empty row selector: %w", e, ErrInvalidIndex)
	}

	rows, err := m.resolveRowAxis(e.rows)
	if err != nil {
		return nil, fmt.Errorf("expression %s: %w", e, err)
	}

	if e.cols == nil {
		return m.selectRows(rows), nil
	}

	cols, err := m.resolveColAxis(e.cols)
	if err != nil {
		return nil, fmt.Errorf("expression %s: %w", e, err)
	}

	return m.selectRowsCols(rows, cols), nil
}

// resolveRowAxis turns a RowSelector into validated positions.
// Symbolic-to-positional resolution is explicit: mapping lookup first,
// positional interpretation only for position selectors.
func (m *MSA) resolveRowAxis(sel RowSelector) (axisPick, error) {
	switch s := sel.(type) {
	case Pos:
		if int(s) < 0 || int(s) >= len(m.grid) {
			return axisPick{}, fmt.Errorf("row %d of %d: %w", int(s), len(m.grid), ErrInvalidIndex)
		}

		return axisPick{kind: pickSingle, at: int(s)}, nil
	case Name:
		row, ok := m.mapping[string(s)]
		if !ok {
			return axisPick{}, fmt.Errorf("unknown label %q: %w", string(s), ErrInvalidIndex)
		}

		return axisPick{kind: pickSingle, at: row}, nil
	case Span:
		from, to, err := normalizeSpan(s, len(m.grid))
		if err != nil {
			return axisPick{}, err
		}

		return axisPick{kind: pickSpan, from: from, to: to}, nil
	case PosList:
		list := make([]int, len(s))
		for i, p := range s {
			if p < 0 || p >= len(m.grid) {
				return axisPick{}, fmt.Errorf("row %d of %d: %w", p, len(m.grid), ErrInvalidIndex)
			}
			list[i] = p
		}

		return axisPick{kind: pickList, list: list}, nil
	case NameList:
		list := make([]int, len(s))
		for i, name := range s {
			row, ok := m.mapping[name]
			if !ok {
				return axisPick{}, fmt.Errorf("unknown label %q: %w", name, ErrInvalidIndex)
			}
			list[i] = row
		}

		return axisPick{kind: pickList, list: list}, nil
	default:
		return axisPick{}, fmt.Errorf("unsupported row selector %T: %w", sel, ErrInvalidIndex)
	}
}

// resolveColAxis turns a ColSelector into validated positions. A Name
// resolving through the mapping becomes the list of columns where that
// row holds an alphabetic (non-gap) character.
func (m *MSA) resolveColAxis(sel ColSelector) (axisPick, error) {
	cols := m.Cols()
	switch s := sel.(type) {
	case Pos:
		if int(s) < 0 || int(s) >= cols {
			return axisPick{}, fmt.Errorf("column %d of %d: %w", int(s), cols, ErrInvalidIndex)
		}

		return axisPick{kind: pickSingle, at: int(s)}, nil
	case Name:
		row, ok := m.mapping[string(s)]
		if !ok {
			return axisPick{}, fmt.Errorf("unknown label %q: %w", string(s), ErrInvalidIndex)
		}
		var list []int
		for c, b := range m.grid[row] {
			if isAlpha(b) {
				list = append(list, c)
			}
		}

		return axisPick{kind: pickList, list: list}, nil
	case Span:
		from, to, err := normalizeSpan(s, cols)
		if err != nil {
			return axisPick{}, err
		}

		return axisPick{kind: pickSpan, from: from, to: to}, nil
	case PosList:
		list := make([]int, len(s))
		for i, p := range s {
			if p < 0 || p >= cols {
				return axisPick{}, fmt.Errorf("column %d of %d: %w", p, cols, ErrInvalidIndex)
			}
			list[i] = p
		}

		return axisPick{kind: pickList, list: list}, nil
	case Mask:
		if len(s) != cols {
			return axisPick{}, fmt.Errorf("mask length %d for %d columns: %w", len(s), cols, ErrInvalidIndex)
		}
		var list []int
		for c, keep := range s {
			if keep {
				list = append(list, c)
			}
		}

		return axisPick{kind: pickList, list: list}, nil
	default:
		return axisPick{}, fmt.Errorf("unsupported column selector %T: %w", sel, ErrInvalidIndex)
	}
}

// normalizeSpan resolves the ToEnd sentinel and bounds-checks a span
// against an axis of the given size. Go slicing rules apply: spans do
// not clamp silently.
func normalizeSpan(s Span, size int) (from, to int, err error) {
	to = s.End
	if to == ToEnd {
		to = size
	}
	if s.Start < 0 || to < s.Start || to > size {
		return 0, 0, fmt.Errorf("span %s of %d: %w", s, size, ErrInvalidIndex)
	}

	return s.Start, to, nil
}

// selectRows handles the row-only form.
// Single row → Sequence; multiple rows → derived view. Contiguous spans
// share the parent's row storage; lists copy.
func (m *MSA) selectRows(rows axisPick) Value {
	switch rows.kind {
	case pickSingle:
		name, start, end := msafile.SplitLabel(m.labelAt(rows.at))

		return Sequence{Name: name, Seq: string(m.grid[rows.at]), Start: start, End: end}
	case pickSpan:
		// Borrowed view: row headers are shared with the parent, whose
		// lifetime covers the view's. Read-only by API contract.
		var labels []string
		if m.labels != nil {
			labels = m.labels[rows.from:rows.to]
		}

		return m.derive(m.grid[rows.from:rows.to], labels)
	default:
		grid := make([][]byte, len(rows.list))
		var labels []string
		if m.labels != nil {
			labels = make([]string, len(rows.list))
		}
		for i, r := range rows.list {
			grid[i] = append([]byte(nil), m.grid[r]...)
			if labels != nil {
				labels[i] = m.labels[r]
			}
		}

		return m.derive(grid, labels)
	}
}

// selectRowsCols handles the two-axis form and classifies the result:
// one row and one column → Char; one axis multiple → Fragment (a partial
// row, or one column read across rows); both multiple → derived view.
func (m *MSA) selectRowsCols(rows, cols axisPick) Value {
	rowsMulti := rows.kind != pickSingle
	colsMulti := cols.kind != pickSingle

	switch {
	case !rowsMulti && !colsMulti:
		return Char(m.grid[rows.at][cols.at])

	case !rowsMulti:
		row := m.grid[rows.at]
		if cols.kind == pickSpan {
			return Fragment(row[cols.from:cols.to])
		}
		picked := make([]byte, len(cols.list))
		for i, c := range cols.list {
			picked[i] = row[c]
		}

		return Fragment(picked)

	case !colsMulti:
		column := make([]byte, 0, rows.count())
		for _, r := range rows.indices() {
			column = append(column, m.grid[r][cols.at])
		}

		return Fragment(column)

	default:
		rowIdx := rows.indices()
		grid := make([][]byte, len(rowIdx))
		var labels []string
		if m.labels != nil {
			labels = make([]string, len(rowIdx))
		}
		for i, r := range rowIdx {
			src := m.grid[r]
			if cols.kind == pickSpan {
				grid[i] = append([]byte(nil), src[cols.from:cols.to]...)
			} else {
				picked := make([]byte, len(cols.list))
				for j, c := range cols.list {
					picked[j] = src[c]
				}
				grid[i] = picked
			}
			if labels != nil {
				labels[i] = m.labels[r]
			}
		}

		return m.derive(grid, labels)
	}
}

// derive wraps a selected grid as a child view: title gains a trailing
// prime (the "derived" convention), labels are the row subset, and the
// mapping is rebuilt from them.
func (m *MSA) derive(grid [][]byte, labels []string) *MSA {
	var mapping map[string]int
	if labels != nil {
		mapping = make(map[string]int, len(labels))
		for i, label := range labels {
			name, _, _ := msafile.SplitLabel(label)
			mapping[name] = i
		}
	}

	return &MSA{grid: grid, labels: labels, mapping: mapping, title: m.title + "'"}
}

// isAlpha reports whether b is an alphabetic residue character. Anything
// else ('-', '.', '*', ' ') counts as a gap, case-independently.
func isAlpha(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// Get returns the fully decoded sequence at row i — the row-only single
// form of Index.
func (m *MSA) Get(i int) (Sequence, error) {
	v, err := m.Index(Rows(Pos(i)))
	if err != nil {
		return Sequence{}, err
	}

	return v.(Sequence), nil
}

// GetByName returns the fully decoded sequence whose label base name is
// name. Symbolic counterpart of Get.
func (m *MSA) GetByName(name string) (Sequence, error) {
	v, err := m.Index(Rows(Name(name)))
	if err != nil {
		return Sequence{}, err
	}

	return v.(Sequence), nil
}

// Char returns the single character at (row i, column j).
func (m *MSA) Char(i, j int) (byte, error) {
	v, err := m.Index(RowsCols(Pos(i), Pos(j)))
	if err != nil {
		return 0, err
	}

	return byte(v.(Char)), nil
}

// Slice returns the [from, to) row view of the alignment, sharing the
// parent's storage. Equivalent to Index(Rows(Span{from, to})).
func (m *MSA) Slice(from, to int) (*MSA, error) {
	v, err := m.Index(Rows(Span{from, to}))
	if err != nil {
		return nil, err
	}

	return v.(*MSA), nil
}
