// Package msa stores and manipulates multiple sequence alignments: a
// rectangular grid of aligned sequence characters whose rows carry
// labels like "YQ53_CAEEL/650-977".
//
// 🚀 What is an MSA here?
//
//	Three parallel pieces, built once and never mutated in place:
//	  • the grid      — R×C bytes, rows are sequences, columns positions
//	  • the labels    — one full label string per row, in row order
//	  • the mapping   — base name (range suffix stripped) → row position
//
// ✨ The indexing engine:
//
//	One accessor, Index, interprets every addressing form through a
//	closed selector vocabulary and classifies the result by shape:
//	  • Index(Rows(Pos(0)))                → Sequence (a full decoded row)
//	  • Index(Rows(Name("YQ53_CAEEL")))    → Sequence (label addressing)
//	  • Index(Rows(Span{0, 2}))            → *MSA view (two rows)
//	  • Index(RowsCols(Pos(0), Pos(2)))    → Char (one cell)
//	  • Index(RowsCols(Pos(0), Span{0,4})) → Fragment (part of a row)
//	  • Index(RowsCols(All, Name("P1")))   → *MSA with P1's gap columns
//	    pruned — the gap-pruning idiom: a sequence's own ungapped
//	    positions select the columns.
//
//	Symbolic addressing always wins: a string that is a mapping key is
//	resolved to its row before any positional interpretation.
//
// ⚙️ Usage:
//
//	m, err := msa.Open("piwi_seed.fasta")
//	if err != nil { ... }
//	seq, err := m.GetByName("YQ53_CAEEL") // (name, residues, start, end)
//	_ = seq
//	for s := range m.All() {              // lazy, restartable iteration
//	    fmt.Println(s.Name, s.Seq)
//	}
//
// Caveat (preserved for compatibility): when two rows share a base name,
// the mapping keeps only the last-seen row — the earlier one stays in the
// grid but becomes unreachable by name. See New.
//
// Membership (Contains) and equality (Equal) are deliberately panic-free
// and degrade to false for any input; everything else reports sentinel
// errors from errors.go, matched with errors.Is.
package msa
