// Package msalign is an in-memory toolkit for multiple sequence
// alignments — rectangular matrices of co-aligned biological sequence
// characters, addressable by position, by label, or by both at once.
//
// 🚀 What is msalign?
//
//	A small, zero-surprise library that brings together:
//		• Core matrix: an immutable-shape alignment grid with labeled rows
//		• Indexing engine: one polymorphic accessor over rows, labels,
//		  spans, lists and row/column combinations
//		• Gap pruning: select columns by a sequence's own ungapped positions
//		• Readers: FASTA, Stockholm and SELEX sources feeding the matrix
//
// ✨ Why choose msalign?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – row order is file order, always
//
// Everything is organized under two subpackages:
//
//	msa/     — the AlignmentMatrix type, selectors and the indexing engine
//	msafile/ — alignment-source readers and label decomposition
//
// Quick ASCII example:
//
//	    P1/1-5  A C - G T
//	    P2/1-5  A C T G T
//
//	represents a two-sequence alignment with one gap column.
//
// Dive into README.md and the package example tests for full walkthroughs.
//
//	go get github.com/katalvlaran/msalign/msa
package msalign
