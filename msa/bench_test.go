package msa_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/msalign/msa"
)

// benchmarkMSA builds an r×c alignment with a gap every eighth column of
// row 0, so gap pruning has real work to do.
func benchmarkMSA(b *testing.B, r, c int) *msa.MSA {
	b.Helper()
	grid := make([][]byte, r)
	labels := make([]string, r)
	for i := range grid {
		row := make([]byte, c)
		for j := range row {
			row[j] = byte('A' + (i+j)%20)
		}
		if i == 0 {
			for j := 7; j < c; j += 8 {
				row[j] = '-'
			}
		}
		grid[i] = row
		labels[i] = fmt.Sprintf("SEQ%d/1-%d", i, c)
	}
	m, err := msa.FromGrid(grid, msa.WithLabels(labels))
	if err != nil {
		b.Fatalf("FromGrid failed: %v", err)
	}

	return m
}

// BenchmarkIndex_SpanView measures the shared-storage fast path: a
// contiguous row span without columns never copies cell data.
func BenchmarkIndex_SpanView(b *testing.B) {
	m := benchmarkMSA(b, 1000, 200)
	expr := msa.Rows(msa.Span{100, 900})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Index(expr); err != nil {
			b.Fatalf("Index failed: %v", err)
		}
	}
}

// BenchmarkIndex_ListCopy measures the materializing path: an arbitrary
// row list copies every selected row.
func BenchmarkIndex_ListCopy(b *testing.B) {
	m := benchmarkMSA(b, 1000, 200)
	picked := make(msa.PosList, 0, 500)
	for i := 0; i < 1000; i += 2 {
		picked = append(picked, i)
	}
	expr := msa.Rows(picked)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Index(expr); err != nil {
			b.Fatalf("Index failed: %v", err)
		}
	}
}

// BenchmarkIndex_GapPruning measures the column-label idiom: resolve row
// 0's alphabetic mask, then copy the surviving columns of every row.
func BenchmarkIndex_GapPruning(b *testing.B) {
	m := benchmarkMSA(b, 1000, 200)
	expr := msa.RowsCols(msa.All, msa.Name("SEQ0"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Index(expr); err != nil {
			b.Fatalf("Index failed: %v", err)
		}
	}
}
