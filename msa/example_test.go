package msa_test

import (
	"fmt"

	"github.com/katalvlaran/msalign/msa"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMSA_GetByName
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Two co-aligned sequences, one gap in the first:
//	  P1/1-5  AC-GT
//	  P2/1-5  ACTGT
//
// Addressing a row by its label base name decodes the full tuple:
// name, residue text and the residue-number range from the label.
func ExampleMSA_GetByName() {
	m, err := msa.FromPairs(
		[]string{"P1/1-5", "P2/1-5"},
		[]string{"AC-GT", "ACTGT"},
		msa.WithTitle("demo"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	s, err := m.GetByName("P1")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s.Name, s.Seq, s.Start, s.End)
	// Output: P1 AC-GT 1 5
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleMSA_Index (gap pruning)
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Select every row, but only the columns where P1 holds a residue.
//	P1's gap sits in column 2, so that column disappears from every
//	row — including P2's 'T' aligned under it.
//
// The result is a derived view: its title gains a trailing prime and
// its labels are the selected row subset.
func ExampleMSA_Index() {
	m, err := msa.FromPairs(
		[]string{"P1/1-5", "P2/1-5"},
		[]string{"AC-GT", "ACTGT"},
		msa.WithTitle("demo"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v, err := m.Index(msa.RowsCols(msa.All, msa.Name("P1")))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	pruned := v.(*msa.MSA)

	fmt.Println(pruned.Describe())
	for s := range pruned.All() {
		fmt.Println(s.Name, s.Seq)
	}
	// Output:
	// <MSA: demo' (2 sequences, 4 residues)>
	// P1 ACGT
	// P2 ACGT
}
