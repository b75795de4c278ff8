package msafile_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/msalign/msafile"
)

// ExampleSplitLabel shows label decomposition: the residue range comes
// off the end, and a label without one yields the (0, 0) sentinel.
func ExampleSplitLabel() {
	name, start, end := msafile.SplitLabel("YQ53_CAEEL/650-977")
	fmt.Println(name, start, end)

	name, start, end = msafile.SplitLabel("YQ53_CAEEL")
	fmt.Println(name, start, end)
	// Output:
	// YQ53_CAEEL 650 977
	// YQ53_CAEEL 0 0
}

// ExampleNewReader parses a small FASTA alignment and streams its
// (label, sequence) pairs in file order.
func ExampleNewReader() {
	input := ">P1/1-5\nAC-GT\n>P2/1-5\nACTGT\n"
	r, err := msafile.NewReader(strings.NewReader(input))
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for {
		label, seq, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Println(label, seq)
	}
	// Output:
	// P1/1-5 AC-GT
	// P2/1-5 ACTGT
}
