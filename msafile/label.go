package msafile

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitLabel decomposes a sequence label of the form "<name>/<start>-<end>"
// into its base name and residue-number range.
//
// Decomposition never fails: a label without a well-formed "/start-end"
// suffix yields the label itself with the (0, 0) sentinel range. Only the
// last '/' is considered, so names containing slashes keep their prefix.
//
// Examples:
//
//	SplitLabel("YQ53_CAEEL/650-977") → ("YQ53_CAEEL", 650, 977)
//	SplitLabel("YQ53_CAEEL")         → ("YQ53_CAEEL", 0, 0)
//	SplitLabel("tr|Q21691/3-x")      → ("tr|Q21691/3-x", 0, 0)
//
// Complexity: O(len(label)).
func SplitLabel(label string) (name string, start, end int) {
	cut := strings.LastIndexByte(label, '/')
	if cut < 0 {
		return label, 0, 0
	}
	dash := strings.IndexByte(label[cut+1:], '-')
	if dash < 0 {
		return label, 0, 0
	}
	s, err := strconv.Atoi(label[cut+1 : cut+1+dash])
	if err != nil {
		return label, 0, 0
	}
	e, err := strconv.Atoi(label[cut+1+dash+1:])
	if err != nil {
		return label, 0, 0
	}

	return label[:cut], s, e
}

// JoinLabel is the inverse of SplitLabel: it reattaches a residue range to
// a base name. The (0, 0) sentinel range produces the bare name.
func JoinLabel(name string, start, end int) string {
	if start == 0 && end == 0 {
		return name
	}

	return fmt.Sprintf("%s/%d-%d", name, start, end)
}
