// Package msafile reads multiple sequence alignment files and decomposes
// sequence labels, feeding the matrix types in the msa package.
//
// 🚀 What does msafile do?
//
//	It turns an alignment file (or any io.Reader) into an ordered stream
//	of (label, sequence) pairs, preserving file order:
//	  • FASTA     — ">label" headers, wrapped sequence lines
//	  • Stockholm — "# STOCKHOLM 1.0", "#=GF ID" title, "//" terminator
//	  • SELEX     — bare "label  sequence" rows, "#" comments
//
// ✨ Key features:
//   - format auto-detection from the first meaningful line
//   - streaming Next() with io.EOF termination
//   - labels stay undecomposed; SplitLabel is an explicit step
//   - selective parsing: filter records and slice columns at read time
//   - equal-length validation, so consumers can trust rectangularity
//
// ⚙️ Usage:
//
//	r, err := msafile.Open("piwi_seed.fasta")
//	if err != nil { ... }
//	defer r.Close()
//	for {
//	    label, seq, err := r.Next()
//	    if errors.Is(err, io.EOF) { break }
//	    if err != nil { ... }
//	    name, start, end := msafile.SplitLabel(label)
//	    _ = name // "PIWI_ARATH" from "PIWI_ARATH/20-384"
//	    _, _, _ = seq, start, end
//	}
//
// See the tests and example tests for full walkthroughs.
package msafile
