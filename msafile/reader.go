package msafile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a supported alignment file format.
type Format int

const (
	// Detect asks the reader to infer the format from the first
	// meaningful line of input. This is the default.
	Detect Format = iota
	// FASTA: ">label" headers followed by wrapped sequence lines.
	FASTA
	// Stockholm: "# STOCKHOLM" magic, "#=GF" annotations, "//" terminator.
	Stockholm
	// SELEX: bare "label sequence" rows; '#' starts a comment.
	SELEX
)

// String implements fmt.Stringer for diagnostics.
func (f Format) String() string {
	switch f {
	case FASTA:
		return "FASTA"
	case Stockholm:
		return "Stockholm"
	case SELEX:
		return "SELEX"
	default:
		return "auto-detect"
	}
}

// maxLineSize bounds a single input line. Wide seed alignments routinely
// exceed bufio's 64K default.
const maxLineSize = 8 << 20

// record is one parsed (label, sequence) pair, in file order.
type record struct {
	label string
	seq   string
}

// Reader yields (label, sequence) pairs from an alignment source, in file
// order. Labels are never pre-decomposed; apply SplitLabel explicitly.
//
// The input is parsed and validated up front, so Next never reports a
// parse error: after construction succeeds, iteration only ends with
// io.EOF (or ErrClosed after Close). Rewind restarts iteration.
type Reader struct {
	records []record
	pos     int
	title   string
	format  Format
	closer  io.Closer // underlying file when constructed via Open
	closed  bool
}

// Open opens the alignment file at path and parses it fully.
//
// Stage 1 (Open): open the file; failures propagate as *os.PathError.
// Stage 2 (Parse): delegate to NewReader for detection and validation.
// Stage 3 (Title): default the title to the file's base name, unless the
// file (Stockholm "#=GF ID") or WithTitle provided one.
//
// Complexity: O(total input size).
func Open(path string, opts ...Option) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	r, err := NewReader(f, opts...)
	if err != nil {
		f.Close()

		return nil, err
	}
	r.closer = f
	if r.title == DefaultTitle {
		base := filepath.Base(path)
		r.title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return r, nil
}

// NewReader parses an alignment from src. The source is consumed eagerly;
// src may be closed by the caller as soon as NewReader returns.
//
// Errors: ErrUnknownFormat, ErrMalformed (wrapped with a line number),
// ErrBadSlice; read failures from src propagate as-is.
func NewReader(src io.Reader, opts ...Option) (*Reader, error) {
	o := gatherOptions(opts...)

	lines, err := readLines(src)
	if err != nil {
		return nil, err
	}

	format := o.format
	if format == Detect {
		format, err = detectFormat(lines)
		if err != nil {
			return nil, err
		}
	}

	var (
		records []record
		title   string
	)
	switch format {
	case FASTA:
		records, err = parseFASTA(lines)
	case Stockholm:
		records, title, err = parseStockholm(lines)
	case SELEX:
		records, err = parseSELEX(lines)
	default:
		err = fmt.Errorf("format %d: %w", int(format), ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}

	if o.filter != nil {
		kept := records[:0]
		for _, rec := range records {
			if o.filter(rec.label, rec.seq) {
				kept = append(kept, rec)
			}
		}
		records = kept
	}

	if err = validateWidths(records); err != nil {
		return nil, err
	}

	if o.hasSlice {
		if records, err = sliceColumns(records, o.columns); err != nil {
			return nil, err
		}
	}

	switch {
	case o.title != "":
		title = o.title
	case title == "":
		title = DefaultTitle
	}

	return &Reader{records: records, title: title, format: format}, nil
}

// Next returns the next (label, sequence) pair in file order.
// Iteration ends with io.EOF. After Close, Next returns ErrClosed.
func (r *Reader) Next() (label, seq string, err error) {
	if r.closed {
		return "", "", ErrClosed
	}
	if r.pos >= len(r.records) {
		return "", "", io.EOF
	}
	rec := r.records[r.pos]
	r.pos++

	return rec.label, rec.seq, nil
}

// Rewind restarts iteration from the first record.
func (r *Reader) Rewind() {
	r.pos = 0
}

// Len reports the number of records parsed from the source.
func (r *Reader) Len() int {
	return len(r.records)
}

// Title reports the display title of the source: WithTitle if given, else
// the Stockholm "#=GF ID" annotation, else the file base name (Open) or
// DefaultTitle (NewReader).
func (r *Reader) Title() string {
	return r.title
}

// Detected reports the format the input was parsed as.
func (r *Reader) Detected() Format {
	return r.format
}

// Close releases the underlying file, if any. Subsequent Next calls
// return ErrClosed. Close is idempotent.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.closer != nil {
		return r.closer.Close()
	}

	return nil
}

// readLines consumes src into memory, one entry per line.
func readLines(src io.Reader) ([]string, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineSize)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// detectFormat infers the format from the first non-blank line.
// "# STOCKHOLM" wins over the generic '#' SELEX comment prefix.
func detectFormat(lines []string) (Format, error) {
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "# STOCKHOLM"):
			return Stockholm, nil
		case strings.HasPrefix(line, ">"):
			return FASTA, nil
		case strings.HasPrefix(line, "#"):
			// SELEX comment before any data row.
			return SELEX, nil
		case len(strings.Fields(line)) == 2:
			return SELEX, nil
		default:
			return Detect, fmt.Errorf("line %q: %w", line, ErrUnknownFormat)
		}
	}

	return Detect, fmt.Errorf("empty input: %w", ErrUnknownFormat)
}

// parseFASTA joins wrapped sequence lines under each ">" header. The
// label is the first whitespace-separated token of the header; any
// trailing description is dropped.
func parseFASTA(lines []string) ([]record, error) {
	var (
		records []record
		current *record
	)
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if current != nil {
				records = append(records, *current)
			}
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("line %d: empty FASTA header: %w", i+1, ErrMalformed)
			}
			current = &record{label: fields[0]}

			continue
		}
		if current == nil {
			return nil, fmt.Errorf("line %d: sequence before header: %w", i+1, ErrMalformed)
		}
		current.seq += strings.Join(strings.Fields(line), "")
	}
	if current != nil {
		records = append(records, *current)
	}
	for _, rec := range records {
		if rec.seq == "" {
			return nil, fmt.Errorf("record %q: empty sequence: %w", rec.label, ErrMalformed)
		}
	}

	return records, nil
}

// parseStockholm reads "label seq" data rows, concatenating wrapped rows
// that repeat a label, and captures the "#=GF ID" title annotation.
func parseStockholm(lines []string) ([]record, string, error) {
	var title string
	records, index := []record{}, map[string]int{}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "" || line == "//":
			continue
		case strings.HasPrefix(line, "#"):
			if fields := strings.Fields(line); len(fields) >= 3 &&
				fields[0] == "#=GF" && fields[1] == "ID" {
				title = fields[2]
			}

			continue
		}
		label, seq, err := splitDataRow(line, i+1)
		if err != nil {
			return nil, "", err
		}
		if at, seen := index[label]; seen {
			records[at].seq += seq
		} else {
			index[label] = len(records)
			records = append(records, record{label: label, seq: seq})
		}
	}

	return records, title, nil
}

// parseSELEX reads bare "label seq" rows, skipping '#' comments, with the
// same wrapped-row concatenation as Stockholm.
func parseSELEX(lines []string) ([]record, error) {
	records, index := []record{}, map[string]int{}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		label, seq, err := splitDataRow(line, i+1)
		if err != nil {
			return nil, err
		}
		if at, seen := index[label]; seen {
			records[at].seq += seq
		} else {
			index[label] = len(records)
			records = append(records, record{label: label, seq: seq})
		}
	}

	return records, nil
}

// splitDataRow splits a "label sequence" data row into its two fields.
func splitDataRow(line string, lineno int) (label, seq string, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("line %d: want 2 fields, have %d: %w",
			lineno, len(fields), ErrMalformed)
	}

	return fields[0], fields[1], nil
}

// validateWidths enforces the rectangularity contract: every record must
// have the same sequence length as the first.
func validateWidths(records []record) error {
	if len(records) == 0 {
		return nil
	}
	width := len(records[0].seq)
	for _, rec := range records {
		if len(rec.seq) != width {
			return fmt.Errorf("record %q: length %d != %d: %w",
				rec.label, len(rec.seq), width, ErrMalformed)
		}
	}

	return nil
}

// sliceColumns restricts every record to the given column positions.
func sliceColumns(records []record, columns []int) ([]record, error) {
	for i, rec := range records {
		picked := make([]byte, len(columns))
		for j, col := range columns {
			if col < 0 || col >= len(rec.seq) {
				return nil, fmt.Errorf("column %d of width %d: %w",
					col, len(rec.seq), ErrBadSlice)
			}
			picked[j] = rec.seq[col]
		}
		records[i].seq = string(picked)
	}

	return records, nil
}
