package msafile_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/msalign/msafile"
)

const fastaInput = `>YQ53_CAEEL/650-977 ago/piwi family
DILVGIAR.E
K
>Q21691_CAEEL/673-1001
TIVFGIIA.E
K
`

const stockholmInput = `# STOCKHOLM 1.0
#=GF ID piwi_seed
#=GF AC PF02171.12
YQ53_CAEEL/650-977    DILVGIAR.EK
Q21691_CAEEL/673-1001 TIVFGIIA.EK
//
`

const selexInput = `# aligned by hand
YQ53_CAEEL/650-977    DILVGIAR.EK
Q21691_CAEEL/673-1001 TIVFGIIA.EK
`

// drain collects every (label, seq) pair from r.
func drain(t *testing.T, r *msafile.Reader) (labels, seqs []string) {
	t.Helper()
	for {
		label, seq, err := r.Next()
		if errors.Is(err, io.EOF) {
			return labels, seqs
		}
		require.NoError(t, err)
		labels = append(labels, label)
		seqs = append(seqs, seq)
	}
}

func TestNewReader_FASTA(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(fastaInput))
	require.NoError(t, err)
	require.Equal(t, msafile.FASTA, r.Detected())
	require.Equal(t, 2, r.Len())

	labels, seqs := drain(t, r)
	// Header descriptions are dropped; wrapped lines are joined.
	require.Equal(t, []string{"YQ53_CAEEL/650-977", "Q21691_CAEEL/673-1001"}, labels)
	require.Equal(t, []string{"DILVGIAR.EK", "TIVFGIIA.EK"}, seqs)
}

func TestNewReader_Stockholm(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(stockholmInput))
	require.NoError(t, err)
	require.Equal(t, msafile.Stockholm, r.Detected())
	require.Equal(t, "piwi_seed", r.Title())

	labels, seqs := drain(t, r)
	require.Equal(t, []string{"YQ53_CAEEL/650-977", "Q21691_CAEEL/673-1001"}, labels)
	require.Equal(t, []string{"DILVGIAR.EK", "TIVFGIIA.EK"}, seqs)
}

func TestNewReader_StockholmWrappedRows(t *testing.T) {
	input := `# STOCKHOLM 1.0
A/1-8 DILV
B/1-8 TIVF
A/1-8 GIAR
B/1-8 GIIA
//
`
	r, err := msafile.NewReader(strings.NewReader(input))
	require.NoError(t, err)
	labels, seqs := drain(t, r)
	require.Equal(t, []string{"A/1-8", "B/1-8"}, labels)
	require.Equal(t, []string{"DILVGIAR", "TIVFGIIA"}, seqs)
}

func TestNewReader_SELEX(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(selexInput))
	require.NoError(t, err)
	require.Equal(t, msafile.SELEX, r.Detected())
	require.Equal(t, msafile.DefaultTitle, r.Title())
	require.Equal(t, 2, r.Len())
}

func TestNewReader_ExplicitFormat(t *testing.T) {
	// Force SELEX parsing of content whose first line would auto-detect
	// as a comment anyway; WithFormat skips detection entirely.
	r, err := msafile.NewReader(strings.NewReader(selexInput),
		msafile.WithFormat(msafile.SELEX))
	require.NoError(t, err)
	require.Equal(t, msafile.SELEX, r.Detected())
}

func TestNewReader_Failures(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		format msafile.Format // Detect unless a parse-stage case needs forcing
		want   error
	}{
		{"empty input", "", msafile.Detect, msafile.ErrUnknownFormat},
		{"unrecognizable line", "one two three four", msafile.Detect, msafile.ErrUnknownFormat},
		{"sequence before header", "ACGT\n>A\nACGT\n", msafile.FASTA, msafile.ErrMalformed},
		{"empty FASTA header", ">\nACGT\n", msafile.Detect, msafile.ErrMalformed},
		{"empty FASTA sequence", ">A\n>B\nACGT\n", msafile.Detect, msafile.ErrMalformed},
		{"one-field data row", "# STOCKHOLM 1.0\nonlylabel\n//\n", msafile.Detect, msafile.ErrMalformed},
		{"unequal widths", ">A\nACGT\n>B\nAC\n", msafile.Detect, msafile.ErrMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := msafile.NewReader(strings.NewReader(tc.input),
				msafile.WithFormat(tc.format))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewReader_Filter(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(fastaInput),
		msafile.WithFilter(func(label, _ string) bool {
			return strings.HasPrefix(label, "YQ53")
		}))
	require.NoError(t, err)
	labels, _ := drain(t, r)
	require.Equal(t, []string{"YQ53_CAEEL/650-977"}, labels)
}

func TestNewReader_Slice(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(fastaInput),
		msafile.WithSlice([]int{0, 1, 2, 10}))
	require.NoError(t, err)
	_, seqs := drain(t, r)
	require.Equal(t, []string{"DILK", "TIVK"}, seqs)
}

func TestNewReader_SliceOutOfRange(t *testing.T) {
	_, err := msafile.NewReader(strings.NewReader(fastaInput),
		msafile.WithSlice([]int{0, 99}))
	require.ErrorIs(t, err, msafile.ErrBadSlice)
}

func TestReader_Rewind(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(fastaInput))
	require.NoError(t, err)

	first, _ := drain(t, r)
	r.Rewind()
	second, _ := drain(t, r)
	require.Equal(t, first, second)
}

func TestReader_Close(t *testing.T) {
	r, err := msafile.NewReader(strings.NewReader(fastaInput))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close()) // idempotent

	_, _, err = r.Next()
	require.ErrorIs(t, err, msafile.ErrClosed)
}

func TestOpen_TitleFromFileName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "piwi_seed.fasta")
	require.NoError(t, os.WriteFile(path, []byte(fastaInput), 0o600))

	r, err := msafile.Open(path)
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, "piwi_seed", r.Title())
}

func TestOpen_TitleOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whatever.sth")
	require.NoError(t, os.WriteFile(path, []byte(stockholmInput), 0o600))

	// WithTitle wins over both the Stockholm ID and the file name.
	r, err := msafile.Open(path, msafile.WithTitle("renamed"))
	require.NoError(t, err)
	defer r.Close()
	require.Equal(t, "renamed", r.Title())

	// Without the override, the Stockholm ID wins over the file name.
	r2, err := msafile.Open(path)
	require.NoError(t, err)
	defer r2.Close()
	require.Equal(t, "piwi_seed", r2.Title())
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := msafile.Open(filepath.Join(t.TempDir(), "nope.fasta"))
	require.Error(t, err)
}
