// Package versalign provides a high-level API for aligning ordered
// sequences of arbitrary motifs: pairwise global and local alignment,
// and guide-tree-driven progressive multiple sequence alignment.
//
// Example usage:
//
//	a := versalign.FromString("a", "AABB")
//	b := versalign.FromString("b", "BBCC")
//
//	res, err := versalign.Align(a, b, 2, 1, versalign.SimpleScore(1, -1), versalign.Global)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Format())
package versalign

import (
	"io"

	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/internal/msa"
	"github.com/moltools/versalign-go/internal/pairwise"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/seqio"
	"github.com/moltools/versalign-go/internal/sequence"
)

// Re-export types for convenience
type (
	Motif     = motif.Motif
	Gap       = motif.Gap
	Symbol    = motif.Symbol
	Sequence  = sequence.Sequence
	ScoreFunc = scoring.Func
	Table     = scoring.Table
	Result    = pairwise.Result
	Mode      = pairwise.Mode
)

// Alignment modes
const (
	Global = pairwise.Global
	Local  = pairwise.Local
)

// Version is the library version.
const Version = "0.1.0"

// Info returns a short version string.
func Info() string { return "versalign " + Version }

// NewSequence creates a sequence from an identifier and a motif list.
func NewSequence(id string, motifs []Motif) (*Sequence, error) {
	return sequence.New(id, motifs)
}

// FromString builds a sequence of Symbol motifs, one per rune.
func FromString(id, text string) *Sequence {
	return sequence.FromString(id, text)
}

// SimpleScore returns an equality-based score function.
func SimpleScore(match, mismatch float64) ScoreFunc {
	return scoring.Simple(match, mismatch)
}

// NewScoreTable builds a validated lookup scorer keyed by motif display
// strings.
func NewScoreTable(scores map[string]map[string]float64, gapScore float64) (*Table, error) {
	return scoring.NewTable(scores, gapScore)
}

// Align performs pairwise alignment of a against b.
func Align(a, b *Sequence, gapPenalty, endGapPenalty float64, score ScoreFunc, mode Mode) (*Result, error) {
	return pairwise.Align(a, b, gapPenalty, endGapPenalty, score, mode)
}

// MSA performs progressive multiple sequence alignment; every returned
// sequence has the same length.
func MSA(seqs []*Sequence, gapPenalty, endGapPenalty float64, score ScoreFunc) ([]*Sequence, error) {
	return msa.Align(seqs, gapPenalty, endGapPenalty, score)
}

// ReadFASTA parses sequences from a FASTA-style file, one Symbol motif
// per rune.
func ReadFASTA(path string) ([]*Sequence, error) {
	return seqio.ReadFile(path)
}

// ReadSequences parses sequences from a FASTA-style reader.
func ReadSequences(r io.Reader) ([]*Sequence, error) {
	return seqio.Read(r)
}

// WriteFASTA renders sequences in FASTA-style format, gaps as '-'.
func WriteFASTA(w io.Writer, seqs []*Sequence) error {
	return seqio.Write(w, seqs)
}
