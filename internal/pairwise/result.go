package pairwise

import (
	"fmt"
	"strings"

	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/internal/sequence"
)

// Result holds a finished pairwise alignment: two equal-length aligned
// sequences and the alignment score.
type Result struct {
	A     *sequence.Sequence
	B     *sequence.Sequence
	Score float64
}

// Length returns the number of alignment columns.
func (r *Result) Length() int { return r.A.Len() }

// Matches counts columns whose motifs are equal and not gaps.
func (r *Result) Matches() int {
	count := 0
	for i := 0; i < r.A.Len(); i++ {
		ma, mb := r.A.Motif(i), r.B.Motif(i)
		if !motif.IsGap(ma) && !motif.IsGap(mb) && ma.Equal(mb) {
			count++
		}
	}
	return count
}

// Mismatches counts columns pairing two unequal non-gap motifs.
func (r *Result) Mismatches() int {
	count := 0
	for i := 0; i < r.A.Len(); i++ {
		ma, mb := r.A.Motif(i), r.B.Motif(i)
		if !motif.IsGap(ma) && !motif.IsGap(mb) && !ma.Equal(mb) {
			count++
		}
	}
	return count
}

// Gaps counts gap positions across both aligned sequences.
func (r *Result) Gaps() int {
	count := 0
	for i := 0; i < r.A.Len(); i++ {
		if motif.IsGap(r.A.Motif(i)) {
			count++
		}
		if motif.IsGap(r.B.Motif(i)) {
			count++
		}
	}
	return count
}

// Identity returns the fraction of columns that are matches, in
// [0, 1]. An empty alignment has identity 0.
func (r *Result) Identity() float64 {
	if r.A.Len() == 0 {
		return 0
	}
	return float64(r.Matches()) / float64(r.A.Len())
}

// Format renders the alignment as two glyph rows with a match line in
// between ('|' match, '.' substitution, ' ' gap). It assumes
// single-glyph motifs, which holds for Symbol.
func (r *Result) Format() string {
	var marks strings.Builder
	for i := 0; i < r.A.Len(); i++ {
		ma, mb := r.A.Motif(i), r.B.Motif(i)
		switch {
		case motif.IsGap(ma) || motif.IsGap(mb):
			marks.WriteByte(' ')
		case ma.Equal(mb):
			marks.WriteByte('|')
		default:
			marks.WriteByte('.')
		}
	}

	return fmt.Sprintf("%s\n%s\n%s\nScore: %.2f\nIdentity: %.1f%%",
		r.A, marks.String(), r.B, r.Score, r.Identity()*100)
}

func (r *Result) String() string {
	return fmt.Sprintf("Result{score: %.2f, length: %d, identity: %.1f%%}",
		r.Score, r.Length(), r.Identity()*100)
}
