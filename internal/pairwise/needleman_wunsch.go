package pairwise

import (
	"fmt"

	"github.com/moltools/versalign-go/internal/matrix"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

// alignGlobal runs Needleman-Wunsch over the full length of both
// sequences. The score is the bottom-right cell of the DP matrix.
func alignGlobal(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) (*Result, error) {
	m := globalMatrix(a, b, gapPenalty, endGapPenalty, score)

	steps, err := globalTraceback(m, a, b, gapPenalty, endGapPenalty)
	if err != nil {
		return nil, err
	}

	alignedA, alignedB := buildAligned(a, b, steps)
	return &Result{
		A:     alignedA,
		B:     alignedB,
		Score: m.Get(m.Rows()-1, m.Cols()-1),
	}, nil
}

// GlobalScore computes the global alignment score of a against b
// without tracing back an alignment. Used by the MSA engine for its
// all-pairs similarity matrix.
func GlobalScore(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) float64 {
	m := globalMatrix(a, b, gapPenalty, endGapPenalty, score)
	return m.Get(m.Rows()-1, m.Cols()-1)
}

// globalMatrix fills the (len(a)+1) x (len(b)+1) DP matrix. The first
// row and column accumulate the end-gap penalty; interior cells take
// the best of a gap in either sequence or a match/substitution. Cells
// on the last sequence row or column charge the end-gap penalty, since
// there the other sequence is already exhausted.
func globalMatrix(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) *matrix.Matrix {
	nrows, ncols := a.Len()+1, b.Len()+1
	m := matrix.New(nrows, ncols, 0)

	for ri := 0; ri < nrows; ri++ {
		m.Set(ri, 0, float64(ri)*endGapPenalty)
	}
	for ci := 0; ci < ncols; ci++ {
		m.Set(0, ci, float64(ci)*endGapPenalty)
	}

	for ri := 1; ri < nrows; ri++ {
		for ci := 1; ci < ncols; ci++ {
			penalty := gapPenalty
			if ri == a.Len() || ci == b.Len() {
				penalty = endGapPenalty
			}

			pair := score(a.Motif(ri-1), b.Motif(ci-1))

			best := m.Get(ri-1, ci) - penalty // gap in b
			if v := m.Get(ri, ci-1) - penalty; v > best { // gap in a
				best = v
			}
			if v := m.Get(ri-1, ci-1) + pair; v > best { // match or substitution
				best = v
			}
			m.Set(ri, ci, best)
		}
	}
	return m
}

// globalTraceback walks the filled matrix from the bottom-right corner
// back to the origin. The branch order is load-bearing: diagonal wins
// when the motifs are equal, when its score strictly beats both gap
// moves, or when neither gap move's delta matches the local penalty (a
// fallback for degenerate ties); otherwise the strictly better gap move
// wins, with vertical taking equal scores. Reordering these branches
// changes traceback on tied inputs.
func globalTraceback(m *matrix.Matrix, a, b *sequence.Sequence, gapPenalty, endGapPenalty float64) ([]step, error) {
	ri, ci := m.Rows()-1, m.Cols()-1
	steps := make([]step, 0, ri+ci)

	for ri > 0 || ci > 0 {
		if ri == 0 {
			steps = append(steps, step{ai: gapStep, bi: ci - 1})
			ci--
			continue
		}
		if ci == 0 {
			steps = append(steps, step{ai: ri - 1, bi: gapStep})
			ri--
			continue
		}

		penalty := gapPenalty
		if ri == a.Len() || ci == b.Len() {
			penalty = endGapPenalty
		}

		current := m.Get(ri, ci)
		horizontal := m.Get(ri, ci-1)
		diagonal := m.Get(ri-1, ci-1)
		vertical := m.Get(ri-1, ci)

		switch {
		case a.Motif(ri-1).Equal(b.Motif(ci-1)) ||
			(diagonal > horizontal && diagonal > vertical) ||
			(vertical-current != penalty && horizontal-current != penalty):
			steps = append(steps, step{ai: ri - 1, bi: ci - 1})
			ri--
			ci--
		case horizontal > vertical:
			steps = append(steps, step{ai: gapStep, bi: ci - 1})
			ci--
		case vertical >= horizontal:
			steps = append(steps, step{ai: ri - 1, bi: gapStep})
			ri--
		default:
			return nil, fmt.Errorf("pairwise: traceback stuck at row %d, col %d (score %v)", ri, ci, current)
		}
	}

	reverseSteps(steps)
	return steps, nil
}
