package pairwise

import (
	"fmt"

	"github.com/moltools/versalign-go/internal/matrix"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

// direction records which move produced a cell's value in the local
// alignment matrix.
type direction uint8

const (
	stop direction = iota
	diag
	vert
	horiz
)

// alignLocal runs Smith-Waterman. The matrix has no end-gap
// initialization, every cell floors at zero, and a side matrix records
// the move that produced each cell. The preference order on equal
// scores is stop, diagonal, vertical, horizontal: an earlier move is
// only displaced by a strictly greater score. The best cell (first
// strictly greater under row-major fill) seeds the traceback, which
// follows recorded moves until it hits stop, so the result covers only
// the locally aligned subsequences.
func alignLocal(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) (*Result, error) {
	nrows, ncols := a.Len()+1, b.Len()+1
	m := matrix.New(nrows, ncols, 0)

	trace := make([][]direction, nrows)
	for ri := range trace {
		trace[ri] = make([]direction, ncols)
	}

	var bestScore float64
	bestRI, bestCI := 0, 0

	for ri := 1; ri < nrows; ri++ {
		for ci := 1; ci < ncols; ci++ {
			penalty := gapPenalty
			if ri == a.Len() || ci == b.Len() {
				penalty = endGapPenalty
			}

			pair := score(a.Motif(ri-1), b.Motif(ci-1))

			best, dir := 0.0, stop
			if v := m.Get(ri-1, ci-1) + pair; v > best {
				best, dir = v, diag
			}
			if v := m.Get(ri-1, ci) - penalty; v > best {
				best, dir = v, vert
			}
			if v := m.Get(ri, ci-1) - penalty; v > best {
				best, dir = v, horiz
			}

			m.Set(ri, ci, best)
			trace[ri][ci] = dir

			if best > bestScore {
				bestScore = best
				bestRI, bestCI = ri, ci
			}
		}
	}

	steps, err := localTraceback(trace, bestRI, bestCI)
	if err != nil {
		return nil, err
	}

	alignedA, alignedB := buildAligned(a, b, steps)
	return &Result{A: alignedA, B: alignedB, Score: bestScore}, nil
}

func localTraceback(trace [][]direction, startRI, startCI int) ([]step, error) {
	ri, ci := startRI, startCI
	var steps []step

walk:
	for ri > 0 && ci > 0 {
		switch trace[ri][ci] {
		case stop:
			break walk
		case diag:
			steps = append(steps, step{ai: ri - 1, bi: ci - 1})
			ri--
			ci--
		case vert:
			steps = append(steps, step{ai: ri - 1, bi: gapStep})
			ri--
		case horiz:
			steps = append(steps, step{ai: gapStep, bi: ci - 1})
			ci--
		default:
			return nil, fmt.Errorf("pairwise: invalid local traceback direction at row %d, col %d", ri, ci)
		}
	}

	reverseSteps(steps)
	return steps, nil
}
