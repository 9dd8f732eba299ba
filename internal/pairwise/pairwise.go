// Package pairwise implements dynamic-programming pairwise alignment of
// motif sequences: global Needleman-Wunsch with distinct mid- and
// end-gap penalties, and local Smith-Waterman with a direction matrix.
package pairwise

import (
	"errors"
	"fmt"

	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

// Mode selects the alignment algorithm.
type Mode int

const (
	// Global aligns the entire length of both sequences
	// (Needleman-Wunsch).
	Global Mode = iota
	// Local aligns the best-scoring subsequences (Smith-Waterman).
	Local
)

func (m Mode) String() string {
	switch m {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// Align aligns a against b and returns the aligned pair plus the
// alignment score. gapPenalty is subtracted for a gap in the middle of
// a sequence, endGapPenalty for a gap opened once the other sequence is
// exhausted. The inputs are never modified; the returned sequences are
// fresh, with gaps inserted as needed and tags copied over from the
// source positions.
func Align(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func, mode Mode) (*Result, error) {
	if a == nil || b == nil {
		return nil, errors.New("pairwise: both sequences are required")
	}
	if score == nil {
		return nil, errors.New("pairwise: score function is required")
	}

	switch mode {
	case Global:
		return alignGlobal(a, b, gapPenalty, endGapPenalty, score)
	case Local:
		return alignLocal(a, b, gapPenalty, endGapPenalty, score)
	default:
		return nil, fmt.Errorf("pairwise: unknown alignment mode %d", mode)
	}
}

// step records where one alignment column came from: a source index in
// each sequence, or -1 for a gap in that sequence.
type step struct {
	ai, bi int
}

const gapStep = -1

// buildAligned materializes the aligned pair from a traceback path.
// Motifs and tags are copied from the source positions; gap columns get
// a fresh untagged Gap.
func buildAligned(a, b *sequence.Sequence, steps []step) (*sequence.Sequence, *sequence.Sequence) {
	motifsA := make([]motif.Motif, len(steps))
	motifsB := make([]motif.Motif, len(steps))
	for i, st := range steps {
		if st.ai == gapStep {
			motifsA[i] = motif.Gap{}
		} else {
			motifsA[i] = a.Motif(st.ai)
		}
		if st.bi == gapStep {
			motifsB[i] = motif.Gap{}
		} else {
			motifsB[i] = b.Motif(st.bi)
		}
	}

	alignedA, _ := sequence.New(a.ID(), motifsA)
	alignedB, _ := sequence.New(b.ID(), motifsB)
	for i, st := range steps {
		if st.ai != gapStep {
			if tag, ok := a.TagAt(st.ai); ok {
				alignedA.SetTag(i, tag)
			}
		}
		if st.bi != gapStep {
			if tag, ok := b.TagAt(st.bi); ok {
				alignedB.SetTag(i, tag)
			}
		}
	}
	return alignedA, alignedB
}

func reverseSteps(steps []step) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}
