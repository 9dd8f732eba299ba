// Package scoring defines the score-function contract consumed by the
// aligners, plus two ready-made scorers: an equality-based one and a
// lookup table validated at construction.
package scoring

import (
	"fmt"

	"github.com/moltools/versalign-go/internal/motif"
)

// Func scores a pair of motifs. Implementations must be symmetric and
// total over every motif pair, including Gap. The engine only calls,
// compares and sums the results; it never inspects motif internals.
type Func func(a, b motif.Motif) float64

// Simple returns a scorer awarding match for equal motifs and mismatch
// otherwise. Gap equals only Gap, so a gap paired with content scores
// mismatch.
func Simple(match, mismatch float64) Func {
	return func(a, b motif.Motif) float64 {
		if a.Equal(b) {
			return match
		}
		return mismatch
	}
}

// Table is a lookup scorer keyed by motif display strings. It is
// validated once at construction and immutable afterwards, so a single
// table value can be shared freely between alignment calls.
type Table struct {
	scores   map[string]map[string]float64
	gapScore float64
}

// NewTable validates and builds a lookup scorer. Every pair of listed
// motifs must have an entry in both orders with equal values; a missing
// or asymmetric entry is rejected here rather than surfacing later as a
// bad alignment. gapScore is returned for any pair involving a Gap.
func NewTable(scores map[string]map[string]float64, gapScore float64) (*Table, error) {
	for a, row := range scores {
		for b := range scores {
			v, ok := row[b]
			if !ok {
				return nil, fmt.Errorf("scoring: table missing entry (%s, %s)", a, b)
			}
			mirror, ok := scores[b][a]
			if !ok {
				return nil, fmt.Errorf("scoring: table missing entry (%s, %s)", b, a)
			}
			if mirror != v {
				return nil, fmt.Errorf("scoring: table is asymmetric for (%s, %s): %v vs %v", a, b, v, mirror)
			}
		}
	}

	copied := make(map[string]map[string]float64, len(scores))
	for a, row := range scores {
		inner := make(map[string]float64, len(row))
		for b, v := range row {
			inner[b] = v
		}
		copied[a] = inner
	}
	return &Table{scores: copied, gapScore: gapScore}, nil
}

// Score looks up the score for a motif pair. Scoring a motif the table
// does not know is a caller contract violation and panics with both
// motif names.
func (t *Table) Score(a, b motif.Motif) float64 {
	if motif.IsGap(a) || motif.IsGap(b) {
		return t.gapScore
	}

	row, ok := t.scores[a.String()]
	if !ok {
		panic(fmt.Sprintf("scoring: no table entry for motif %s", a))
	}
	v, ok := row[b.String()]
	if !ok {
		panic(fmt.Sprintf("scoring: no table entry for pair (%s, %s)", a, b))
	}
	return v
}

// Func adapts the table to the score-function contract.
func (t *Table) Func() Func { return t.Score }
