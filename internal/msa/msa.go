// Package msa implements progressive multiple sequence alignment after
// Feng & Doolittle (1987): an all-pairs similarity matrix from global
// pairwise alignment, a Ward-linkage guide tree, and a walk of that
// tree that merges sequences and clusters using tag-based gap
// propagation. Gaps are only ever inserted, never removed, so columns
// established by earlier merges survive later ones.
package msa

import (
	"errors"
	"fmt"

	"github.com/moltools/versalign-go/internal/cluster"
	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/internal/pairwise"
	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

// Align aligns all sequences against each other and returns them in
// guide-tree order, every output the same length. Inputs are cloned,
// never modified. An empty input yields an empty result; a single
// sequence is returned unchanged.
func Align(seqs []*sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) ([]*sequence.Sequence, error) {
	if score == nil {
		return nil, errors.New("msa: score function is required")
	}
	for i, s := range seqs {
		if s == nil {
			return nil, fmt.Errorf("msa: sequence at index %d is nil", i)
		}
	}

	if len(seqs) == 0 {
		return nil, nil
	}
	if len(seqs) == 1 {
		return seqs, nil
	}

	similarities := similarityMatrix(seqs, gapPenalty, endGapPenalty, score)
	distances := similarities.ToDistances()

	merges, err := cluster.Ward(cluster.RowDistances(distances))
	if err != nil {
		return nil, err
	}

	clusters := make(map[int][]*sequence.Sequence, len(seqs))
	for i, s := range seqs {
		clusters[i] = []*sequence.Sequence{s.Clone()}
	}

	for _, mg := range merges {
		left, ok := clusters[mg.Left]
		if !ok {
			return nil, fmt.Errorf("msa: guide tree references unknown cluster %d", mg.Left)
		}
		right, ok := clusters[mg.Right]
		if !ok {
			return nil, fmt.Errorf("msa: guide tree references unknown cluster %d", mg.Right)
		}

		var merged []*sequence.Sequence
		switch {
		case len(left) == 1 && len(right) == 1:
			merged, err = mergeSingles(left[0], right[0], gapPenalty, endGapPenalty, score)
		case len(left) == 1:
			merged, err = mergeSingleWithCluster(left[0], right, gapPenalty, endGapPenalty, score)
		case len(right) == 1:
			merged, err = mergeSingleWithCluster(right[0], left, gapPenalty, endGapPenalty, score)
		default:
			merged, err = mergeClusters(left, right, gapPenalty, endGapPenalty, score)
		}
		if err != nil {
			return nil, err
		}

		delete(clusters, mg.Left)
		delete(clusters, mg.Right)
		clusters[mg.ID] = merged
	}

	if len(clusters) != 1 {
		return nil, fmt.Errorf("msa: incomplete alignment: %d clusters remain after walking the guide tree", len(clusters))
	}

	var out []*sequence.Sequence
	for _, members := range clusters {
		out = members
	}
	return out, nil
}

// mergeSingles aligns two lone sequences into a fresh two-member
// cluster.
func mergeSingles(a, b *sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) ([]*sequence.Sequence, error) {
	res, err := pairwise.Align(a, b, gapPenalty, endGapPenalty, score, pairwise.Global)
	if err != nil {
		return nil, err
	}
	res.A.ClearTags()
	res.B.ClearTags()
	return []*sequence.Sequence{res.A, res.B}, nil
}

// mergeSingleWithCluster anneals a lone sequence onto an aligned
// cluster. The single is aligned against the cluster's first and last
// member; the higher-scoring one (ties favor the first) becomes the
// anchor. Columns the anchor gained in that alignment carry no tag, and
// a gap is inserted at each of them into every other member, keeping
// the cluster column-consistent without disturbing established columns.
func mergeSingleWithCluster(single *sequence.Sequence, members []*sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) ([]*sequence.Sequence, error) {
	first := members[0]
	last := members[len(members)-1]
	first.Tag()
	last.Tag()

	withFirst, err := pairwise.Align(single, first, gapPenalty, endGapPenalty, score, pairwise.Global)
	if err != nil {
		return nil, err
	}
	withLast, err := pairwise.Align(single, last, gapPenalty, endGapPenalty, score, pairwise.Global)
	if err != nil {
		return nil, err
	}

	useFirst := withFirst.Score >= withLast.Score

	var anchor, annealed *sequence.Sequence
	var others []*sequence.Sequence
	if useFirst {
		annealed, anchor = withFirst.A, withFirst.B
		others = members[1:]
	} else {
		annealed, anchor = withLast.A, withLast.B
		others = members[:len(members)-1]
	}

	propagateGaps(anchor, others)

	for _, s := range others {
		s.ClearTags()
	}
	anchor.ClearTags()
	annealed.ClearTags()

	if useFirst {
		return append([]*sequence.Sequence{annealed, anchor}, others...), nil
	}
	out := make([]*sequence.Sequence, 0, len(members)+1)
	out = append(out, others...)
	return append(out, anchor, annealed), nil
}

// mergeClusters joins two aligned clusters. The facing members are
// cross-aligned (first cluster's bottom against second's top, and first
// cluster's top against second's bottom); the higher-scoring pairing
// (ties favor bottom/top) fixes the orientation. Each side then
// propagates its anchor's new gap columns into its own remaining
// members, and the clusters concatenate with the two anchors adjacent
// in the middle.
func mergeClusters(c1, c2 []*sequence.Sequence, gapPenalty, endGapPenalty float64, score scoring.Func) ([]*sequence.Sequence, error) {
	top1, bottom1 := c1[0], c1[len(c1)-1]
	top2, bottom2 := c2[0], c2[len(c2)-1]
	top1.Tag()
	bottom1.Tag()
	top2.Tag()
	bottom2.Tag()

	bottomTop, err := pairwise.Align(bottom1, top2, gapPenalty, endGapPenalty, score, pairwise.Global)
	if err != nil {
		return nil, err
	}
	topBottom, err := pairwise.Align(top1, bottom2, gapPenalty, endGapPenalty, score, pairwise.Global)
	if err != nil {
		return nil, err
	}

	useBottomTop := bottomTop.Score >= topBottom.Score

	var anchor1, anchor2 *sequence.Sequence
	var others1, others2 []*sequence.Sequence
	if useBottomTop {
		anchor1, anchor2 = bottomTop.A, bottomTop.B
		others1 = c1[:len(c1)-1]
		others2 = c2[1:]
	} else {
		anchor1, anchor2 = topBottom.A, topBottom.B
		others1 = c1[1:]
		others2 = c2[:len(c2)-1]
	}

	propagateGaps(anchor1, others1)
	propagateGaps(anchor2, others2)

	for _, s := range others1 {
		s.ClearTags()
	}
	for _, s := range others2 {
		s.ClearTags()
	}
	anchor1.ClearTags()
	anchor2.ClearTags()

	out := make([]*sequence.Sequence, 0, len(c1)+len(c2))
	if useBottomTop {
		out = append(out, others1...)
		out = append(out, anchor1, anchor2)
		return append(out, others2...), nil
	}
	out = append(out, others2...)
	out = append(out, anchor2, anchor1)
	return append(out, others1...), nil
}

// propagateGaps inserts a gap into every sequence in others at each
// column of anchor that carries no tag, i.e. each column the latest
// pairwise alignment introduced.
func propagateGaps(anchor *sequence.Sequence, others []*sequence.Sequence) {
	for i := 0; i < anchor.Len(); i++ {
		if _, tagged := anchor.TagAt(i); !tagged {
			for _, s := range others {
				s.Insert(i, motif.Gap{})
			}
		}
	}
}
