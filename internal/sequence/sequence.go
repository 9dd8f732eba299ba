// Package sequence provides the identified, ordered motif container
// that the pairwise and multiple-sequence aligners operate on.
package sequence

import (
	"fmt"
	"strings"

	"github.com/moltools/versalign-go/internal/motif"
)

const untagged = -1

// Sequence is an identified, ordered, mutable list of motifs.
//
// Tags are transient column indices recorded on positions during
// multiple-sequence-alignment merges. They live in a side slice next to
// the motifs rather than inside the motif values, so sharing a motif
// value between sequences can never leak tag state across them. Tags
// are not part of equality.
type Sequence struct {
	id     string
	motifs []motif.Motif
	tags   []int
}

// New creates a sequence from an identifier and a motif list. The list
// is copied; nil motifs are rejected.
func New(id string, motifs []motif.Motif) (*Sequence, error) {
	for i, m := range motifs {
		if m == nil {
			return nil, &NilMotifError{Index: i}
		}
	}

	s := &Sequence{
		id:     id,
		motifs: append([]motif.Motif(nil), motifs...),
		tags:   make([]int, len(motifs)),
	}
	for i := range s.tags {
		s.tags[i] = untagged
	}
	return s, nil
}

// FromString builds a sequence of Symbol motifs, one per rune. A '-'
// rune becomes a Gap.
func FromString(id, text string) *Sequence {
	motifs := make([]motif.Motif, 0, len(text))
	for _, r := range text {
		if r == '-' {
			motifs = append(motifs, motif.Gap{})
		} else {
			motifs = append(motifs, motif.Symbol(r))
		}
	}
	s, _ := New(id, motifs)
	return s
}

// ID returns the sequence identifier. It is stable across alignment
// operations.
func (s *Sequence) ID() string { return s.id }

// Len returns the live motif count. It grows as alignment inserts gaps.
func (s *Sequence) Len() int { return len(s.motifs) }

// Motif returns the motif at index i.
func (s *Sequence) Motif(i int) motif.Motif {
	s.mustIndex(i)
	return s.motifs[i]
}

// SetMotif replaces the motif at index i, leaving its tag untouched.
func (s *Sequence) SetMotif(i int, m motif.Motif) {
	s.mustIndex(i)
	if m == nil {
		panic(fmt.Sprintf("sequence %q: nil motif at index %d", s.id, i))
	}
	s.motifs[i] = m
}

// Insert inserts a motif before index i, growing the sequence by one.
// i may equal Len to append. The inserted position is untagged.
func (s *Sequence) Insert(i int, m motif.Motif) {
	if i < 0 || i > len(s.motifs) {
		panic(fmt.Sprintf("sequence %q: insert index %d out of range [0, %d]", s.id, i, len(s.motifs)))
	}
	if m == nil {
		panic(fmt.Sprintf("sequence %q: nil motif at index %d", s.id, i))
	}

	s.motifs = append(s.motifs, nil)
	copy(s.motifs[i+1:], s.motifs[i:])
	s.motifs[i] = m

	s.tags = append(s.tags, 0)
	copy(s.tags[i+1:], s.tags[i:])
	s.tags[i] = untagged
}

// Motifs returns a copy of the motif list.
func (s *Sequence) Motifs() []motif.Motif {
	return append([]motif.Motif(nil), s.motifs...)
}

// Tag records each position's current index as its tag. Every live
// position is tagged, gaps included; only positions created after the
// call (inserted gaps, alignment output columns with no source) are
// untagged. Merge propagation relies on this to tell old columns from
// newly introduced ones.
func (s *Sequence) Tag() {
	for i := range s.tags {
		s.tags[i] = i
	}
}

// SetTag sets the tag at position i.
func (s *Sequence) SetTag(i, tag int) {
	s.mustIndex(i)
	s.tags[i] = tag
}

// TagAt returns the tag at position i and whether one is set.
func (s *Sequence) TagAt(i int) (int, bool) {
	s.mustIndex(i)
	t := s.tags[i]
	return t, t != untagged
}

// ClearTags removes all tags.
func (s *Sequence) ClearTags() {
	for i := range s.tags {
		s.tags[i] = untagged
	}
}

// Equal reports elementwise motif equality with other. Identifiers and
// tags are ignored.
func (s *Sequence) Equal(other *Sequence) bool {
	if other == nil || len(s.motifs) != len(other.motifs) {
		return false
	}
	for i, m := range s.motifs {
		if !m.Equal(other.motifs[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the sequence, tags included.
func (s *Sequence) Clone() *Sequence {
	return &Sequence{
		id:     s.id,
		motifs: append([]motif.Motif(nil), s.motifs...),
		tags:   append([]int(nil), s.tags...),
	}
}

// WithoutGaps returns a copy with every Gap removed, restoring the
// pre-alignment motif order.
func (s *Sequence) WithoutGaps() *Sequence {
	out := &Sequence{id: s.id}
	for _, m := range s.motifs {
		if !motif.IsGap(m) {
			out.motifs = append(out.motifs, m)
			out.tags = append(out.tags, untagged)
		}
	}
	return out
}

// String renders the sequence by concatenating its motif glyphs.
func (s *Sequence) String() string {
	var sb strings.Builder
	for _, m := range s.motifs {
		sb.WriteString(m.String())
	}
	return sb.String()
}

func (s *Sequence) mustIndex(i int) {
	if i < 0 || i >= len(s.motifs) {
		panic(fmt.Sprintf("sequence %q: index %d out of range [0, %d)", s.id, i, len(s.motifs)))
	}
}
