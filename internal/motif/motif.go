// Package motif defines the atomic units sequences are made of.
//
// A Motif is an opaque, comparable, displayable unit. The alignment
// engine never looks inside a motif; it only compares motifs for
// equality, renders them, and feeds them to a caller-supplied score
// function. Gap is the distinguished "no content" motif inserted by
// alignment.
package motif

// Motif is one unit of a sequence.
type Motif interface {
	// Equal reports whether two motifs carry the same content.
	Equal(other Motif) bool

	// String renders the motif as a display glyph.
	String() string
}

// Gap is the placeholder motif inserted during alignment. A gap is
// equal only to other gaps and always displays as "-".
type Gap struct{}

// Equal reports whether other is also a gap.
func (Gap) Equal(other Motif) bool {
	_, ok := other.(Gap)
	return ok
}

func (Gap) String() string { return "-" }

// IsGap reports whether m is a Gap.
func IsGap(m Motif) bool {
	_, ok := m.(Gap)
	return ok
}

// Symbol is a single-character motif for text-encoded sequences. It is
// the motif type used by the CLI, the API and the FASTA reader; callers
// with richer motif payloads implement Motif themselves.
type Symbol rune

// Equal reports whether other is the same symbol.
func (s Symbol) Equal(other Motif) bool {
	o, ok := other.(Symbol)
	return ok && o == s
}

func (s Symbol) String() string { return string(rune(s)) }
