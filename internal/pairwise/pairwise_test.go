package pairwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltools/versalign-go/internal/scoring"
	"github.com/moltools/versalign-go/internal/sequence"
)

func TestGlobalAlign(t *testing.T) {
	score := scoring.Simple(1, -1)

	t.Run("fully dissimilar sequences slide past each other", func(t *testing.T) {
		a := sequence.FromString("a", "AAAA")
		b := sequence.FromString("b", "BBBB")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "----AAAA", res.A.String())
		assert.Equal(t, "BBBB----", res.B.String())
		assert.Equal(t, 0.0, res.Score)
	})

	t.Run("identical sequences align without gaps", func(t *testing.T) {
		a := sequence.FromString("a", "AAAA")
		b := sequence.FromString("b", "AAAA")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "AAAA", res.A.String())
		assert.Equal(t, "AAAA", res.B.String())
		assert.Equal(t, 4.0, res.Score)
	})

	t.Run("overlapping sequences share the overlap", func(t *testing.T) {
		a := sequence.FromString("a", "AABB")
		b := sequence.FromString("b", "BBCC")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "AABB--", res.A.String())
		assert.Equal(t, "--BBCC", res.B.String())
	})

	t.Run("cheap end gap absorbs a length difference", func(t *testing.T) {
		a := sequence.FromString("a", "AAA")
		b := sequence.FromString("b", "AAAA")

		res, err := Align(a, b, 1, 2, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "-AAA", res.A.String())
		assert.Equal(t, "AAAA", res.B.String())
	})

	t.Run("outputs have equal length", func(t *testing.T) {
		pairs := [][2]string{
			{"ABCD", "ABD"},
			{"A", "ABCDE"},
			{"XYZ", "XYZ"},
			{"AABBA", "BB"},
		}
		for _, p := range pairs {
			a := sequence.FromString("a", p[0])
			b := sequence.FromString("b", p[1])

			res, err := Align(a, b, 2, 1, score, Global)
			require.NoError(t, err)
			assert.Equal(t, res.A.Len(), res.B.Len())
		}
	})

	t.Run("inputs survive unchanged and round-trip", func(t *testing.T) {
		a := sequence.FromString("a", "AABB")
		b := sequence.FromString("b", "BBCC")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "AABB", a.String())
		assert.Equal(t, "BBCC", b.String())
		assert.True(t, res.A.WithoutGaps().Equal(a))
		assert.True(t, res.B.WithoutGaps().Equal(b))
	})

	t.Run("deterministic on repeated runs", func(t *testing.T) {
		a := sequence.FromString("a", "ABAB")
		b := sequence.FromString("b", "BABA")

		first, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			again, err := Align(a, b, 2, 1, score, Global)
			require.NoError(t, err)
			assert.Equal(t, first.A.String(), again.A.String())
			assert.Equal(t, first.B.String(), again.B.String())
			assert.Equal(t, first.Score, again.Score)
		}
	})

	t.Run("identifiers carry over", func(t *testing.T) {
		a := sequence.FromString("left", "AB")
		b := sequence.FromString("right", "AB")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, "left", res.A.ID())
		assert.Equal(t, "right", res.B.ID())
	})
}

func TestGlobalScore(t *testing.T) {
	score := scoring.Simple(1, -1)

	a := sequence.FromString("a", "AAAA")
	b := sequence.FromString("b", "BBBB")
	assert.Equal(t, 0.0, GlobalScore(a, b, 2, 1, score))

	c := sequence.FromString("c", "AAAA")
	assert.Equal(t, 4.0, GlobalScore(a, c, 2, 1, score))
}

func TestLocalAlign(t *testing.T) {
	score := scoring.Simple(1, -1)

	t.Run("extracts the shared core", func(t *testing.T) {
		a := sequence.FromString("a", "XXAABBYY")
		b := sequence.FromString("b", "ZZAABBWW")

		res, err := Align(a, b, 2, 1, score, Local)
		require.NoError(t, err)

		assert.Equal(t, "AABB", res.A.String())
		assert.Equal(t, "AABB", res.B.String())
		assert.Equal(t, 4.0, res.Score)
	})

	t.Run("no similarity yields an empty alignment", func(t *testing.T) {
		a := sequence.FromString("a", "AAAA")
		b := sequence.FromString("b", "BBBB")

		res, err := Align(a, b, 2, 1, score, Local)
		require.NoError(t, err)

		assert.Equal(t, 0, res.A.Len())
		assert.Equal(t, 0, res.B.Len())
		assert.Equal(t, 0.0, res.Score)
	})

	t.Run("identical sequences align fully", func(t *testing.T) {
		a := sequence.FromString("a", "ABAB")
		b := sequence.FromString("b", "ABAB")

		res, err := Align(a, b, 2, 1, score, Local)
		require.NoError(t, err)

		assert.Equal(t, "ABAB", res.A.String())
		assert.Equal(t, "ABAB", res.B.String())
		assert.Equal(t, 4.0, res.Score)
	})

	t.Run("outputs have equal length", func(t *testing.T) {
		a := sequence.FromString("a", "AABABBA")
		b := sequence.FromString("b", "BABB")

		res, err := Align(a, b, 2, 1, score, Local)
		require.NoError(t, err)
		assert.Equal(t, res.A.Len(), res.B.Len())
	})
}

func TestAlignArguments(t *testing.T) {
	score := scoring.Simple(1, -1)
	a := sequence.FromString("a", "AB")

	t.Run("nil sequences", func(t *testing.T) {
		_, err := Align(nil, a, 2, 1, score, Global)
		require.Error(t, err)

		_, err = Align(a, nil, 2, 1, score, Global)
		require.Error(t, err)
	})

	t.Run("nil score function", func(t *testing.T) {
		_, err := Align(a, a, 2, 1, nil, Global)
		require.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		_, err := Align(a, a, 2, 1, score, Mode(42))
		require.Error(t, err)
	})

	t.Run("empty sequences align to nothing", func(t *testing.T) {
		empty := sequence.FromString("e", "")

		res, err := Align(empty, empty, 2, 1, score, Global)
		require.NoError(t, err)
		assert.Equal(t, 0, res.A.Len())
		assert.Equal(t, 0.0, res.Score)
	})
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "global", Global.String())
	assert.Equal(t, "local", Local.String())
	assert.Equal(t, "unknown", Mode(9).String())
}

func TestResult(t *testing.T) {
	score := scoring.Simple(1, -1)

	t.Run("stats on a gapped alignment", func(t *testing.T) {
		a := sequence.FromString("a", "AABB")
		b := sequence.FromString("b", "BBCC")

		res, err := Align(a, b, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, 6, res.Length())
		assert.Equal(t, 2, res.Matches())
		assert.Equal(t, 0, res.Mismatches())
		assert.Equal(t, 4, res.Gaps())
		assert.InDelta(t, 2.0/6.0, res.Identity(), 1e-12)
	})

	t.Run("stats on a perfect alignment", func(t *testing.T) {
		a := sequence.FromString("a", "AAAA")

		res, err := Align(a, a, 2, 1, score, Global)
		require.NoError(t, err)

		assert.Equal(t, 4, res.Matches())
		assert.Equal(t, 0, res.Gaps())
		assert.Equal(t, 1.0, res.Identity())
	})

	t.Run("Format renders glyph rows and a match line", func(t *testing.T) {
		a := sequence.FromString("a", "AAAA")

		res, err := Align(a, a, 2, 1, score, Global)
		require.NoError(t, err)

		out := res.Format()
		assert.Contains(t, out, "AAAA\n||||\nAAAA")
		assert.Contains(t, out, "Score: 4.00")
		assert.Contains(t, out, "Identity: 100.0%")
	})
}
