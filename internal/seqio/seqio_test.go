package seqio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moltools/versalign-go/internal/motif"
)

func TestRead(t *testing.T) {
	t.Run("multiple records", func(t *testing.T) {
		in := strings.NewReader(">seq1\nAABB\n>seq2\nBBCC\n")

		seqs, err := Read(in)
		require.NoError(t, err)
		require.Len(t, seqs, 2)

		assert.Equal(t, "seq1", seqs[0].ID())
		assert.Equal(t, "AABB", seqs[0].String())
		assert.Equal(t, "seq2", seqs[1].ID())
		assert.Equal(t, "BBCC", seqs[1].String())
	})

	t.Run("multi-line record", func(t *testing.T) {
		in := strings.NewReader(">seq1\nAA\nBB\n")

		seqs, err := Read(in)
		require.NoError(t, err)
		require.Len(t, seqs, 1)
		assert.Equal(t, "AABB", seqs[0].String())
	})

	t.Run("blank lines and padding are skipped", func(t *testing.T) {
		in := strings.NewReader("\n> seq1 \n\n  AB  \n\n")

		seqs, err := Read(in)
		require.NoError(t, err)
		require.Len(t, seqs, 1)
		assert.Equal(t, "seq1", seqs[0].ID())
		assert.Equal(t, "AB", seqs[0].String())
	})

	t.Run("dash reads back as a gap", func(t *testing.T) {
		in := strings.NewReader(">seq1\nA-B\n")

		seqs, err := Read(in)
		require.NoError(t, err)
		require.Equal(t, 3, seqs[0].Len())
		assert.True(t, motif.IsGap(seqs[0].Motif(1)))
	})

	t.Run("data before the first header", func(t *testing.T) {
		in := strings.NewReader("AABB\n>seq1\nAB\n")

		_, err := Read(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "before first header")
	})

	t.Run("header with no data yields an empty record", func(t *testing.T) {
		in := strings.NewReader(">seq1\n")

		seqs, err := Read(in)
		require.NoError(t, err)
		require.Len(t, seqs, 1)
		assert.Equal(t, 0, seqs[0].Len())
	})

	t.Run("empty input yields no records", func(t *testing.T) {
		seqs, err := Read(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, seqs)
	})
}

func TestWrite(t *testing.T) {
	in := strings.NewReader(">seq1\nA-BB\n>seq2\nBBCC\n")
	seqs, err := Read(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, seqs))
	assert.Equal(t, ">seq1\nA-BB\n>seq2\nBBCC\n", buf.String())

	t.Run("round trips", func(t *testing.T) {
		again, err := Read(&buf)
		require.NoError(t, err)
		require.Len(t, again, 2)
		assert.True(t, again[0].Equal(seqs[0]))
		assert.True(t, again[1].Equal(seqs[1]))
	})
}
