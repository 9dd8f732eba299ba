package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestGlobalAlignHandler(t *testing.T) {
	t.Run("aligns with default parameters", func(t *testing.T) {
		rec := postJSON(t, GlobalAlignHandler, AlignmentRequest{
			SequenceA: SequenceRecord{ID: "a", Motifs: "AAAA"},
			SequenceB: SequenceRecord{ID: "b", Motifs: "BBBB"},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AlignmentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.Equal(t, "----AAAA", resp.AlignedA)
		assert.Equal(t, "BBBB----", resp.AlignedB)
		assert.Equal(t, 0.0, resp.Score)
		assert.Equal(t, 0, resp.Matches)
		assert.Equal(t, 8, resp.Gaps)
	})

	t.Run("honors explicit parameters", func(t *testing.T) {
		gap, endGap := 1.0, 2.0
		rec := postJSON(t, GlobalAlignHandler, AlignmentRequest{
			SequenceA:     SequenceRecord{ID: "a", Motifs: "AAA"},
			SequenceB:     SequenceRecord{ID: "b", Motifs: "AAAA"},
			GapPenalty:    &gap,
			EndGapPenalty: &endGap,
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp AlignmentResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		assert.Equal(t, "-AAA", resp.AlignedA)
		assert.Equal(t, "AAAA", resp.AlignedB)
	})

	t.Run("missing sequences", func(t *testing.T) {
		rec := postJSON(t, GlobalAlignHandler, AlignmentRequest{
			SequenceA: SequenceRecord{ID: "a", Motifs: "AAAA"},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))
		rec := httptest.NewRecorder()
		GlobalAlignHandler(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLocalAlignHandler(t *testing.T) {
	rec := postJSON(t, LocalAlignHandler, AlignmentRequest{
		SequenceA: SequenceRecord{ID: "a", Motifs: "XXAABBYY"},
		SequenceB: SequenceRecord{ID: "b", Motifs: "ZZAABBWW"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AlignmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "AABB", resp.AlignedA)
	assert.Equal(t, "AABB", resp.AlignedB)
	assert.Equal(t, 4.0, resp.Score)
}

func TestMSAHandler(t *testing.T) {
	t.Run("aligns three sequences", func(t *testing.T) {
		rec := postJSON(t, MSAHandler, MSARequest{
			Sequences: []SequenceRecord{
				{ID: "a", Motifs: "AAAA"},
				{ID: "b", Motifs: "BBBB"},
				{ID: "c", Motifs: "CCCC"},
			},
		})
		require.Equal(t, http.StatusOK, rec.Code)

		var resp MSAResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

		require.Len(t, resp.Sequences, 3)
		assert.Equal(t, 12, resp.Length)
		for _, s := range resp.Sequences {
			assert.Len(t, s.Motifs, 12)
		}
	})

	t.Run("rejects a record without motifs", func(t *testing.T) {
		rec := postJSON(t, MSAHandler, MSARequest{
			Sequences: []SequenceRecord{
				{ID: "a", Motifs: "AAAA"},
				{ID: "b"},
			},
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSequenceInfoHandler(t *testing.T) {
	rec := postJSON(t, SequenceInfoHandler, SequenceInfoRequest{
		Sequence: SequenceRecord{ID: "a", Motifs: "AA-BB"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp SequenceInfoResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "a", resp.ID)
	assert.Equal(t, 5, resp.Length)
	assert.Equal(t, 1, resp.Gaps)
	assert.Equal(t, "AA-BB", resp.Display)
}
