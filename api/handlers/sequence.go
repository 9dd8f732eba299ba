package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moltools/versalign-go/internal/motif"
	"github.com/moltools/versalign-go/pkg/versalign"
)

// SequenceInfoRequest represents a sequence info request.
type SequenceInfoRequest struct {
	Sequence SequenceRecord `json:"sequence"`
}

// SequenceInfoResponse describes one sequence.
type SequenceInfoResponse struct {
	ID      string `json:"id"`
	Length  int    `json:"length"`
	Gaps    int    `json:"gaps"`
	Display string `json:"display"`
}

// SequenceInfoHandler reports identifier, length and gap count of a
// sequence.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceInfoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Sequence.Motifs == "" {
		writeError(w, http.StatusBadRequest, "sequence is required")
		return
	}

	s := versalign.FromString(req.Sequence.ID, req.Sequence.Motifs)
	gaps := 0
	for i := 0; i < s.Len(); i++ {
		if motif.IsGap(s.Motif(i)) {
			gaps++
		}
	}

	writeJSON(w, http.StatusOK, SequenceInfoResponse{
		ID:      s.ID(),
		Length:  s.Len(),
		Gaps:    gaps,
		Display: s.String(),
	})
}
