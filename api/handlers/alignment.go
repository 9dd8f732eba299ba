// Package handlers implements the JSON endpoints of the versalign API
// server. Sequences travel as {"id": ..., "motifs": ...} records with
// one rune per motif.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moltools/versalign-go/pkg/versalign"
)

// SequenceRecord is the wire form of a sequence.
type SequenceRecord struct {
	ID     string `json:"id"`
	Motifs string `json:"motifs"`
}

// AlignmentRequest represents a pairwise alignment request. Omitted
// parameters fall back to the defaults (gap 2, end gap 1, match 1,
// mismatch -1).
type AlignmentRequest struct {
	SequenceA     SequenceRecord `json:"sequence_a"`
	SequenceB     SequenceRecord `json:"sequence_b"`
	GapPenalty    *float64       `json:"gap_penalty,omitempty"`
	EndGapPenalty *float64       `json:"end_gap_penalty,omitempty"`
	Match         *float64       `json:"match,omitempty"`
	Mismatch      *float64       `json:"mismatch,omitempty"`
}

// AlignmentResponse represents the response for pairwise alignment.
type AlignmentResponse struct {
	AlignedA   string  `json:"aligned_a"`
	AlignedB   string  `json:"aligned_b"`
	Score      float64 `json:"score"`
	Identity   float64 `json:"identity"`
	Matches    int     `json:"matches"`
	Mismatches int     `json:"mismatches"`
	Gaps       int     `json:"gaps"`
}

// GlobalAlignHandler handles global (Needleman-Wunsch) alignment
// requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	alignHandler(w, r, versalign.Global)
}

// LocalAlignHandler handles local (Smith-Waterman) alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	alignHandler(w, r, versalign.Local)
}

func alignHandler(w http.ResponseWriter, r *http.Request, mode versalign.Mode) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.SequenceA.Motifs == "" || req.SequenceB.Motifs == "" {
		writeError(w, http.StatusBadRequest, "sequence_a and sequence_b are required")
		return
	}

	seqA := versalign.FromString(req.SequenceA.ID, req.SequenceA.Motifs)
	seqB := versalign.FromString(req.SequenceB.ID, req.SequenceB.Motifs)
	score := versalign.SimpleScore(orDefault(req.Match, 1), orDefault(req.Mismatch, -1))

	res, err := versalign.Align(seqA, seqB,
		orDefault(req.GapPenalty, 2), orDefault(req.EndGapPenalty, 1), score, mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AlignmentResponse{
		AlignedA:   res.A.String(),
		AlignedB:   res.B.String(),
		Score:      res.Score,
		Identity:   res.Identity(),
		Matches:    res.Matches(),
		Mismatches: res.Mismatches(),
		Gaps:       res.Gaps(),
	})
}

// MSARequest represents a multiple sequence alignment request.
type MSARequest struct {
	Sequences     []SequenceRecord `json:"sequences"`
	GapPenalty    *float64         `json:"gap_penalty,omitempty"`
	EndGapPenalty *float64         `json:"end_gap_penalty,omitempty"`
	Match         *float64         `json:"match,omitempty"`
	Mismatch      *float64         `json:"mismatch,omitempty"`
}

// MSAResponse represents the response for multiple sequence alignment.
type MSAResponse struct {
	Sequences []SequenceRecord `json:"sequences"`
	Length    int              `json:"length"`
}

// MSAHandler handles multiple sequence alignment requests.
func MSAHandler(w http.ResponseWriter, r *http.Request) {
	var req MSARequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seqs := make([]*versalign.Sequence, len(req.Sequences))
	for i, rec := range req.Sequences {
		if rec.Motifs == "" {
			writeError(w, http.StatusBadRequest, "every sequence needs motifs")
			return
		}
		seqs[i] = versalign.FromString(rec.ID, rec.Motifs)
	}
	score := versalign.SimpleScore(orDefault(req.Match, 1), orDefault(req.Mismatch, -1))

	aligned, err := versalign.MSA(seqs,
		orDefault(req.GapPenalty, 2), orDefault(req.EndGapPenalty, 1), score)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := make([]SequenceRecord, len(aligned))
	length := 0
	for i, s := range aligned {
		out[i] = SequenceRecord{ID: s.ID(), Motifs: s.String()}
		length = s.Len()
	}
	writeJSON(w, http.StatusOK, MSAResponse{Sequences: out, Length: length})
}

func orDefault(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
