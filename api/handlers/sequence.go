// Package handlers provides the HTTP handlers for the seqalign API.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/innaky/seqalign/internal/sequence"
)

// SequenceRequest carries a single sequence and an optional type tag
// ("dna", "rna" or "aa"; DNA by default).
type SequenceRequest struct {
	Sequence string `json:"sequence"`
	Type     string `json:"type,omitempty"`
}

func (r *SequenceRequest) record() (*sequence.Sequence, error) {
	switch r.Type {
	case "rna":
		return sequence.NewRNA(r.Sequence)
	case "aa", "protein":
		return sequence.NewProtein(r.Sequence)
	default:
		return sequence.New(r.Sequence)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func decodeSequenceRequest(w http.ResponseWriter, r *http.Request) (*sequence.Sequence, bool) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	seq, err := req.record()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return seq, true
}

// ValidateHandler checks a sequence against its alphabet.
func ValidateHandler(w http.ResponseWriter, r *http.Request) {
	var req SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, err := req.record(); err != nil {
		writeJSON(w, map[string]interface{}{"valid": false, "reason": err.Error()})
		return
	}
	writeJSON(w, map[string]interface{}{"valid": true})
}

// SequenceInfoHandler reports length, type and composition basics.
func SequenceInfoHandler(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequenceRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, map[string]interface{}{
		"length":        seq.Len(),
		"type":          seq.Type.String(),
		"gc_content":    seq.GCContent(),
		"has_ambiguous": seq.HasAmbiguous(),
	})
}

// ComplementHandler returns the complement of a DNA sequence.
func ComplementHandler(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequenceRequest(w, r)
	if !ok {
		return
	}
	comp, err := seq.Complement()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]string{"complement": comp.Residues})
}

// ReverseComplementHandler returns the reverse complement of a DNA
// sequence.
func ReverseComplementHandler(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequenceRequest(w, r)
	if !ok {
		return
	}
	rc, err := seq.ReverseComplement()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]string{"reverse_complement": rc.Residues})
}

// TranscribeHandler converts DNA to RNA.
func TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	seq, ok := decodeSequenceRequest(w, r)
	if !ok {
		return
	}
	rna, err := seq.Transcribe()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, map[string]string{"rna": rna.Residues})
}
