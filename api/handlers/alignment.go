package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/innaky/seqalign/pkg/seqalign"
)

// AlignRequest selects the sequences, the provider ("na" or "aa"), the
// gap model and any scoring overrides. Omitted parameters take the
// defaults; terminal costs fall back to the gap costs.
type AlignRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Type      string `json:"type,omitempty"`
	Affine    bool   `json:"affine,omitempty"`

	Match             *int `json:"match,omitempty"`
	Mismatch          *int `json:"mismatch,omitempty"`
	Transition        *int `json:"transition,omitempty"`
	Gap               *int `json:"gap,omitempty"`
	GapExtend         *int `json:"gap_extend,omitempty"`
	TerminalGap       *int `json:"terminal_gap,omitempty"`
	TerminalGapExtend *int `json:"terminal_gap_extend,omitempty"`
}

// AlignResponse is the wire form of an alignment result.
type AlignResponse struct {
	Seq1         string  `json:"seq1"`
	Seq2         string  `json:"seq2"`
	Score        int     `json:"score"`
	Identity     float64 `json:"identity"`
	CIGAR        string  `json:"cigar"`
	Matches      int     `json:"matches"`
	Mismatches   int     `json:"mismatches"`
	Gaps         int     `json:"gaps"`
	UngappedSeq1 string  `json:"ungapped_seq1,omitempty"`
	UngappedSeq2 string  `json:"ungapped_seq2,omitempty"`
}

func (r *AlignRequest) params() seqalign.Params {
	p := seqalign.DefaultParams()
	if r.Match != nil {
		p.Match = *r.Match
	}
	if r.Mismatch != nil {
		p.Mismatch = *r.Mismatch
	}
	if r.Gap != nil {
		p.Gap = *r.Gap
	}
	if r.GapExtend != nil {
		p.GapExtend = *r.GapExtend
	}
	p.Transition = r.Transition
	p.TerminalGap = r.TerminalGap
	p.TerminalGapExtend = r.TerminalGapExtend
	return p
}

func (r *AlignRequest) records() (*seqalign.Sequence, *seqalign.Sequence, error) {
	if r.Type == "aa" {
		seq1, err := seqalign.NewProteinSequence(r.Sequence1)
		if err != nil {
			return nil, nil, err
		}
		seq2, err := seqalign.NewProteinSequence(r.Sequence2)
		if err != nil {
			return nil, nil, err
		}
		return seq1, seq2, nil
	}
	seq1, err := seqalign.NewSequence(r.Sequence1)
	if err != nil {
		return nil, nil, err
	}
	seq2, err := seqalign.NewSequence(r.Sequence2)
	if err != nil {
		return nil, nil, err
	}
	return seq1, seq2, nil
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seq1, seq2, err := req.records()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := seqalign.AlignGlobalWithParams(seq1, seq2, req.params(), req.Affine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, AlignResponse{
		Seq1:       result.Seq1,
		Seq2:       result.Seq2,
		Score:      result.Score,
		Identity:   result.Identity(),
		CIGAR:      result.ToCIGAR(),
		Matches:    result.MatchCount(),
		Mismatches: result.MismatchCount(),
		Gaps:       result.TotalGaps(),
	})
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	seq1, seq2, err := req.records()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := seqalign.AlignLocalWithParams(seq1, seq2, req.params(), req.Affine)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, AlignResponse{
		Seq1:         result.Seq1,
		Seq2:         result.Seq2,
		Score:        result.Score,
		Identity:     result.Identity(),
		CIGAR:        result.ToCIGAR(),
		Matches:      result.MatchCount(),
		Mismatches:   result.MismatchCount(),
		Gaps:         result.TotalGaps(),
		UngappedSeq1: result.UngappedSeq1,
		UngappedSeq2: result.UngappedSeq2,
	})
}

// MatrixHandler returns the bundled BLOSUM62 alphabet and table.
func MatrixHandler(w http.ResponseWriter, r *http.Request) {
	m := seqalign.BLOSUM62()
	writeJSON(w, map[string]interface{}{
		"name":    m.Name(),
		"symbols": string(m.Symbols()),
		"matrix":  m.String(),
	})
}
