// Package seqalign provides a high-level API for optimal pairwise
// sequence alignment: global (Needleman-Wunsch) and local
// (Smith-Waterman) alignment of nucleic-acid and amino-acid sequences,
// with linear or affine gap penalties.
//
// Example usage:
//
//	result, err := seqalign.GlobalAlignNA("GATTACA", "GCATGCU", seqalign.DefaultParams())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Format())
package seqalign

import (
	"fmt"
	"strings"

	"github.com/innaky/seqalign/internal/align"
	"github.com/innaky/seqalign/internal/scoring"
	"github.com/innaky/seqalign/internal/sequence"
	"github.com/innaky/seqalign/internal/stats"
)

// Version is the release version of the library.
const Version = "0.2.0"

// Re-export the core types for convenience.
type (
	Sequence          = sequence.Sequence
	SequenceType      = sequence.Type
	Alignment         = align.Alignment
	LocalAlignment    = align.LocalAlignment
	Direction         = align.Direction
	Params            = scoring.Params
	Matrix            = scoring.Matrix
	AlignmentSetStats = stats.AlignmentSetStats
)

// Sequence type tags.
const (
	DNA     = sequence.DNA
	RNA     = sequence.RNA
	Protein = sequence.Protein
)

// DefaultParams returns the stock scoring parameters: match +4,
// mismatch -4, gap -8, gap extension -2, terminal gaps priced like
// internal ones.
func DefaultParams() Params {
	return scoring.DefaultParams()
}

// Int returns a pointer to v, for the optional Params fields
// (Transition, TerminalGap, TerminalGapExtend).
func Int(v int) *int { return scoring.Int(v) }

// BLOSUM62 returns the bundled amino-acid substitution matrix.
func BLOSUM62() *Matrix { return scoring.BLOSUM62 }

// ParseMatrix parses a substitution matrix from its textual form.
func ParseMatrix(name, text string) (*Matrix, error) {
	return scoring.Parse(name, strings.NewReader(text))
}

// GlobalAlignAA aligns two amino-acid strings globally under BLOSUM62
// with the default gap cost.
func GlobalAlignAA(a, b string) (*Alignment, error) {
	return align.GlobalAA(a, b, scoring.DefaultParams())
}

// GlobalAlignNA aligns two nucleic-acid strings globally with linear
// gap costs.
func GlobalAlignNA(a, b string, p Params) (*Alignment, error) {
	return align.GlobalNA(a, b, p)
}

// GlobalAlignAAAffine aligns two amino-acid strings globally with
// affine gap costs under BLOSUM62; only the gap fields of p are used.
func GlobalAlignAAAffine(a, b string, p Params) (*Alignment, error) {
	return align.GlobalAAAffine(a, b, p)
}

// GlobalAlignNAAffine aligns two nucleic-acid strings globally with
// affine gap costs.
func GlobalAlignNAAffine(a, b string, p Params) (*Alignment, error) {
	return align.GlobalNAAffine(a, b, p)
}

// LocalAlignAA aligns two amino-acid strings locally under BLOSUM62
// with the default gap cost.
func LocalAlignAA(a, b string) (*LocalAlignment, error) {
	return align.LocalAA(a, b, scoring.DefaultParams())
}

// LocalAlignNA aligns two nucleic-acid strings locally with linear gap
// costs.
func LocalAlignNA(a, b string, p Params) (*LocalAlignment, error) {
	return align.LocalNA(a, b, p)
}

// LocalAlignAAAffine aligns two amino-acid strings locally with affine
// gap costs under BLOSUM62 defaults.
func LocalAlignAAAffine(a, b string) (*LocalAlignment, error) {
	return align.LocalAAAffine(a, b, scoring.DefaultParams())
}

// LocalAlignNAAffine aligns two nucleic-acid strings locally with
// affine gap costs under the default parameters.
func LocalAlignNAAffine(a, b string) (*LocalAlignment, error) {
	return align.LocalNAAffine(a, b, scoring.DefaultParams())
}

// NewSequence creates a DNA sequence record.
func NewSequence(residues string) (*Sequence, error) {
	return sequence.New(residues)
}

// NewSequenceWithID creates a DNA sequence record with an identifier.
func NewSequenceWithID(residues, id string) (*Sequence, error) {
	return sequence.WithID(residues, id)
}

// NewRNASequence creates an RNA sequence record.
func NewRNASequence(residues string) (*Sequence, error) {
	return sequence.NewRNA(residues)
}

// NewProteinSequence creates a protein sequence record.
func NewProteinSequence(residues string) (*Sequence, error) {
	return sequence.NewProtein(residues)
}

// Align performs local alignment of two records with default
// parameters, dispatching on the record type: protein records go
// through BLOSUM62, nucleic records through the parameter bundle. The
// core consumes only the records' residue strings.
func Align(seq1, seq2 *Sequence) (*LocalAlignment, error) {
	if err := checkKinds(seq1, seq2); err != nil {
		return nil, err
	}
	if seq1.Type == sequence.Protein {
		return LocalAlignAA(seq1.Residues, seq2.Residues)
	}
	return LocalAlignNA(seq1.Residues, seq2.Residues, DefaultParams())
}

// AlignGlobal performs global alignment of two records with default
// parameters, dispatching like Align.
func AlignGlobal(seq1, seq2 *Sequence) (*Alignment, error) {
	if err := checkKinds(seq1, seq2); err != nil {
		return nil, err
	}
	if seq1.Type == sequence.Protein {
		return GlobalAlignAA(seq1.Residues, seq2.Residues)
	}
	return GlobalAlignNA(seq1.Residues, seq2.Residues, DefaultParams())
}

// AlignGlobalWithParams performs global alignment of two records with
// explicit parameters, affine when affine is set.
func AlignGlobalWithParams(seq1, seq2 *Sequence, p Params, affine bool) (*Alignment, error) {
	if err := checkKinds(seq1, seq2); err != nil {
		return nil, err
	}
	switch {
	case seq1.Type == sequence.Protein && affine:
		return GlobalAlignAAAffine(seq1.Residues, seq2.Residues, p)
	case seq1.Type == sequence.Protein:
		return align.GlobalAA(seq1.Residues, seq2.Residues, p)
	case affine:
		return GlobalAlignNAAffine(seq1.Residues, seq2.Residues, p)
	default:
		return GlobalAlignNA(seq1.Residues, seq2.Residues, p)
	}
}

// AlignLocalWithParams performs local alignment of two records with
// explicit parameters, affine when affine is set.
func AlignLocalWithParams(seq1, seq2 *Sequence, p Params, affine bool) (*LocalAlignment, error) {
	if err := checkKinds(seq1, seq2); err != nil {
		return nil, err
	}
	switch {
	case seq1.Type == sequence.Protein && affine:
		return align.LocalAAAffine(seq1.Residues, seq2.Residues, p)
	case seq1.Type == sequence.Protein:
		return align.LocalAA(seq1.Residues, seq2.Residues, p)
	case affine:
		return align.LocalNAAffine(seq1.Residues, seq2.Residues, p)
	default:
		return LocalAlignNA(seq1.Residues, seq2.Residues, p)
	}
}

func checkKinds(seq1, seq2 *Sequence) error {
	if (seq1.Type == sequence.Protein) != (seq2.Type == sequence.Protein) {
		return fmt.Errorf("cannot align %s against %s", seq1.Type, seq2.Type)
	}
	return nil
}

// IndexedAlignment pairs an alignment with the index of its target.
type IndexedAlignment struct {
	Index     int
	Alignment *LocalAlignment
}

// AlignAgainstMultiple aligns a query locally against every target.
func AlignAgainstMultiple(query *Sequence, targets []*Sequence) ([]IndexedAlignment, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("target list cannot be empty")
	}
	results := make([]IndexedAlignment, len(targets))
	for i, target := range targets {
		aln, err := Align(query, target)
		if err != nil {
			return nil, err
		}
		results[i] = IndexedAlignment{Index: i, Alignment: aln}
	}
	return results, nil
}

// FindBestAlignment returns the highest-scoring alignment of the query
// against the targets.
func FindBestAlignment(query *Sequence, targets []*Sequence) (*IndexedAlignment, error) {
	alignments, err := AlignAgainstMultiple(query, targets)
	if err != nil {
		return nil, err
	}
	best := alignments[0]
	for _, a := range alignments[1:] {
		if a.Alignment.Score > best.Alignment.Score {
			best = a
		}
	}
	return &best, nil
}

// BatchStats summarizes a batch of indexed alignments.
func BatchStats(alignments []IndexedAlignment) (*AlignmentSetStats, error) {
	alns := make([]*align.Alignment, len(alignments))
	for i := range alignments {
		alns[i] = &alignments[i].Alignment.Alignment
	}
	return stats.FromAlignments(alns)
}

// Info returns a version banner.
func Info() string {
	return fmt.Sprintf("seqalign %s - pairwise sequence alignment", Version)
}
