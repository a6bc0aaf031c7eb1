// Package sequence provides validated biological sequence records.
//
// A Sequence is a tagged record carrying a residue string plus optional
// identifier and description. The alignment core never depends on the
// record type itself; it consumes only the residue string, which is the
// single contract between the two layers.
package sequence

import (
	"fmt"
	"strings"
)

// Type tags the alphabet a sequence is drawn from.
type Type int

const (
	// DNA sequences use A, C, G, T plus the ambiguity code N.
	DNA Type = iota
	// RNA sequences use A, C, G, U plus N.
	RNA
	// Protein sequences use the BLOSUM amino-acid alphabet.
	Protein
)

func (t Type) String() string {
	switch t {
	case DNA:
		return "DNA"
	case RNA:
		return "RNA"
	case Protein:
		return "protein"
	default:
		return "unknown"
	}
}

// Sequence is a validated biological sequence record.
type Sequence struct {
	Residues    string
	ID          string
	Description string
	Type        Type
}

// New creates a DNA sequence, upper-casing and validating the input.
func New(residues string) (*Sequence, error) {
	return WithMetadata(residues, "", "", DNA)
}

// NewRNA creates an RNA sequence.
func NewRNA(residues string) (*Sequence, error) {
	return WithMetadata(residues, "", "", RNA)
}

// NewProtein creates a protein sequence.
func NewProtein(residues string) (*Sequence, error) {
	return WithMetadata(residues, "", "", Protein)
}

// WithID creates a DNA sequence with an identifier.
func WithID(residues, id string) (*Sequence, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}
	return WithMetadata(residues, id, "", DNA)
}

// WithMetadata creates a sequence with full metadata, validated for the
// given type.
func WithMetadata(residues, id, description string, typ Type) (*Sequence, error) {
	normalized := strings.ToUpper(residues)
	if len(normalized) == 0 {
		return nil, &EmptySequenceError{}
	}
	if err := Validate(normalized, typ); err != nil {
		return nil, err
	}
	return &Sequence{
		Residues:    normalized,
		ID:          id,
		Description: description,
		Type:        typ,
	}, nil
}

// Len returns the number of residues.
func (s *Sequence) Len() int {
	return len(s.Residues)
}

// IsValid re-checks every residue against the sequence's alphabet.
func (s *Sequence) IsValid() bool {
	return Validate(s.Residues, s.Type) == nil
}

// HasAmbiguous reports whether a nucleic sequence contains the ambiguity
// code N. Protein records always report false, since N is asparagine.
func (s *Sequence) HasAmbiguous() bool {
	return s.Type != Protein && strings.ContainsRune(s.Residues, 'N')
}

// Subsequence returns the half-open slice [start, end).
func (s *Sequence) Subsequence(start, end int) (*Sequence, error) {
	if start < 0 {
		return nil, fmt.Errorf("start index must be non-negative")
	}
	if end <= start {
		return nil, fmt.Errorf("end must be greater than start")
	}
	if end > len(s.Residues) {
		return nil, fmt.Errorf("end must not exceed sequence length")
	}
	return &Sequence{
		Residues:    s.Residues[start:end],
		ID:          s.ID,
		Description: s.Description,
		Type:        s.Type,
	}, nil
}

func complementBase(c rune) rune {
	switch c {
	case 'A':
		return 'T'
	case 'T':
		return 'A'
	case 'C':
		return 'G'
	case 'G':
		return 'C'
	default:
		return 'N'
	}
}

// Complement returns the base-wise complement (A<->T, C<->G). DNA only.
func (s *Sequence) Complement() (*Sequence, error) {
	if s.Type != DNA {
		return nil, fmt.Errorf("complement only available for DNA sequences")
	}
	comp := make([]rune, len(s.Residues))
	for i, b := range s.Residues {
		comp[i] = complementBase(b)
	}
	return &Sequence{
		Residues:    string(comp),
		ID:          s.ID,
		Description: s.Description,
		Type:        s.Type,
	}, nil
}

// Reverse returns the residues in reverse order.
func (s *Sequence) Reverse() *Sequence {
	runes := []rune(s.Residues)
	n := len(runes)
	for i := 0; i < n/2; i++ {
		runes[i], runes[n-1-i] = runes[n-1-i], runes[i]
	}
	return &Sequence{
		Residues:    string(runes),
		ID:          s.ID,
		Description: s.Description,
		Type:        s.Type,
	}
}

// ReverseComplement returns the reverse complement. DNA only.
func (s *Sequence) ReverseComplement() (*Sequence, error) {
	comp, err := s.Complement()
	if err != nil {
		return nil, err
	}
	return comp.Reverse(), nil
}

// Transcribe converts DNA to RNA (T -> U).
func (s *Sequence) Transcribe() (*Sequence, error) {
	if s.Type != DNA {
		return nil, fmt.Errorf("can only transcribe DNA")
	}
	return &Sequence{
		Residues:    strings.ReplaceAll(s.Residues, "T", "U"),
		ID:          s.ID,
		Description: s.Description,
		Type:        RNA,
	}, nil
}

// GCContent returns the proportion of G and C residues. Nucleic only;
// protein sequences report zero.
func (s *Sequence) GCContent() float64 {
	if len(s.Residues) == 0 || s.Type == Protein {
		return 0.0
	}
	gc := 0
	for _, b := range s.Residues {
		if b == 'G' || b == 'C' {
			gc++
		}
	}
	return float64(gc) / float64(len(s.Residues))
}

// ToFASTA renders the record as a FASTA entry with 70-column wrapping.
func (s *Sequence) ToFASTA() string {
	var b strings.Builder
	b.WriteByte('>')
	if s.ID != "" {
		b.WriteString(s.ID)
	} else {
		b.WriteString("sequence")
	}
	if s.Description != "" {
		b.WriteByte(' ')
		b.WriteString(s.Description)
	}
	b.WriteByte('\n')
	for i := 0; i < len(s.Residues); i += 70 {
		end := i + 70
		if end > len(s.Residues) {
			end = len(s.Residues)
		}
		b.WriteString(s.Residues[i:end])
		b.WriteByte('\n')
	}
	return b.String()
}

func (s *Sequence) String() string {
	return fmt.Sprintf("Sequence { id: %q, type: %s, length: %d }", s.ID, s.Type, s.Len())
}
