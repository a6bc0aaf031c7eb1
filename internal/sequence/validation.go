package sequence

import "fmt"

// EmptySequenceError is returned when a sequence has no residues.
type EmptySequenceError struct{}

func (e *EmptySequenceError) Error() string {
	return "sequence must have at least one residue"
}

// InvalidResidueError is returned when a residue is outside the
// sequence's alphabet.
type InvalidResidueError struct {
	Position int
	Found    rune
	Type     Type
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid %s residue '%c' at position %d", e.Type, e.Found, e.Position)
}

// Valid residue sets per alphabet. Nucleic sets carry the N ambiguity
// code; the protein set is the BLOSUM amino-acid alphabet including the
// B/Z/X ambiguity codes and the stop symbol.
var (
	ValidDNABases = map[rune]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}
	ValidRNABases = map[rune]bool{'A': true, 'C': true, 'G': true, 'U': true, 'N': true}

	ValidProteinResidues = residueSet("ACDEFGHIKLMNPQRSTVWYBZX*")
)

func residueSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, c := range s {
		set[c] = true
	}
	return set
}

// Validate checks every residue of seq against the alphabet for typ.
func Validate(seq string, typ Type) error {
	var valid map[rune]bool
	switch typ {
	case RNA:
		valid = ValidRNABases
	case Protein:
		valid = ValidProteinResidues
	default:
		valid = ValidDNABases
	}
	for i, c := range seq {
		if !valid[c] {
			return &InvalidResidueError{Position: i, Found: c, Type: typ}
		}
	}
	return nil
}

// ValidateDNA checks a string against the DNA alphabet.
func ValidateDNA(seq string) error { return Validate(seq, DNA) }

// ValidateRNA checks a string against the RNA alphabet.
func ValidateRNA(seq string) error { return Validate(seq, RNA) }

// ValidateProtein checks a string against the protein alphabet.
func ValidateProtein(seq string) error { return Validate(seq, Protein) }
