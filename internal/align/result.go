package align

import (
	"fmt"
	"strings"

	"github.com/innaky/seqalign/internal/scoring"
)

// Alignment is the result of a pairwise alignment: the optimal score and
// the two gapped strings, which always have equal length. For a global
// alignment they strip back to the input sequences; for a local one they
// cover only the aligned region. The filled dynamic-programming matrices are
// retained for inspection; Down and Right are nil for linear variants.
type Alignment struct {
	Score int
	Seq1  string
	Seq2  string

	Matrix [][]int
	Trace  [][]Direction
	Down   [][]int
	Right  [][]int
}

// LocalAlignment extends Alignment with the diagonal-only projections of
// the gapped strings: the characters taken from Match columns.
type LocalAlignment struct {
	Alignment
	UngappedSeq1 string
	UngappedSeq2 string
}

// Length returns the number of aligned columns.
func (a *Alignment) Length() int {
	return len(a.Seq1)
}

// Identity returns the proportion of columns where both residues agree.
func (a *Alignment) Identity() float64 {
	if len(a.Seq1) == 0 {
		return 0.0
	}
	return float64(a.MatchCount()) / float64(len(a.Seq1))
}

// MatchCount returns the number of identical residue pairs.
func (a *Alignment) MatchCount() int {
	count := 0
	for i := 0; i < len(a.Seq1); i++ {
		if a.Seq1[i] == a.Seq2[i] && a.Seq1[i] != scoring.GapSymbol {
			count++
		}
	}
	return count
}

// MismatchCount returns the number of differing residue pairs, gaps
// excluded.
func (a *Alignment) MismatchCount() int {
	count := 0
	for i := 0; i < len(a.Seq1); i++ {
		if a.Seq1[i] != a.Seq2[i] &&
			a.Seq1[i] != scoring.GapSymbol && a.Seq2[i] != scoring.GapSymbol {
			count++
		}
	}
	return count
}

// GapsSeq1 returns the number of gap characters in the first string.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.Seq1, string(scoring.GapSymbol))
}

// GapsSeq2 returns the number of gap characters in the second string.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.Seq2, string(scoring.GapSymbol))
}

// TotalGaps returns the gap count over both strings.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// GapOpenings counts maximal gap runs over both strings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false
	for i := 0; i < len(a.Seq1); i++ {
		if a.Seq1[i] == scoring.GapSymbol {
			if !inGap1 {
				openings++
			}
			inGap1 = true
		} else {
			inGap1 = false
		}
		if a.Seq2[i] == scoring.GapSymbol {
			if !inGap2 {
				openings++
			}
			inGap2 = true
		} else {
			inGap2 = false
		}
	}
	return openings
}

// ToCIGAR renders the alignment as a CIGAR string with M/X/I/D ops.
func (a *Alignment) ToCIGAR() string {
	if len(a.Seq1) == 0 {
		return ""
	}

	var cigar strings.Builder
	currentOp := byte(0)
	count := 0
	for i := 0; i < len(a.Seq1); i++ {
		var op byte
		switch {
		case a.Seq1[i] == scoring.GapSymbol:
			op = 'I'
		case a.Seq2[i] == scoring.GapSymbol:
			op = 'D'
		case a.Seq1[i] == a.Seq2[i]:
			op = 'M'
		default:
			op = 'X'
		}
		if op == currentOp {
			count++
			continue
		}
		if count > 0 {
			fmt.Fprintf(&cigar, "%d%c", count, currentOp)
		}
		currentOp = op
		count = 1
	}
	if count > 0 {
		fmt.Fprintf(&cigar, "%d%c", count, currentOp)
	}
	return cigar.String()
}

// Format returns a multi-line rendering of the alignment with a match
// line between the two gapped strings.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.Seq1); i++ {
		switch {
		case a.Seq1[i] == a.Seq2[i] && a.Seq1[i] != scoring.GapSymbol:
			matchLine.WriteByte('|')
		case a.Seq1[i] == scoring.GapSymbol || a.Seq2[i] == scoring.GapSymbol:
			matchLine.WriteByte(' ')
		default:
			matchLine.WriteByte('.')
		}
	}
	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.Seq1, matchLine.String(), a.Seq2,
		a.Score, a.Identity()*100, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { score: %d, identity: %.1f%%, length: %d }",
		a.Score, a.Identity()*100, a.Length())
}
