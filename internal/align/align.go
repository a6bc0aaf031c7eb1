// Package align implements optimal pairwise sequence alignment: global
// (Needleman-Wunsch) and local (Smith-Waterman) formulations, each in a
// linear and an affine (Gotoh) gap-penalty variant.
//
// The dynamic-programming matrices are dimensioned (|a|+1) x (|b|+1)
// with index 0 as the pre-sequence boundary, filled once in row-major
// order and consumed by an iterative traceback. Scoring plugs in through
// the scoring.Scorer interface; terminal-gap pricing is achieved by
// substituting a wrapped provider around boundary fills, never by
// branching inside a recurrence. Each call owns its matrices, so
// alignments of disjoint inputs may run concurrently.
package align

import (
	"math"

	"github.com/innaky/seqalign/internal/scoring"
)

// Direction is a traceback pointer. Up means the row residue aligns to
// a gap, Left means the column residue aligns to a gap, Match is a
// diagonal step, Terminate ends a path.
type Direction byte

const (
	Match Direction = iota
	Up
	Left
	Terminate
)

func (d Direction) String() string {
	switch d {
	case Match:
		return "match"
	case Up:
		return "up"
	case Left:
		return "left"
	case Terminate:
		return "terminate"
	}
	return "invalid"
}

// negInf is a safe minus-infinity for the affine gap lanes: deep enough
// to never win a max, shallow enough not to overflow when extended.
const negInf = math.MinInt32 / 2

// newIntMatrix allocates a rows x cols score matrix over one contiguous
// backing slice for cache locality.
func newIntMatrix(rows, cols int) [][]int {
	backing := make([]int, rows*cols)
	m := make([][]int, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

// newDirMatrix allocates a rows x cols traceback matrix.
func newDirMatrix(rows, cols int) [][]Direction {
	backing := make([]Direction, rows*cols)
	m := make([][]Direction, rows)
	for i := range m {
		m[i] = backing[i*cols : (i+1)*cols]
	}
	return m
}

func max2(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// aaScorer builds the BLOSUM62-backed provider for amino-acid entry
// points after checking both sequences against the matrix alphabet.
func aaScorer(a, b string, gap int) (scoring.Scorer, error) {
	if err := scoring.BLOSUM62.Validate(a); err != nil {
		return nil, err
	}
	if err := scoring.BLOSUM62.Validate(b); err != nil {
		return nil, err
	}
	return scoring.GapScorer{Matrix: scoring.BLOSUM62, Gap: gap}, nil
}
