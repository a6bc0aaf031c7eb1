package align

import "github.com/innaky/seqalign/internal/scoring"

// GlobalAA performs global alignment of two amino-acid sequences under
// BLOSUM62 with linear gap costs. Both sequences are checked against
// the matrix alphabet before any matrix is filled.
func GlobalAA(a, b string, p scoring.Params) (*Alignment, error) {
	sc, err := aaScorer(a, b, p.Gap)
	if err != nil {
		return nil, err
	}
	return globalLinear(a, b, sc, p), nil
}

// GlobalNA performs global alignment of two nucleic-acid sequences with
// linear gap costs under the parameter-bundle provider.
func GlobalNA(a, b string, p scoring.Params) (*Alignment, error) {
	return globalLinear(a, b, p, p), nil
}

// GlobalAAAffine performs global amino-acid alignment with affine
// (Gotoh) gap costs under BLOSUM62.
func GlobalAAAffine(a, b string, p scoring.Params) (*Alignment, error) {
	sc, err := aaScorer(a, b, p.Gap)
	if err != nil {
		return nil, err
	}
	return globalAffine(a, b, sc, p), nil
}

// GlobalNAAffine performs global nucleic-acid alignment with affine
// gap costs.
func GlobalNAAffine(a, b string, p scoring.Params) (*Alignment, error) {
	return globalAffine(a, b, p, p), nil
}

// linearCell applies the linear recurrence at (i,j), reading only the
// north-west, north and west neighbors. Ties break MATCH > UP > LEFT.
// upSc and leftSc price the two gap moves; they differ from sub only
// during terminal re-fill passes.
func linearCell(M [][]int, N [][]Direction, a, b string, i, j int, sub, upSc, leftSc scoring.Scorer) {
	x := M[i-1][j-1] + sub.Score(a[i-1], b[j-1])
	y := M[i-1][j] + upSc.Score(a[i-1], scoring.GapSymbol)
	z := M[i][j-1] + leftSc.Score(scoring.GapSymbol, b[j-1])

	best, dir := x, Match
	if y > best {
		best, dir = y, Up
	}
	if z > best {
		best, dir = z, Left
	}
	M[i][j], N[i][j] = best, dir
}

// globalLinear fills the Needleman-Wunsch matrices and tracebacks from
// the corner.
//
// Terminal-gap policy: the boundary row and column are filled with the
// terminal-wrapped provider; the interior is filled once with the main
// provider; when the terminal cost differs from the gap cost, the last
// row (its LEFT moves) and last column (its UP moves) are re-filled
// with the wrapper, last row first, the corner cell getting terminal
// pricing in both directions.
func globalLinear(a, b string, sc scoring.Scorer, p scoring.Params) *Alignment {
	m, n := len(a), len(b)
	M := newIntMatrix(m+1, n+1)
	N := newDirMatrix(m+1, n+1)

	bd := sc
	refill := p.EffectiveTerminalGap() != p.Gap
	if refill {
		bd = scoring.Terminal(sc, p.EffectiveTerminalGap())
	}

	N[0][0] = Terminate
	for i := 1; i <= m; i++ {
		M[i][0] = M[i-1][0] + bd.Score(a[i-1], scoring.GapSymbol)
		N[i][0] = Up
	}
	for j := 1; j <= n; j++ {
		M[0][j] = M[0][j-1] + bd.Score(scoring.GapSymbol, b[j-1])
		N[0][j] = Left
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			linearCell(M, N, a, b, i, j, sc, sc, sc)
		}
	}

	if refill && m > 0 && n > 0 {
		for j := 1; j <= n; j++ {
			linearCell(M, N, a, b, m, j, sc, sc, bd)
		}
		for i := 1; i <= m; i++ {
			up := bd
			left := sc
			if i == m {
				left = bd
			}
			linearCell(M, N, a, b, i, n, sc, up, left)
		}
	}

	s1, s2 := tracebackGlobal(a, b, N)
	return &Alignment{Score: M[m][n], Seq1: s1, Seq2: s2, Matrix: M, Trace: N}
}

// affineCell applies the Gotoh recurrence at (i,j): the D lane carries
// the best score ending with a gap in a (UP), the R lane a gap in b
// (LEFT). Ties break MATCH > UP > LEFT. The open/extend pairs differ
// between the two lanes only during terminal re-fill passes.
func affineCell(M, D, R [][]int, N [][]Direction, a, b string, i, j int,
	sub scoring.Scorer, openD, extD, openR, extR int) {
	D[i][j] = max2(D[i-1][j]+extD, M[i-1][j]+openD)
	R[i][j] = max2(R[i][j-1]+extR, M[i][j-1]+openR)

	best, dir := M[i-1][j-1]+sub.Score(a[i-1], b[j-1]), Match
	if D[i][j] > best {
		best, dir = D[i][j], Up
	}
	if R[i][j] > best {
		best, dir = R[i][j], Left
	}
	M[i][j], N[i][j] = best, dir
}

// globalAffine fills the Gotoh matrices. The boundary row and column
// are priced with terminal costs (first gap terminal-open, the rest
// terminal-extend); when terminal costs differ from interior costs the
// last row and column are re-filled the same way globalLinear does.
func globalAffine(a, b string, sub scoring.Scorer, p scoring.Params) *Alignment {
	m, n := len(a), len(b)
	M := newIntMatrix(m+1, n+1)
	D := newIntMatrix(m+1, n+1)
	R := newIntMatrix(m+1, n+1)
	N := newDirMatrix(m+1, n+1)

	open, extend := p.Gap, p.GapExtend
	topen, textend := p.EffectiveTerminalGap(), p.EffectiveTerminalGapExtend()

	N[0][0] = Terminate
	D[0][0], R[0][0] = negInf, negInf
	for i := 1; i <= m; i++ {
		M[i][0] = topen + (i-1)*textend
		N[i][0] = Up
		D[i][0] = M[i][0]
		R[i][0] = negInf
	}
	for j := 1; j <= n; j++ {
		M[0][j] = topen + (j-1)*textend
		N[0][j] = Left
		R[0][j] = M[0][j]
		D[0][j] = negInf
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			affineCell(M, D, R, N, a, b, i, j, sub, open, extend, open, extend)
		}
	}

	if (topen != open || textend != extend) && m > 0 && n > 0 {
		for j := 1; j <= n; j++ {
			affineCell(M, D, R, N, a, b, m, j, sub, open, extend, topen, textend)
		}
		for i := 1; i <= m; i++ {
			openR, extR := open, extend
			if i == m {
				openR, extR = topen, textend
			}
			affineCell(M, D, R, N, a, b, i, n, sub, topen, textend, openR, extR)
		}
	}

	s1, s2, _, _ := tracebackAffine(a, b, M, D, R, N, m, n, open, extend, topen, textend, false)
	return &Alignment{Score: M[m][n], Seq1: s1, Seq2: s2, Matrix: M, Trace: N, Down: D, Right: R}
}
