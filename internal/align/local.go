package align

import "github.com/innaky/seqalign/internal/scoring"

// LocalAA performs local (Smith-Waterman) alignment of two amino-acid
// sequences under BLOSUM62 with linear gap costs.
func LocalAA(a, b string, p scoring.Params) (*LocalAlignment, error) {
	sc, err := aaScorer(a, b, p.Gap)
	if err != nil {
		return nil, err
	}
	return localLinear(a, b, sc), nil
}

// LocalNA performs local alignment of two nucleic-acid sequences with
// linear gap costs.
func LocalNA(a, b string, p scoring.Params) (*LocalAlignment, error) {
	return localLinear(a, b, p), nil
}

// LocalAAAffine performs local amino-acid alignment with affine gap
// costs under BLOSUM62.
func LocalAAAffine(a, b string, p scoring.Params) (*LocalAlignment, error) {
	sc, err := aaScorer(a, b, p.Gap)
	if err != nil {
		return nil, err
	}
	return localAffine(a, b, sc, p), nil
}

// LocalNAAffine performs local nucleic-acid alignment with affine gap
// costs.
func LocalNAAffine(a, b string, p scoring.Params) (*LocalAlignment, error) {
	return localAffine(a, b, p, p), nil
}

// localLinear fills the Smith-Waterman matrices. Scores floor at zero;
// a cell whose candidates are all non-positive terminates any path
// through it. Local alignments have no terminal-gap concept, so the
// boundary row and column stay zero and the interior provider is used
// throughout. The argmax is tracked with a strict comparison so ties
// keep the lexicographically smallest cell.
func localLinear(a, b string, sc scoring.Scorer) *LocalAlignment {
	m, n := len(a), len(b)
	M := newIntMatrix(m+1, n+1)
	N := newDirMatrix(m+1, n+1)

	for i := 0; i <= m; i++ {
		N[i][0] = Terminate
	}
	for j := 0; j <= n; j++ {
		N[0][j] = Terminate
	}

	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			x := M[i-1][j-1] + sc.Score(a[i-1], b[j-1])
			y := M[i-1][j] + sc.Score(a[i-1], scoring.GapSymbol)
			z := M[i][j-1] + sc.Score(scoring.GapSymbol, b[j-1])

			best, dir := 0, Terminate
			if x > best {
				best, dir = x, Match
			}
			if y > best {
				best, dir = y, Up
			}
			if z > best {
				best, dir = z, Left
			}
			M[i][j], N[i][j] = best, dir

			if best > maxScore {
				maxScore, maxI, maxJ = best, i, j
			}
		}
	}

	g1, g2, u1, u2 := tracebackLocal(a, b, M, N, maxI, maxJ)
	return &LocalAlignment{
		Alignment:    Alignment{Score: maxScore, Seq1: g1, Seq2: g2, Matrix: M, Trace: N},
		UngappedSeq1: u1,
		UngappedSeq2: u2,
	}
}

// localAffine is the Gotoh recurrence with a zero floor on M. The D/R
// boundary lanes start at the gap-open cost and grow by the extension
// cost; terminal-gap pricing never applies to local alignments.
func localAffine(a, b string, sub scoring.Scorer, p scoring.Params) *LocalAlignment {
	m, n := len(a), len(b)
	M := newIntMatrix(m+1, n+1)
	D := newIntMatrix(m+1, n+1)
	R := newIntMatrix(m+1, n+1)
	N := newDirMatrix(m+1, n+1)

	open, extend := p.Gap, p.GapExtend

	N[0][0] = Terminate
	D[0][0], R[0][0] = negInf, negInf
	for i := 1; i <= m; i++ {
		v := open + (i-1)*extend
		D[i][0], R[i][0] = v, v
		N[i][0] = Terminate
	}
	for j := 1; j <= n; j++ {
		v := open + (j-1)*extend
		D[0][j], R[0][j] = v, v
		N[0][j] = Terminate
	}

	maxScore, maxI, maxJ := 0, 0, 0
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			D[i][j] = max2(D[i-1][j]+extend, M[i-1][j]+open)
			R[i][j] = max2(R[i][j-1]+extend, M[i][j-1]+open)

			x := M[i-1][j-1] + sub.Score(a[i-1], b[j-1])
			best, dir := 0, Terminate
			if x > best {
				best, dir = x, Match
			}
			if D[i][j] > best {
				best, dir = D[i][j], Up
			}
			if R[i][j] > best {
				best, dir = R[i][j], Left
			}
			M[i][j], N[i][j] = best, dir

			if best > maxScore {
				maxScore, maxI, maxJ = best, i, j
			}
		}
	}

	g1, g2, u1, u2 := tracebackAffine(a, b, M, D, R, N, maxI, maxJ, open, extend, open, extend, true)
	return &LocalAlignment{
		Alignment:    Alignment{Score: maxScore, Seq1: g1, Seq2: g2, Matrix: M, Trace: N, Down: D, Right: R},
		UngappedSeq1: u1,
		UngappedSeq2: u2,
	}
}
