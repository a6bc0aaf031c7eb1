package align

import (
	"fmt"

	"github.com/innaky/seqalign/internal/scoring"
)

// tracebackGlobal walks the direction matrix from (|a|,|b|) to the
// origin, emitting columns into reversed buffers. The boundary forces
// LEFT when the first sequence is exhausted and UP when the second is.
// A direction cell outside the known set means the matrices are
// corrupt, which is a bug, not a user error.
func tracebackGlobal(a, b string, trace [][]Direction) (string, string) {
	s1 := make([]byte, 0, len(a)+len(b))
	s2 := make([]byte, 0, len(a)+len(b))

	i, j := len(a), len(b)
	for i > 0 || j > 0 {
		dir := trace[i][j]
		if dir == Terminate {
			break
		}
		if i == 0 {
			dir = Left
		} else if j == 0 {
			dir = Up
		}
		switch dir {
		case Match:
			s1 = append(s1, a[i-1])
			s2 = append(s2, b[j-1])
			i--
			j--
		case Up:
			s1 = append(s1, a[i-1])
			s2 = append(s2, scoring.GapSymbol)
			i--
		case Left:
			s1 = append(s1, scoring.GapSymbol)
			s2 = append(s2, b[j-1])
			j--
		default:
			panic(fmt.Sprintf("align: corrupt direction cell (%d,%d): %d", i, j, dir))
		}
	}

	reverseBytes(s1)
	reverseBytes(s2)
	return string(s1), string(s2)
}

// tracebackLocal walks from the argmax cell and additionally stops on a
// zero score cell. Match steps also feed the two ungapped buffers,
// yielding the diagonal-only projections.
func tracebackLocal(a, b string, M [][]int, trace [][]Direction, i, j int) (g1, g2, u1, u2 string) {
	var s1, s2, q1, q2 []byte

	for i > 0 || j > 0 {
		if M[i][j] == 0 || trace[i][j] == Terminate {
			break
		}
		switch trace[i][j] {
		case Match:
			s1 = append(s1, a[i-1])
			s2 = append(s2, b[j-1])
			q1 = append(q1, a[i-1])
			q2 = append(q2, b[j-1])
			i--
			j--
		case Up:
			s1 = append(s1, a[i-1])
			s2 = append(s2, scoring.GapSymbol)
			i--
		case Left:
			s1 = append(s1, scoring.GapSymbol)
			s2 = append(s2, b[j-1])
			j--
		default:
			panic(fmt.Sprintf("align: corrupt direction cell (%d,%d): %d", i, j, trace[i][j]))
		}
	}

	reverseBytes(s1)
	reverseBytes(s2)
	reverseBytes(q1)
	reverseBytes(q2)
	return string(s1), string(s2), string(q1), string(q2)
}

// Traceback lanes for the affine walk: the main matrix, the D lane
// (gap in a) and the R lane (gap in b).
const (
	laneM = iota
	laneD
	laneR
)

// tracebackAffine reconstructs an affine alignment lane-aware: a UP or
// LEFT pointer enters the matching gap lane, which is then followed
// until the cell where the gap opened. This keeps the emitted columns
// priced exactly as the matrices were filled, so the returned score
// always equals the column sum of the gapped strings. Ties between
// extending and opening close the gap.
//
// topen and textend must be the boundary costs the fill used; they
// equal open and extend when terminal gaps are not priced separately.
func tracebackAffine(a, b string, M, D, R [][]int, N [][]Direction,
	i, j, open, extend, topen, textend int, local bool) (g1, g2, u1, u2 string) {
	m, n := len(a), len(b)
	var s1, s2, q1, q2 []byte

	lane := laneM
	for i > 0 || j > 0 {
		switch lane {
		case laneM:
			if local && M[i][j] == 0 {
				goto done
			}
			dir := N[i][j]
			if dir == Terminate {
				goto done
			}
			if i == 0 {
				dir = Left
			} else if j == 0 {
				dir = Up
			}
			switch dir {
			case Match:
				s1 = append(s1, a[i-1])
				s2 = append(s2, b[j-1])
				q1 = append(q1, a[i-1])
				q2 = append(q2, b[j-1])
				i--
				j--
			case Up:
				lane = laneD
			case Left:
				lane = laneR
			default:
				panic(fmt.Sprintf("align: corrupt direction cell (%d,%d): %d", i, j, dir))
			}
		case laneD:
			s1 = append(s1, a[i-1])
			s2 = append(s2, scoring.GapSymbol)
			o, e := open, extend
			if j == 0 || j == n {
				o, e = topen, textend
			}
			switch {
			case D[i][j] == M[i-1][j]+o:
				lane = laneM
			case D[i][j] == D[i-1][j]+e:
				// gap keeps extending
			default:
				panic(fmt.Sprintf("align: inconsistent D lane at (%d,%d)", i, j))
			}
			i--
		case laneR:
			s1 = append(s1, scoring.GapSymbol)
			s2 = append(s2, b[j-1])
			o, e := open, extend
			if i == 0 || i == m {
				o, e = topen, textend
			}
			switch {
			case R[i][j] == M[i][j-1]+o:
				lane = laneM
			case R[i][j] == R[i][j-1]+e:
				// gap keeps extending
			default:
				panic(fmt.Sprintf("align: inconsistent R lane at (%d,%d)", i, j))
			}
			j--
		}
	}
done:

	reverseBytes(s1)
	reverseBytes(s2)
	reverseBytes(q1)
	reverseBytes(q2)
	return string(s1), string(s2), string(q1), string(q2)
}

func reverseBytes(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
