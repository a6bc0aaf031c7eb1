package align

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/innaky/seqalign/internal/scoring"
)

func stripGaps(s string) string {
	return strings.ReplaceAll(s, string(scoring.GapSymbol), "")
}

// leadTail returns the length of the leading gap run and the start of
// the trailing gap run of a gapped string.
func leadTail(s string) (lead, tail int) {
	lead = 0
	for lead < len(s) && s[lead] == scoring.GapSymbol {
		lead++
	}
	tail = len(s)
	for tail > lead && s[tail-1] == scoring.GapSymbol {
		tail--
	}
	return lead, tail
}

// linearColumnScore reprices a gapped alignment column by column under
// linear gap semantics. Global alignments price leading and trailing
// gap runs with the terminal cost.
func linearColumnScore(s1, s2 string, sub scoring.Scorer, p scoring.Params, global bool) int {
	gap, tgap := p.Gap, p.Gap
	if global {
		tgap = p.EffectiveTerminalGap()
	}
	lead1, tail1 := leadTail(s1)
	lead2, tail2 := leadTail(s2)

	score := 0
	for k := 0; k < len(s1); k++ {
		switch {
		case s1[k] == scoring.GapSymbol:
			if global && (k < lead1 || k >= tail1) {
				score += tgap
			} else {
				score += gap
			}
		case s2[k] == scoring.GapSymbol:
			if global && (k < lead2 || k >= tail2) {
				score += tgap
			} else {
				score += gap
			}
		default:
			score += sub.Score(s1[k], s2[k])
		}
	}
	return score
}

// affineColumnScore reprices a gapped alignment under affine gap
// semantics: each maximal gap run costs open + (len-1)*extend, with
// terminal pricing for runs touching either end of a global alignment.
func affineColumnScore(s1, s2 string, sub scoring.Scorer, p scoring.Params, global bool) int {
	score := 0
	for k := 0; k < len(s1); k++ {
		if s1[k] != scoring.GapSymbol && s2[k] != scoring.GapSymbol {
			score += sub.Score(s1[k], s2[k])
		}
	}
	for _, s := range []string{s1, s2} {
		k := 0
		for k < len(s) {
			if s[k] != scoring.GapSymbol {
				k++
				continue
			}
			start := k
			for k < len(s) && s[k] == scoring.GapSymbol {
				k++
			}
			runLen := k - start
			open, extend := p.Gap, p.GapExtend
			if global && (start == 0 || k == len(s)) {
				open, extend = p.EffectiveTerminalGap(), p.EffectiveTerminalGapExtend()
			}
			score += open + (runLen-1)*extend
		}
	}
	return score
}

func checkShape(t *testing.T, a, b string, res *Alignment, global bool) {
	t.Helper()
	require.Equal(t, len(res.Seq1), len(res.Seq2), "gapped strings must have equal length")
	for k := 0; k < len(res.Seq1); k++ {
		assert.False(t, res.Seq1[k] == scoring.GapSymbol && res.Seq2[k] == scoring.GapSymbol,
			"column %d has a gap in both strings", k)
	}
	if global {
		assert.Equal(t, a, stripGaps(res.Seq1))
		assert.Equal(t, b, stripGaps(res.Seq2))
	} else {
		assert.True(t, strings.Contains(a, stripGaps(res.Seq1)))
		assert.True(t, strings.Contains(b, stripGaps(res.Seq2)))
	}
}

func TestGlobalAA(t *testing.T) {
	res, err := GlobalAA("HEAGAWGHEE", "PAWHEAE", scoring.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, -8, res.Score)
	assert.Equal(t, "HEAGAWGHEE", res.Seq1)
	assert.Equal(t, "--P-AWHEAE", res.Seq2)
	checkShape(t, "HEAGAWGHEE", "PAWHEAE", res, true)

	sub := scoring.GapScorer{Matrix: scoring.BLOSUM62, Gap: -8}
	assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, sub, scoring.DefaultParams(), true))

	assert.NotNil(t, res.Matrix)
	assert.NotNil(t, res.Trace)
	assert.Nil(t, res.Down)
	assert.Nil(t, res.Right)
	assert.Equal(t, Terminate, res.Trace[0][0])
}

func TestGlobalAAUnknownSymbol(t *testing.T) {
	_, err := GlobalAA("HEJ", "PAW", scoring.DefaultParams())
	require.Error(t, err)

	var unknown *scoring.UnknownSymbolError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, byte('J'), unknown.Symbol)
	assert.Equal(t, "BLOSUM62", unknown.Matrix)
}

func TestGlobalNA(t *testing.T) {
	t.Run("classic example", func(t *testing.T) {
		p := scoring.Params{Match: 1, Mismatch: -1, Gap: -1}
		res, err := GlobalNA("GATTACA", "GCATGCU", p)
		require.NoError(t, err)

		assert.Equal(t, 0, res.Score)
		checkShape(t, "GATTACA", "GCATGCU", res, true)
		assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, p, p, true))
	})

	t.Run("identical sequences", func(t *testing.T) {
		res, err := GlobalNA("ACGT", "ACGT", scoring.DefaultParams())
		require.NoError(t, err)

		assert.Equal(t, 16, res.Score)
		assert.Equal(t, "ACGT", res.Seq1)
		assert.Equal(t, "ACGT", res.Seq2)
		assert.Zero(t, res.TotalGaps())
	})

	t.Run("identical with explicit free terminal gaps", func(t *testing.T) {
		p := scoring.DefaultParams()
		p.TerminalGap = scoring.Int(0)
		p.TerminalGapExtend = scoring.Int(0)
		res, err := GlobalNA("ACGT", "ACGT", p)
		require.NoError(t, err)

		assert.Equal(t, 16, res.Score)
		assert.Zero(t, res.TotalGaps())
	})

	t.Run("transition scoring", func(t *testing.T) {
		p := scoring.DefaultParams()
		p.Transition = scoring.Int(-1)
		res, err := GlobalNA("ACGA", "ACGG", p)
		require.NoError(t, err)

		// Three matches plus one A<->G transition.
		assert.Equal(t, 11, res.Score)
	})
}

func TestGlobalNATerminalGaps(t *testing.T) {
	t.Run("default pricing penalizes end gaps", func(t *testing.T) {
		res, err := GlobalNA("ACGT", "ACGTTT", scoring.DefaultParams())
		require.NoError(t, err)

		assert.Equal(t, 0, res.Score)
		checkShape(t, "ACGT", "ACGTTT", res, true)
	})

	t.Run("free terminal gaps", func(t *testing.T) {
		p := scoring.DefaultParams()
		p.TerminalGap = scoring.Int(0)
		res, err := GlobalNA("ACGT", "ACGTTT", p)
		require.NoError(t, err)

		assert.Equal(t, 16, res.Score)
		assert.Equal(t, "ACGT--", res.Seq1)
		assert.Equal(t, "ACGTTT", res.Seq2)
		assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, p, p, true))
	})
}

func TestGlobalNAAffine(t *testing.T) {
	t.Run("single difference", func(t *testing.T) {
		res, err := GlobalNAAffine("AAAAAA", "AAGAAA", scoring.DefaultParams())
		require.NoError(t, err)

		// Five matches and one mismatch beat any gap pair.
		assert.Equal(t, 16, res.Score)
		assert.Equal(t, "AAAAAA", res.Seq1)
		assert.Equal(t, "AAGAAA", res.Seq2)
		assert.Equal(t, 1, res.MismatchCount())
		assert.Zero(t, res.TotalGaps())
		assert.NotNil(t, res.Down)
		assert.NotNil(t, res.Right)
	})

	t.Run("gap run extends instead of reopening", func(t *testing.T) {
		p := scoring.DefaultParams()
		res, err := GlobalNAAffine("ACGT", "ACGTTT", p)
		require.NoError(t, err)

		// One run of two: 16 - (8 + 2).
		assert.Equal(t, 6, res.Score)
		assert.Equal(t, res.Score, affineColumnScore(res.Seq1, res.Seq2, p, p, true))
	})

	t.Run("free terminal run", func(t *testing.T) {
		p := scoring.DefaultParams()
		p.TerminalGap = scoring.Int(0)
		p.TerminalGapExtend = scoring.Int(0)
		res, err := GlobalNAAffine("ACGT", "ACGTTT", p)
		require.NoError(t, err)

		assert.Equal(t, 16, res.Score)
		assert.Equal(t, "ACGT--", res.Seq1)
	})
}

func TestLocalNA(t *testing.T) {
	t.Run("shared core", func(t *testing.T) {
		p := scoring.Params{Match: 2, Mismatch: -1, Gap: -2}
		res, err := LocalNA("AAAATTTTGGGG", "CCCCTTTTCCCC", p)
		require.NoError(t, err)

		assert.Equal(t, 8, res.Score)
		assert.Equal(t, "TTTT", res.UngappedSeq1)
		assert.Equal(t, "TTTT", res.UngappedSeq2)
		checkShape(t, "AAAATTTTGGGG", "CCCCTTTTCCCC", &res.Alignment, false)
		assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, p, p, false))
	})

	t.Run("no positive alignment", func(t *testing.T) {
		p := scoring.Params{Match: 2, Mismatch: -1, Gap: -2}
		res, err := LocalNA("AAAA", "TTTT", p)
		require.NoError(t, err)

		assert.Zero(t, res.Score)
		assert.Empty(t, res.Seq1)
		assert.Empty(t, res.Seq2)
		assert.Empty(t, res.UngappedSeq1)
		assert.Empty(t, res.UngappedSeq2)
	})
}

func TestLocalAA(t *testing.T) {
	res, err := LocalAA("HEAGAWGHEE", "PAWHEAE", scoring.DefaultParams())
	require.NoError(t, err)

	assert.Greater(t, res.Score, 0)
	checkShape(t, "HEAGAWGHEE", "PAWHEAE", &res.Alignment, false)
	sub := scoring.GapScorer{Matrix: scoring.BLOSUM62, Gap: -8}
	assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, sub, scoring.DefaultParams(), false))
}

func TestLocalSelfAlignment(t *testing.T) {
	// Self-alignment of an ordinary protein string is the full diagonal.
	const x = "HEAGAWGHEE"
	const diagonal = 8 + 5 + 4 + 6 + 4 + 11 + 6 + 8 + 5 + 5

	t.Run("linear", func(t *testing.T) {
		res, err := LocalAA(x, x, scoring.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, diagonal, res.Score)
		assert.Equal(t, x, res.Seq1)
		assert.Equal(t, x, res.Seq2)
		assert.Equal(t, x, res.UngappedSeq1)
	})

	t.Run("affine", func(t *testing.T) {
		res, err := LocalAAAffine(x, x, scoring.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, diagonal, res.Score)
		assert.Equal(t, x, res.Seq1)
		assert.Equal(t, x, res.Seq2)
		assert.Equal(t, x, res.UngappedSeq1)
		assert.Equal(t, x, res.UngappedSeq2)
	})
}

func TestLocalNAAffine(t *testing.T) {
	res, err := LocalNAAffine("GGGGACGTACGTGGGG", "CCCCACGTACGTCCCC", scoring.DefaultParams())
	require.NoError(t, err)

	assert.Equal(t, 32, res.Score)
	assert.Equal(t, "ACGTACGT", res.UngappedSeq1)
	assert.Equal(t, "ACGTACGT", res.UngappedSeq2)
}

func TestEmptyInputs(t *testing.T) {
	t.Run("global linear", func(t *testing.T) {
		res, err := GlobalNA("", "ACG", scoring.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, -24, res.Score)
		assert.Equal(t, "---", res.Seq1)
		assert.Equal(t, "ACG", res.Seq2)
	})

	t.Run("global affine", func(t *testing.T) {
		res, err := GlobalNAAffine("", "ACG", scoring.DefaultParams())
		require.NoError(t, err)
		assert.Equal(t, -12, res.Score)
		assert.Equal(t, "---", res.Seq1)
		assert.Equal(t, "ACG", res.Seq2)
	})

	t.Run("both empty", func(t *testing.T) {
		res, err := GlobalNA("", "", scoring.DefaultParams())
		require.NoError(t, err)
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Seq1)

		local, err := LocalNA("", "", scoring.DefaultParams())
		require.NoError(t, err)
		assert.Zero(t, local.Score)
		assert.Empty(t, local.Seq1)
	})
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"GATTACA", "GCATGCT"},
		{"ACGTACGT", "ACGT"},
		{"AAAATTTT", "TTTTAAAA"},
	}
	p := scoring.DefaultParams()
	for _, pair := range pairs {
		g1, err := GlobalNA(pair[0], pair[1], p)
		require.NoError(t, err)
		g2, err := GlobalNA(pair[1], pair[0], p)
		require.NoError(t, err)
		assert.Equal(t, g1.Score, g2.Score)

		l1, err := LocalNA(pair[0], pair[1], p)
		require.NoError(t, err)
		l2, err := LocalNA(pair[1], pair[0], p)
		require.NoError(t, err)
		assert.Equal(t, l1.Score, l2.Score)
	}
}

func TestSelfAlignmentDominates(t *testing.T) {
	a := "ACGTACGTAC"
	self, err := GlobalNA(a, a, scoring.DefaultParams())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		b := randomNA(rng, 1+rng.Intn(12))
		other, err := GlobalNA(a, b, scoring.DefaultParams())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, self.Score, other.Score)
	}
}

func randomNA(rng *rand.Rand, n int) string {
	const alphabet = "ACGT"
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}

func TestRandomizedInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	defaults := scoring.DefaultParams()
	freeEnds := scoring.DefaultParams()
	freeEnds.TerminalGap = scoring.Int(0)
	freeEnds.TerminalGapExtend = scoring.Int(0)

	for trial := 0; trial < 200; trial++ {
		a := randomNA(rng, rng.Intn(13))
		b := randomNA(rng, rng.Intn(13))

		for _, p := range []scoring.Params{defaults, freeEnds} {
			res, err := GlobalNA(a, b, p)
			require.NoError(t, err)
			checkShape(t, a, b, res, true)
			assert.Equal(t, res.Score, linearColumnScore(res.Seq1, res.Seq2, p, p, true),
				"global linear %q vs %q", a, b)

			aff, err := GlobalNAAffine(a, b, p)
			require.NoError(t, err)
			checkShape(t, a, b, aff, true)
			assert.Equal(t, aff.Score, affineColumnScore(aff.Seq1, aff.Seq2, p, p, true),
				"global affine %q vs %q", a, b)
		}

		loc, err := LocalNA(a, b, defaults)
		require.NoError(t, err)
		checkShape(t, a, b, &loc.Alignment, false)
		assert.GreaterOrEqual(t, loc.Score, 0)
		assert.Equal(t, loc.Score, linearColumnScore(loc.Seq1, loc.Seq2, defaults, defaults, false),
			"local linear %q vs %q", a, b)

		laff, err := LocalNAAffine(a, b, defaults)
		require.NoError(t, err)
		checkShape(t, a, b, &laff.Alignment, false)
		assert.GreaterOrEqual(t, laff.Score, 0)
		assert.Equal(t, laff.Score, affineColumnScore(laff.Seq1, laff.Seq2, defaults, defaults, false),
			"local affine %q vs %q", a, b)
	}
}

func TestCorruptTracebackPanics(t *testing.T) {
	trace := newDirMatrix(2, 2)
	trace[1][1] = Direction(9)
	assert.Panics(t, func() { tracebackGlobal("A", "A", trace) })
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "match", Match.String())
	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "terminate", Terminate.String())
}
