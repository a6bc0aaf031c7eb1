package scoring

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// notset marks an alphabet slot with no matrix entry.
const notset int8 = -1

// Matrix is a substitution matrix: an ordered alphabet, a symbol-to-index
// mapping and a square table of integer scores.
type Matrix struct {
	name    string
	symbols []byte
	index   [128]int8
	scores  [][]int
}

// UnknownSymbolError reports a scoring lookup on a symbol absent from the
// matrix. Unknown symbols are never silently treated as mismatches.
type UnknownSymbolError struct {
	Symbol byte
	Matrix string
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("symbol %q not present in scoring matrix %s", e.Symbol, e.Matrix)
}

// ParseError reports a malformed substitution-matrix file.
type ParseError struct {
	Matrix string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("scoring matrix %s, line %d: %s", e.Matrix, e.Line, e.Msg)
}

// Parse reads a substitution matrix from its textual form: the first
// content line lists the alphabet symbols in order, each following line
// is one row of integer scores with one entry per symbol. Blank lines
// and lines starting with '#' are skipped.
func Parse(name string, r io.Reader) (*Matrix, error) {
	m := &Matrix{name: name}
	for i := range m.index {
		m.index[i] = notset
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if m.symbols == nil {
			if err := m.readAlphabet(fields, lineNo); err != nil {
				return nil, err
			}
			continue
		}

		if len(m.scores) == len(m.symbols) {
			return nil, &ParseError{Matrix: name, Line: lineNo,
				Msg: fmt.Sprintf("expected %d rows, found more", len(m.symbols))}
		}
		if len(fields) != len(m.symbols) {
			return nil, &ParseError{Matrix: name, Line: lineNo,
				Msg: fmt.Sprintf("expected %d entries, got %d", len(m.symbols), len(fields))}
		}

		row := make([]int, len(fields))
		for j, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Matrix: name, Line: lineNo,
					Msg: fmt.Sprintf("non-integer entry %q", f)}
			}
			row[j] = v
		}
		m.scores = append(m.scores, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading matrix %s: %w", name, err)
	}

	if m.symbols == nil {
		return nil, &ParseError{Matrix: name, Line: lineNo, Msg: "no alphabet line"}
	}
	if len(m.scores) != len(m.symbols) {
		return nil, &ParseError{Matrix: name, Line: lineNo,
			Msg: fmt.Sprintf("expected %d rows, got %d", len(m.symbols), len(m.scores))}
	}
	return m, nil
}

func (m *Matrix) readAlphabet(fields []string, lineNo int) error {
	if len(fields) == 0 {
		return &ParseError{Matrix: m.name, Line: lineNo, Msg: "empty alphabet line"}
	}
	for _, f := range fields {
		if len(f) != 1 || f[0] >= 128 {
			return &ParseError{Matrix: m.name, Line: lineNo,
				Msg: fmt.Sprintf("alphabet symbol %q is not a single ASCII character", f)}
		}
		c := f[0]
		if m.index[c] != notset {
			return &ParseError{Matrix: m.name, Line: lineNo,
				Msg: fmt.Sprintf("duplicate symbol %q", c)}
		}
		m.index[c] = int8(len(m.symbols))
		m.symbols = append(m.symbols, c)
	}
	return nil
}

// MustParse parses a matrix from source text and panics on error. It is
// intended for the bundled matrices only.
func MustParse(name, text string) *Matrix {
	m, err := Parse(name, strings.NewReader(text))
	if err != nil {
		panic(err)
	}
	return m
}

// Name returns the matrix name used in error messages.
func (m *Matrix) Name() string { return m.name }

// Symbols returns the matrix alphabet in order.
func (m *Matrix) Symbols() []byte {
	out := make([]byte, len(m.symbols))
	copy(out, m.symbols)
	return out
}

// Contains reports whether the matrix has an entry for the symbol.
func (m *Matrix) Contains(x byte) bool {
	return x < 128 && m.index[x] != notset
}

// Validate checks every symbol of seq against the matrix alphabet,
// returning an UnknownSymbolError for the first offender.
func (m *Matrix) Validate(seq string) error {
	for i := 0; i < len(seq); i++ {
		if !m.Contains(seq[i]) {
			return &UnknownSymbolError{Symbol: seq[i], Matrix: m.name}
		}
	}
	return nil
}

// Score returns the substitution score for a pair of symbols. Both must
// be present in the matrix; callers validate sequences up front, so a
// miss here is a programmer error.
func (m *Matrix) Score(x, y byte) int {
	return m.scores[m.lookup(x)][m.lookup(y)]
}

func (m *Matrix) lookup(x byte) int8 {
	if x < 128 {
		if i := m.index[x]; i != notset {
			return i
		}
	}
	panic(fmt.Sprintf("scoring: symbol %q not present in matrix %s", x, m.name))
}

// GapScorer extends a substitution matrix into a full Scorer by pricing
// gap-involved pairs at a flat cost.
type GapScorer struct {
	Matrix *Matrix
	Gap    int
}

func (g GapScorer) Score(x, y byte) int {
	if x == GapSymbol || y == GapSymbol {
		return g.Gap
	}
	return g.Matrix.Score(x, y)
}

// String prints the alphabet and score table, mainly for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString("   ")
	for _, c := range m.symbols {
		fmt.Fprintf(&b, "%3c", c)
	}
	b.WriteByte('\n')
	for i, c := range m.symbols {
		fmt.Fprintf(&b, "%2c ", c)
		for j := range m.symbols {
			fmt.Fprintf(&b, "%3d", m.scores[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
