package pgio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/sjcranen/pgquotient/pgraph"
)

// LoadPGSolver reads a parity game in the PGSolver text format: an optional
// "parity <max-index>;" header followed by one line per vertex,
// "<index> <priority> <player 0|1> <succ>[,<succ>...][ \"name\"];". The
// trailing quoted name, when present, is accepted and discarded.
func LoadPGSolver(r io.Reader) (*pgraph.Graph, error) {
	s := newTokenizer(r)
	g := pgraph.New(0)

	tok, err := s.next()
	if err == io.EOF {
		return g, nil
	}
	if err != nil {
		return nil, err
	}
	if tok == "parity" {
		n, err := s.uint()
		if err != nil {
			return nil, s.errorf("invalid header, could not parse vertex count: %v", err)
		}
		if err := s.expect(";"); err != nil {
			return nil, err
		}
		g.Resize(n + 1)
	} else {
		s.pushback(tok)
	}

	count := 0
	for {
		ok, err := parsePGSolverVertex(s, g)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("pgio: could not parse vertex %d: %w", count, err)
		}
		if !ok {
			break
		}
		count++
	}
	return g, nil
}

func parsePGSolverVertex(s *tokenizer, g *pgraph.Graph) (bool, error) {
	idxTok, err := s.next()
	if err == io.EOF {
		return false, io.EOF
	}
	if err != nil {
		return false, err
	}
	index, err := strconv.Atoi(idxTok)
	if err != nil {
		return false, s.errorf("could not parse vertex index %q", idxTok)
	}
	if index >= g.Size() {
		g.Resize(index + 1)
	}

	prio, err := s.uint()
	if err != nil {
		return false, s.errorf("could not parse vertex priority: %v", err)
	}

	playerTok, err := s.next()
	if err != nil || (playerTok != "0" && playerTok != "1") {
		return false, s.errorf("could not parse vertex player, expected 0 or 1")
	}
	player := pgraph.Even
	if playerTok == "1" {
		player = pgraph.Odd
	}
	g.Vertex(index).Label = pgraph.Label{Priority: uint32(prio), Player: player}

	for {
		succTok, err := s.next()
		if err != nil {
			return false, s.errorf("could not parse successor index: %v", err)
		}
		succ, err := strconv.Atoi(succTok)
		if err != nil {
			return false, s.errorf("could not parse successor index %q", succTok)
		}
		g.AddEdge(index, succ)

		delim, err := s.next()
		if err != nil {
			return false, s.errorf("unterminated vertex specification")
		}
		if delim != "," {
			if strings.HasPrefix(delim, "\"") {
				if delim, err = s.next(); err != nil {
					return false, s.errorf("unterminated vertex name")
				}
			}
			if delim != ";" {
				return false, s.errorf("invalid vertex specification, expected ';', got %q", delim)
			}
			return true, nil
		}
	}
}

// DumpPGSolver writes g in the PGSolver text format.
func DumpPGSolver(w io.Writer, g *pgraph.Graph) error {
	if g.Size() == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "parity %d;\n", g.Size()-1); err != nil {
		return err
	}
	for i := 0; i < g.Size(); i++ {
		v := g.Vertex(i)
		player := '0'
		if v.Label.Player == pgraph.Odd {
			player = '1'
		}
		if _, err := fmt.Fprintf(bw, "%d %d %c", i, v.Label.Priority, player); err != nil {
			return err
		}
		if len(v.Out) == 0 {
			if _, err := fmt.Fprint(bw, " \"no outgoing edges!\""); err != nil {
				return err
			}
		} else {
			for j, succ := range v.Out {
				sep := ","
				if j == 0 {
					sep = " "
				}
				if _, err := fmt.Fprintf(bw, "%s%d", sep, succ); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprint(bw, ";\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// tokenizer splits PGSolver/aut input into whitespace-delimited words, with
// ';', ',' and quoted strings as their own tokens. It tracks line/column for
// error messages and supports pushing a single token back.
type tokenizer struct {
	r        *bufio.Reader
	line     int
	col      int
	pending  string
	hasToken bool
}

func newTokenizer(r io.Reader) *tokenizer {
	return &tokenizer{r: bufio.NewReader(r), line: 1}
}

func (t *tokenizer) pushback(tok string) {
	t.pending = tok
	t.hasToken = true
}

func (t *tokenizer) next() (string, error) {
	if t.hasToken {
		t.hasToken = false
		return t.pending, nil
	}
	for {
		r, _, err := t.r.ReadRune()
		if err != nil {
			return "", err
		}
		if r == '\n' {
			t.line++
			t.col = 0
			continue
		}
		t.col++
		if unicode.IsSpace(r) {
			continue
		}
		if r == ';' || r == ',' || r == '(' || r == ')' {
			return string(r), nil
		}
		if r == '"' {
			var sb strings.Builder
			sb.WriteByte('"')
			for {
				r2, _, err := t.r.ReadRune()
				if err != nil {
					return "", err
				}
				t.col++
				if r2 == '\n' {
					t.line++
					t.col = 0
				}
				sb.WriteRune(r2)
				if r2 == '"' {
					break
				}
			}
			return sb.String(), nil
		}
		var sb strings.Builder
		sb.WriteRune(r)
		for {
			r2, _, err := t.r.ReadRune()
			if err == io.EOF {
				break
			}
			if err != nil {
				return "", err
			}
			if unicode.IsSpace(r2) || r2 == ';' || r2 == ',' || r2 == '"' || r2 == '(' || r2 == ')' {
				_ = t.r.UnreadRune()
				break
			}
			t.col++
			sb.WriteRune(r2)
		}
		return sb.String(), nil
	}
}

func (t *tokenizer) uint() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return 0, t.errorf("expected non-negative integer, got %q", tok)
	}
	return n, nil
}

func (t *tokenizer) expect(want string) error {
	tok, err := t.next()
	if err != nil {
		return t.errorf("expected %q: %v", want, err)
	}
	if tok != want {
		return t.errorf("expected %q, got %q", want, tok)
	}
	return nil
}

func (t *tokenizer) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at line %d, column %d: %s", ErrParse, t.line, t.col, fmt.Sprintf(format, args...))
}
