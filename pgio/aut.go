package pgio

import (
	"fmt"
	"io"

	"github.com/sjcranen/pgquotient/pgraph"
)

// LoadAut reads an Aldebaran labelled-transition-system: a header
// "des (initial, ntrans, nstates)" followed by exactly ntrans lines of
// "(from,\"label\",to)". Transition labels are opaque and discarded: this
// format carries no priority or player, so every vertex gets the zero
// Label, and scc.Collapse over the result degenerates to a plain SCC
// computation since every vertex then compares equal.
func LoadAut(r io.Reader) (*pgraph.Graph, error) {
	s := newTokenizer(r)

	if err := s.expect("des"); err != nil {
		return nil, s.errorf("invalid header, expected 'des': %v", err)
	}
	if err := s.expect("("); err != nil {
		return nil, err
	}
	if _, err := s.uint(); err != nil {
		return nil, s.errorf("could not parse initial state number: %v", err)
	}
	if err := s.expect(","); err != nil {
		return nil, err
	}
	ntrans, err := s.uint()
	if err != nil {
		return nil, s.errorf("could not parse transition count: %v", err)
	}
	if err := s.expect(","); err != nil {
		return nil, err
	}
	nstates, err := s.uint()
	if err != nil {
		return nil, s.errorf("could not parse state count: %v", err)
	}
	if err := s.expect(")"); err != nil {
		return nil, err
	}

	g := pgraph.New(nstates)
	for i := 0; i < ntrans; i++ {
		if err := parseAutTransition(s, g); err != nil {
			return nil, fmt.Errorf("pgio: could not parse transition %d: %w", i, err)
		}
	}
	return g, nil
}

func parseAutTransition(s *tokenizer, g *pgraph.Graph) error {
	if err := s.expect("("); err != nil {
		return err
	}
	from, err := s.uint()
	if err != nil {
		return s.errorf("could not parse source state index: %v", err)
	}
	if err := s.expect(","); err != nil {
		return err
	}
	label, err := s.next()
	if err != nil {
		return s.errorf("could not parse transition label: %v", err)
	}
	if len(label) < 2 || label[0] != '"' || label[len(label)-1] != '"' {
		return s.errorf("transition label must be quoted, got %q", label)
	}
	if err := s.expect(","); err != nil {
		return err
	}
	to, err := s.uint()
	if err != nil {
		return s.errorf("could not parse target state index: %v", err)
	}
	if err := s.expect(")"); err != nil {
		return err
	}
	g.AddEdge(from, to)
	return nil
}

// DumpAut always fails: Aldebaran has no canonical serialisation this
// module needs to produce, so there is nothing faithful to write.
func DumpAut(w io.Writer, g *pgraph.Graph) error {
	return ErrDumpUnsupported
}
