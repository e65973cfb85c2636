package pgio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sjcranen/pgquotient/pgraph"
)

// DumpDot writes g as a GraphViz digraph: vertex Ni is a diamond labelled
// with its priority when owned by Even, a box when owned by Odd, and every
// edge is rendered Ni -> Nj.
func DumpDot(w io.Writer, g *pgraph.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "digraph G {"); err != nil {
		return err
	}
	for i := 0; i < g.Size(); i++ {
		v := g.Vertex(i)
		shape := "diamond"
		if v.Label.Player == pgraph.Odd {
			shape = "box"
		}
		if _, err := fmt.Fprintf(bw, "N%d [shape=%s, label=\"%d\"];\n", i, shape, v.Label.Priority); err != nil {
			return err
		}
		for _, succ := range v.Out {
			if _, err := fmt.Fprintf(bw, "N%d -> N%d\n", i, succ); err != nil {
				return err
			}
		}
	}
	if _, err := fmt.Fprintln(bw, "}"); err != nil {
		return err
	}
	return bw.Flush()
}
