package scc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjcranen/pgquotient/pgraph"
	"github.com/sjcranen/pgquotient/scc"
)

// S1: a 3-cycle of same-label vertices collapses to a single divergent
// vertex with a self-loop.
func TestCollapseThreeCycleBecomesDivergentSink(t *testing.T) {
	g := pgraph.New(3)
	lbl := pgraph.Label{Priority: 1, Player: pgraph.Even}
	for i := 0; i < 3; i++ {
		g.Vertex(i).Label = lbl
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	scc.Collapse(g)

	require.Equal(t, 1, g.Size())
	v := g.Vertex(0)
	assert.Equal(t, uint32(1), v.Label.Priority)
	assert.Equal(t, pgraph.Even, v.Label.Player)
	assert.True(t, v.Label.Div)
	assert.Equal(t, []int{0}, v.Out)
	assert.Equal(t, []int{0}, v.In)
}

// Vertices with differing labels never collapse, even within a cycle.
func TestCollapseDoesNotMergeDifferingLabels(t *testing.T) {
	g := pgraph.New(3)
	g.Vertex(0).Label = pgraph.Label{Priority: 1, Player: pgraph.Even}
	g.Vertex(1).Label = pgraph.Label{Priority: 2, Player: pgraph.Odd}
	g.Vertex(2).Label = pgraph.Label{Priority: 1, Player: pgraph.Even}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	scc.Collapse(g)

	require.Equal(t, 3, g.Size())
	for i := 0; i < 3; i++ {
		assert.False(t, g.Vertex(i).Label.Div)
	}
}

// Vertex 0 keeps its identity (stays at index 0) even when its component is
// discovered after other components.
func TestCollapsePreservesVertexZero(t *testing.T) {
	g := pgraph.New(5)
	lblA := pgraph.Label{Priority: 1, Player: pgraph.Even}
	lblB := pgraph.Label{Priority: 2, Player: pgraph.Odd}
	g.Vertex(0).Label = lblA
	g.Vertex(1).Label = lblA
	g.Vertex(2).Label = lblB
	g.Vertex(3).Label = lblB
	g.Vertex(4).Label = lblA
	// {0,1} cycle, {2,3} cycle, 4 standalone, with edges into both cycles.
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	g.AddEdge(4, 2)
	g.AddEdge(1, 2)

	scc.Collapse(g)

	require.Equal(t, 3, g.Size())
	assert.Equal(t, pgraph.Label{Priority: lblA.Priority, Player: lblA.Player, Div: true}, g.Vertex(0).Label)
	assert.True(t, g.Vertex(0).Label.Div)
}

// Components reports component membership without mutating the graph.
func TestComponentsReportsMembershipWithoutMutating(t *testing.T) {
	g := pgraph.New(4)
	lbl := pgraph.Label{Priority: 0, Player: pgraph.Even}
	for i := 0; i < 4; i++ {
		g.Vertex(i).Label = lbl
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 0)
	g.AddEdge(2, 3)

	comps := scc.Components(g)

	require.Equal(t, 4, g.Size())
	var sizes []int
	for _, c := range comps {
		sizes = append(sizes, len(c))
	}
	assert.ElementsMatch(t, []int{2, 1, 1}, sizes)
	for _, c := range comps {
		if len(c) == 2 {
			assert.Equal(t, []int{0, 1}, c)
		}
	}
}

// Collapsing an already-collapsed graph is a no-op.
func TestCollapseIsIdempotent(t *testing.T) {
	g := pgraph.New(3)
	lbl := pgraph.Label{Priority: 1, Player: pgraph.Even}
	for i := 0; i < 3; i++ {
		g.Vertex(i).Label = lbl
	}
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)
	scc.Collapse(g)

	before := append([]pgraph.Vertex(nil), g.Vertices()...)
	scc.Collapse(g)
	assert.Equal(t, before, g.Vertices())
}
