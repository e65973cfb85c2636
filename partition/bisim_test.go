package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjcranen/pgquotient/partition"
	"github.com/sjcranen/pgquotient/pgraph"
)

func label(prio uint32, player pgraph.Player) pgraph.Label {
	return pgraph.Label{Priority: prio, Player: player}
}

// S2: two mutually-bisimilar pairs quotient down to a two-vertex cycle.
func TestBisimQuotientTwoPairs(t *testing.T) {
	g := pgraph.New(4)
	g.Vertex(0).Label = label(1, pgraph.Even)
	g.Vertex(1).Label = label(1, pgraph.Even)
	g.Vertex(2).Label = label(2, pgraph.Odd)
	g.Vertex(3).Label = label(2, pgraph.Odd)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 0)
	g.AddEdge(3, 1)

	q, err := partition.Run(g, partition.BisimStrategy)
	require.NoError(t, err)
	require.Equal(t, 2, q.Size())

	assert.Equal(t, label(1, pgraph.Even), q.Label(0))
	assert.Equal(t, label(2, pgraph.Odd), q.Label(1))
	assert.ElementsMatch(t, []int{1}, q.Vertex(0).Out)
	assert.ElementsMatch(t, []int{0}, q.Vertex(1).Out)
}

// A vertex with a distinguishing edge never merges with its sibling.
func TestBisimDistinguishesAsymmetricSiblings(t *testing.T) {
	g := pgraph.New(3)
	g.Vertex(0).Label = label(0, pgraph.Even)
	g.Vertex(1).Label = label(0, pgraph.Even)
	g.Vertex(2).Label = label(1, pgraph.Odd)
	g.AddEdge(0, 2)
	// vertex 1 has no outgoing edge at all, unlike vertex 0.

	q, err := partition.Run(g, partition.BisimStrategy)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Size())
}

// Vertex 0 always lands at quotient index 0, regardless of block discovery
// order.
func TestBisimQuotientPreservesVertexZero(t *testing.T) {
	g := pgraph.New(4)
	g.Vertex(0).Label = label(2, pgraph.Odd)
	g.Vertex(1).Label = label(2, pgraph.Odd)
	g.Vertex(2).Label = label(1, pgraph.Even)
	g.Vertex(3).Label = label(1, pgraph.Even)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 0)
	g.AddEdge(3, 1)

	q, err := partition.Run(g, partition.BisimStrategy)
	require.NoError(t, err)
	require.Equal(t, 2, q.Size())
	assert.Equal(t, label(2, pgraph.Odd), q.Label(0))
}
