package partition_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sjcranen/pgquotient/partition"
	"github.com/sjcranen/pgquotient/pgraph"
)

// Same-priority vertices of different players split apart once one of them
// can reach a strictly larger number of distinct successor blocks than the
// other: even-owned vertex 0 reaches two distinct priority classes, while
// odd-owned vertex 1 reaches only one.
func TestFMIBSplitsOnExternalFanOut(t *testing.T) {
	g := pgraph.New(4)
	g.Vertex(0).Label = label(0, pgraph.Even)
	g.Vertex(1).Label = label(0, pgraph.Odd)
	g.Vertex(2).Label = label(1, pgraph.Even)
	g.Vertex(3).Label = label(2, pgraph.Odd)
	g.AddEdge(0, 2)
	g.AddEdge(0, 3)
	g.AddEdge(1, 2)

	q, err := partition.Run(g, partition.FMIBStrategy)
	require.NoError(t, err)
	require.Equal(t, 4, q.Size())
}

// Vertices sharing a priority but with identical forced-move behaviour stay
// merged.
func TestFMIBKeepsEquivalentVerticesMerged(t *testing.T) {
	g := pgraph.New(3)
	g.Vertex(0).Label = label(0, pgraph.Even)
	g.Vertex(1).Label = label(0, pgraph.Even)
	g.Vertex(2).Label = label(1, pgraph.Odd)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	q, err := partition.Run(g, partition.FMIBStrategy)
	require.NoError(t, err)
	require.Equal(t, 2, q.Size())
}
