package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjcranen/pgquotient/partition"
	"github.com/sjcranen/pgquotient/pgraph"
)

func sampleGraph() *pgraph.Graph {
	g := pgraph.New(6)
	g.Vertex(0).Label = label(1, pgraph.Even)
	g.Vertex(1).Label = label(1, pgraph.Even)
	g.Vertex(2).Label = label(2, pgraph.Odd)
	g.Vertex(3).Label = label(2, pgraph.Odd)
	g.Vertex(4).Label = label(3, pgraph.Even)
	g.Vertex(5).Label = label(1, pgraph.Even)
	g.AddEdge(0, 2)
	g.AddEdge(1, 3)
	g.AddEdge(2, 0)
	g.AddEdge(3, 1)
	g.AddEdge(5, 4)
	g.AddEdge(4, 4)
	return g
}

// Partition disjointness: after the initial partition is built, every vertex
// belongs to exactly one block.
func TestPartitionDisjointness(t *testing.T) {
	for _, strategy := range []partition.Strategy{
		partition.BisimStrategy, partition.FMIBStrategy, partition.GStutStrategy,
	} {
		g := sampleGraph()
		p := partition.NewPartitioner(g)
		strategy.CreateInitialPartition(p)

		seen := make(map[int]*partition.Block)
		for _, b := range p.Blocks() {
			for _, v := range b.Vertices {
				if other, ok := seen[v]; ok {
					t.Fatalf("vertex %d appears in two blocks: %p and %p", v, other, b)
				}
				seen[v] = b
			}
		}
		for i := 0; i < g.Size(); i++ {
			assert.Contains(t, seen, i)
		}
	}
}

// Coarsest partition: once Run terminates, re-running the same strategy's
// quotient on its own output is a no-op (the quotient is already maximally
// collapsed, so quotienting it again changes nothing beyond relabelling).
func TestCoarsestPartitionIsFixpoint(t *testing.T) {
	g := sampleGraph()
	q1, err := partition.Run(g, partition.BisimStrategy)
	require.NoError(t, err)

	q2, err := partition.Run(q1, partition.BisimStrategy)
	require.NoError(t, err)

	assert.Equal(t, q1.Size(), q2.Size())
	for i := 0; i < q1.Size(); i++ {
		assert.Equal(t, q1.Label(i), q2.Label(i))
		assert.Equal(t, q1.Vertex(i).Out, q2.Vertex(i).Out)
	}
}

// Quotient determinism: two independent runs over the same input produce
// byte-for-byte identical output.
func TestQuotientIsDeterministic(t *testing.T) {
	g1 := sampleGraph()
	g2 := sampleGraph()

	q1, err := partition.Run(g1, partition.FMIBStrategy)
	require.NoError(t, err)
	q2, err := partition.Run(g2, partition.FMIBStrategy)
	require.NoError(t, err)

	require.Equal(t, q1.Size(), q2.Size())
	for i := 0; i < q1.Size(); i++ {
		assert.Equal(t, q1.Label(i), q2.Label(i))
		assert.Equal(t, q1.Vertex(i).Out, q2.Vertex(i).Out)
		assert.Equal(t, q1.Vertex(i).In, q2.Vertex(i).In)
	}
}
