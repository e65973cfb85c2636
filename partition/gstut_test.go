package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjcranen/pgquotient/partition"
	"github.com/sjcranen/pgquotient/pgraph"
)

// Within one priority/player block, a vertex whose only move escapes the
// block (0) drags in every predecessor that has no alternative (1), while a
// disjoint in-block 2-cycle (2,3) that never reaches the escape is left
// behind: player-even's attractor captures a proper, non-empty subset, so
// the self-split succeeds.
func TestGStutSplitsProperAttractorSubset(t *testing.T) {
	g := pgraph.New(5)
	even := label(0, pgraph.Even)
	g.Vertex(0).Label = even
	g.Vertex(1).Label = even
	g.Vertex(2).Label = even
	g.Vertex(3).Label = even
	g.Vertex(4).Label = label(5, pgraph.Even)
	g.AddEdge(0, 4) // escapes the block
	g.AddEdge(1, 0) // only move is into the escaper
	g.AddEdge(2, 3)
	g.AddEdge(3, 2)
	g.AddEdge(4, 4)

	q, err := partition.Run(g, partition.GStutStrategy)
	require.NoError(t, err)
	// {0,1} split off from {2,3}, plus the external {4}: three blocks.
	assert.Equal(t, 3, q.Size())
}

// A cross-split block with exits into two distinct external blocks must be
// split using edges into the specific splitter block, not using the
// External count of edges into any external block: a0 has one edge into
// each of bB and bC, so every one of its edges is external, but only a1's
// edges are entirely into bB. The a-vertices are odd-owned, so even's
// attempt (tried first) attracts only vertices whose every edge lands in
// bB. Only {a1} should be attracted.
func TestGStutSplitCrossPicksCorrectExternalBlock(t *testing.T) {
	g := pgraph.New(5)
	g.Vertex(0).Label = label(1, pgraph.Odd)  // a0
	g.Vertex(1).Label = label(1, pgraph.Odd)  // a1
	g.Vertex(2).Label = label(1, pgraph.Odd)  // a2
	g.Vertex(3).Label = label(2, pgraph.Odd)  // b0
	g.Vertex(4).Label = label(3, pgraph.Even) // c0
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 3)
	g.AddEdge(2, 4)

	p := partition.NewPartitioner(g)
	bA := p.NewBlock()
	bB := p.NewBlock()
	bC := p.NewBlock()
	p.Assign(0, bA)
	p.Assign(1, bA)
	p.Assign(2, bA)
	p.Assign(3, bB)
	p.Assign(4, bC)

	partition.GStutStrategy.UpdateBlock(p, bA, nil)
	partition.GStutStrategy.UpdateBlock(p, bB, nil)
	partition.GStutStrategy.UpdateBlock(p, bC, nil)

	// Mimic the driver's markAndCollectAdjacent(bB): one Visit per edge
	// landing specifically in bB, not per edge into any external block.
	p.Visit(0)
	p.Visit(1)

	ok, err := partition.GStutStrategy.SplitCross(p, bA, bB)
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, p.Pos(1))
	assert.False(t, p.Pos(0))
	assert.False(t, p.Pos(2))
}

// Feeding a block whose div field already records divergence for both
// players into split_cross must trip the invariant guard rather than
// silently produce a wrong answer.
func TestGStutSplitCrossRejectsBothPlayersDivergent(t *testing.T) {
	g := pgraph.New(2)
	g.Vertex(0).Label = label(0, pgraph.Even)
	g.Vertex(1).Label = label(1, pgraph.Odd)

	p := partition.NewPartitioner(g)
	b1 := p.NewBlock()
	b2 := p.NewBlock()
	p.Assign(0, b1)
	p.Assign(1, b2)
	p.SetDiv(0, 3) // divOdd | divEven: both players marked divergent at once

	_, err := partition.GStutStrategy.SplitCross(p, b1, b2)
	require.ErrorIs(t, err, partition.ErrDivergentBothPlayers)
}
