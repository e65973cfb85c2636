package partition

import "github.com/sjcranen/pgquotient/pgraph"

// buildQuotient emits the coarsest stable partition held by p as a new
// graph, shared by all four strategies. reprLabel picks the label to copy
// onto a block's output vertex; selfLoop reports whether that vertex should
// gain a self-loop (divergence).
func buildQuotient(p *Partitioner, reprLabel func(b *Block) pgraph.Label, selfLoop func(b *Block) bool) *pgraph.Graph {
	nb := len(p.blocks)
	out := pgraph.New(nb)
	if nb == 0 {
		return out
	}

	// Swap the block containing vertex 0 into output position 0. Blocks
	// are addressed by p.blocks (creation order); only the Index field
	// (the output vertex number) moves.
	zero := p.BlockOf(0)
	first := p.blocks[0]
	zero.Index, first.Index = first.Index, zero.Index

	visited := make([]int, nb)
	for round, b := range p.blocks {
		gen := round + 1
		dst := b.Index
		out.Vertex(dst).Label = reprLabel(b)
		if selfLoop(b) {
			out.AddEdge(dst, dst)
		}
		for _, src := range b.Incoming {
			sb := p.BlockOf(src).Index
			if visited[sb] == gen {
				continue
			}
			visited[sb] = gen
			out.AddEdge(sb, dst)
		}
	}
	return out
}
