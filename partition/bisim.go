package partition

import "github.com/sjcranen/pgquotient/pgraph"

// bisimStrategy computes strong bisimulation: two vertices are equivalent
// iff they have the same label and, recursively, equivalent successors.
type bisimStrategy struct{}

// BisimStrategy is the Strategy for strong bisimulation.
var BisimStrategy Strategy = bisimStrategy{}

func (bisimStrategy) CreateInitialPartition(p *Partitioner) {
	blocks := make(map[pgraph.Label]*Block)
	for i := 0; i < p.N(); i++ {
		lbl := p.Label(i)
		b, ok := blocks[lbl]
		if !ok {
			b = p.NewBlock()
			blocks[lbl] = b
		}
		p.Assign(i, b)
	}
	for _, b := range p.blocks {
		bisimUpdate(p, b, nil)
	}
}

// bisimUpdate recomputes b.Incoming from every member's in-edges,
// unfiltered: same-block sources are kept, since split_self relies on them
// to detect in-block asymmetries.
func bisimUpdate(p *Partitioner, b, hasEdgeFrom *Block) bool {
	result := false
	b.Incoming = b.Incoming[:0]
	for _, v := range b.Vertices {
		for _, src := range p.In(v) {
			b.Incoming = append(b.Incoming, src)
			if p.BlockOf(src) == hasEdgeFrom {
				result = true
			}
		}
	}
	return result
}

func (bisimStrategy) UpdateBlock(p *Partitioner, b, hasEdgeFrom *Block) bool {
	return bisimUpdate(p, b, hasEdgeFrom)
}

func (bisimStrategy) SplitSelf(p *Partitioner, b *Block) (bool, error) {
	for _, src := range b.Incoming {
		p.Visit(src)
	}
	result := bisimSplitCore(p, b)
	for _, src := range b.Incoming {
		p.ClearVisit(src)
	}
	return result, nil
}

func (bisimStrategy) SplitCross(p *Partitioner, b1, b2 *Block) (bool, error) {
	return bisimSplitCore(p, b1), nil
}

// bisimSplitCore marks pos=true on every visited member of b1 and reports
// whether that makes b1 a genuine (non-trivial) split: some but not all
// members visited.
func bisimSplitCore(p *Partitioner, b1 *Block) bool {
	allVisited, noneVisited := true, true
	for _, v := range b1.Vertices {
		if p.Visited(v) {
			noneVisited = false
			p.SetPos(v, true)
		} else {
			allVisited = false
		}
	}
	if allVisited {
		for _, v := range b1.Vertices {
			p.SetPos(v, false)
		}
	}
	return !(allVisited || noneVisited)
}

func (bisimStrategy) Quotient(p *Partitioner) *pgraph.Graph {
	return buildQuotient(p,
		func(b *Block) pgraph.Label { return p.Label(b.Vertices[0]) },
		func(b *Block) bool { return false },
	)
}
