package partition

import "github.com/sjcranen/pgquotient/pgraph"

// fmibStrategy computes forced-move identifying bisimulation: vertices are
// grouped by priority alone, then split apart whenever one player's forced
// moves can reach strictly more distinct blocks than another's.
type fmibStrategy struct{}

// FMIBStrategy is the Strategy for forced-move identifying bisimulation.
var FMIBStrategy Strategy = fmibStrategy{}

func (fmibStrategy) CreateInitialPartition(p *Partitioner) {
	blocks := make(map[uint32]*Block)
	for i := 0; i < p.N(); i++ {
		prio := p.Label(i).Priority
		b, ok := blocks[prio]
		if !ok {
			b = p.NewBlock()
			blocks[prio] = b
		}
		p.Assign(i, b)
	}
	for _, b := range p.blocks {
		fmibUpdate(p, b, nil)
	}
}

func fmibUpdate(p *Partitioner, b, hasEdgeFrom *Block) bool {
	result := false
	b.Incoming = b.Incoming[:0]
	b.Size = len(b.Vertices)
	b.MixedPlayers = false
	if len(b.Vertices) == 0 {
		return false
	}
	reprPlayer := p.Label(b.Vertices[0]).Player
	reach := make(map[*Block]struct{})
	for _, v := range b.Vertices {
		if p.Label(v).Player != reprPlayer {
			b.MixedPlayers = true
		}
		for k := range reach {
			delete(reach, k)
		}
		for _, dst := range p.Out(v) {
			reach[p.BlockOf(dst)] = struct{}{}
		}
		p.SetExternal(v, uint32(len(reach)))

		for _, src := range p.In(v) {
			b.Incoming = append(b.Incoming, src)
			if p.BlockOf(src) == hasEdgeFrom {
				result = true
			}
		}
	}
	return result
}

func (fmibStrategy) UpdateBlock(p *Partitioner, b, hasEdgeFrom *Block) bool {
	return fmibUpdate(p, b, hasEdgeFrom)
}

func (fmibStrategy) SplitSelf(p *Partitioner, b *Block) (bool, error) {
	if ok := fmibSplitPlayer(p, b, pgraph.Even); ok {
		return true, nil
	}
	if ok := fmibSplitPlayer(p, b, pgraph.Odd); ok {
		return true, nil
	}
	for _, src := range b.Incoming {
		p.Visit(src)
	}
	result := bisimSplitCore(p, b)
	for _, src := range b.Incoming {
		p.ClearVisit(src)
	}
	return result, nil
}

// fmibSplitPlayer marks pos=true on every player-p member of b whose
// external fan-out exceeds 1, when b actually mixes players.
func fmibSplitPlayer(p *Partitioner, b *Block, player pgraph.Player) bool {
	if !b.MixedPlayers {
		return false
	}
	found := false
	for _, v := range b.Vertices {
		if p.Label(v).Player == player && p.External(v) > 1 {
			p.SetPos(v, true)
			found = true
		}
	}
	return found
}

func (fmibStrategy) SplitCross(p *Partitioner, b1, b2 *Block) (bool, error) {
	return bisimSplitCore(p, b1), nil
}

func (fmibStrategy) Quotient(p *Partitioner) *pgraph.Graph {
	return buildQuotient(p,
		func(b *Block) pgraph.Label { return p.Label(b.Vertices[0]) },
		func(b *Block) bool { return false },
	)
}
