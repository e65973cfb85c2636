package partition

import "github.com/sjcranen/pgquotient/pgraph"

// gstutStrategy computes governed stuttering equivalence: the most refined
// equivalence this module supports, tracking per-player divergence natively
// through a 2-bit div field rather than a sink vertex.
type gstutStrategy struct{}

// GStutStrategy is the Strategy for governed stuttering equivalence.
var GStutStrategy Strategy = gstutStrategy{}

func (gstutStrategy) CreateInitialPartition(p *Partitioner) {
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
		gstutUpdate(p, b, nil)
	}
}

// gstutUpdate recomputes b.Incoming and b.Exit, both filtered to cross-block
// edges, and incrementally corrects External on the source of every edge
// from hasEdgeFrom into b, which newly crosses the b/hasEdgeFrom boundary. On the very first call for
// a block (hasEdgeFrom==nil, during initial partition construction) it also
// seeds External from scratch.
func gstutUpdate(p *Partitioner, b, hasEdgeFrom *Block) bool {
	result := false
	b.Incoming = b.Incoming[:0]
	b.Exit = b.Exit[:0]
	b.Size = len(b.Vertices)

	if hasEdgeFrom == nil {
		for _, v := range b.Vertices {
			for _, dst := range p.Out(v) {
				if p.BlockOf(dst) != b {
					p.IncExternal(v)
				}
			}
		}
	}

	for _, v := range b.Vertices {
		for _, src := range p.In(v) {
			if p.BlockOf(src) == b {
				continue
			}
			b.Incoming = append(b.Incoming, src)
			if p.BlockOf(src) == hasEdgeFrom {
				result = true
				p.IncExternal(src)
			}
		}
		for _, dst := range p.Out(v) {
			if p.BlockOf(dst) != b {
				b.Exit = append(b.Exit, v)
				break
			}
		}
	}
	return result
}

func (gstutStrategy) UpdateBlock(p *Partitioner, b, hasEdgeFrom *Block) bool {
	return gstutUpdate(p, b, hasEdgeFrom)
}

// attractor computes, within b, the set of vertices that player p can force
// play into todo, marking pos=true on each and clearing the opponent's
// divergence bit as it goes. It leaves pos set on the result and clears
// visitCounter on every member of b before returning.
func attractor(p *Partitioner, b *Block, player pgraph.Player, todo []int) int {
	opponent := divOdd
	if player == pgraph.Even {
		opponent = divOdd
	} else {
		opponent = divEven
	}

	for _, v := range todo {
		p.SetPos(v, true)
	}
	result := 0
	for len(todo) > 0 {
		v := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		p.SetDiv(v, p.Div(v)&^opponent)
		result++
		for _, w := range p.In(v) {
			if p.BlockOf(w) != b || p.Pos(w) {
				continue
			}
			p.Visit(w)
			allExternal := p.VisitCounter(w) == uint32(len(p.Out(w)))
			ownsAndVisited := p.Label(w).Player == player && p.Visited(w)
			if allExternal || ownsAndVisited {
				p.SetPos(w, true)
				todo = append(todo, w)
			}
		}
	}
	for _, v := range b.Vertices {
		p.SetVisitCounter(v, 0)
	}
	return result
}

// split attempts to find, within b, the attractor set of player p's forced
// moves. On success pos remains set on the (strictly smaller, non-empty)
// attracted side and split returns true; on failure pos is cleared on b.
func split(p *Partitioner, b *Block, player pgraph.Player) bool {
	for _, v := range b.Vertices {
		p.SetVisitCounter(v, p.External(v))
	}
	var todo []int
	for _, v := range b.Vertices {
		allExternal := p.VisitCounter(v) == uint32(len(p.Out(v)))
		ownsAndVisited := p.Label(v).Player == player && p.Visited(v)
		if allExternal || ownsAndVisited {
			todo = append(todo, v)
		}
	}
	n := attractor(p, b, player, todo)
	if n == 0 || n == b.Size {
		for _, v := range b.Vertices {
			p.SetPos(v, false)
		}
		return false
	}
	return true
}

// splitPlayers tries player even first, then odd, against the live
// VisitCounter/Visited state the driver's markAndCollectAdjacent already
// set up for this specific b2 before SplitCross was invoked — unlike
// split, it never reseeds from External, since External counts edges into
// any external block, not edges into this particular b2. Visit counters are
// restored from a snapshot between attempts, since attractor zeroes them.
func splitPlayers(p *Partitioner, b1 *Block) bool {
	old := make([]uint32, len(b1.Vertices))
	for i, v := range b1.Vertices {
		old[i] = p.VisitCounter(v)
	}

	if attractPlayer(p, b1, pgraph.Even) {
		return true
	}

	for i, v := range b1.Vertices {
		p.SetVisitCounter(v, old[i])
		p.SetPos(v, false)
	}

	if attractPlayer(p, b1, pgraph.Odd) {
		return true
	}

	for _, v := range b1.Vertices {
		p.SetVisitCounter(v, 0)
		p.SetPos(v, false)
	}
	return false
}

// attractPlayer builds todo from the live VisitCounter/Visited state (all
// of v's out-edges reaching this b2, or player owns v and has visited it)
// and reports whether player's attractor captures a proper, non-empty
// subset of b1.
func attractPlayer(p *Partitioner, b1 *Block, player pgraph.Player) bool {
	var todo []int
	for _, v := range b1.Vertices {
		allIntoB2 := p.VisitCounter(v) == uint32(len(p.Out(v)))
		ownsAndVisited := p.Label(v).Player == player && p.Visited(v)
		if allIntoB2 || ownsAndVisited {
			todo = append(todo, v)
		}
	}
	n := attractor(p, b1, player, todo)
	return n != 0 && n != b1.Size
}

func (gstutStrategy) SplitSelf(p *Partitioner, b *Block) (bool, error) {
	for _, v := range b.Vertices {
		p.SetDiv(v, divOdd|divEven)
	}
	found := split(p, b, pgraph.Even)
	if !found {
		found = split(p, b, pgraph.Odd)
	}
	for _, v := range b.Vertices {
		p.SetVisitCounter(v, 0)
	}
	return found, nil
}

func (gstutStrategy) SplitCross(p *Partitioner, b1, b2 *Block) (bool, error) {
	// b1's div is uniform across every member as long as b1 has never been
	// successfully split: a failed self-split either touches nobody (div
	// stays at its prior value throughout) or touches everybody (the
	// opponent bit is cleared on the whole block). So checking the first
	// member stands in for the whole block.
	switch p.Div(b1.Vertices[0]) {
	case divOdd | divEven:
		return false, ErrDivergentBothPlayers
	case 0:
		bottomError, evenRules, oddRules := false, false, false
		for _, v := range b1.Exit {
			if p.External(v) == uint32(len(p.Out(v))) && !p.Visited(v) {
				bottomError = true
			} else if p.VisitCounter(v) != p.External(v) {
				if p.Label(v).Player == pgraph.Odd {
					oddRules = true
				} else {
					evenRules = true
				}
			}
			if bottomError || (evenRules && oddRules) {
				break
			}
		}
		if !(bottomError || (evenRules && oddRules)) {
			return false, nil
		}
	}
	// div == divOdd or div == divEven alone: one player's divergence is
	// already settled, so go straight to the players split without the
	// bottom/rules gate.
	return splitPlayers(p, b1), nil
}

// divergent reports whether every vertex of b with at least one cross-block
// out-edge is owned by p and can also return into b — i.e. whether b is a
// p-divergent block under governed stuttering.
func divergent(p *Partitioner, b *Block, player pgraph.Player) bool {
	for _, v := range b.Vertices {
		if p.External(v) == 0 {
			continue
		}
		if p.Label(v).Player != player {
			return false
		}
		backIntoBlock := false
		for _, dst := range p.Out(v) {
			if p.BlockOf(dst) == b {
				backIntoBlock = true
				break
			}
		}
		if !backIntoBlock {
			return false
		}
	}
	return true
}

func (gstutStrategy) Quotient(p *Partitioner) *pgraph.Graph {
	reprOf := func(b *Block) int {
		for _, v := range b.Vertices {
			if p.External(v) > 0 {
				return v
			}
		}
		return b.Vertices[0]
	}
	return buildQuotient(p,
		func(b *Block) pgraph.Label { return p.Label(reprOf(b)) },
		func(b *Block) bool { return divergent(p, b, p.Label(reprOf(b)).Player) },
	)
}
