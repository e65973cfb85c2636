package partition

import "github.com/sjcranen/pgquotient/pgraph"

// Strategy supplies the four operations that distinguish one equivalence
// from another; Run drives them through a shared fixpoint loop.
type Strategy interface {
	// CreateInitialPartition builds the starting blocks from g's labels and
	// assigns every vertex to one.
	CreateInitialPartition(p *Partitioner)

	// UpdateBlock recomputes b's incoming list and any equivalence-specific
	// bookkeeping. hasEdgeFrom is the sibling block just split off from b
	// (nil during initial partition construction); UpdateBlock reports
	// whether any source of an edge into b lies in hasEdgeFrom.
	UpdateBlock(p *Partitioner, b, hasEdgeFrom *Block) bool

	// SplitSelf attempts to find a splitter for b within b itself (phase A).
	SplitSelf(p *Partitioner, b *Block) (bool, error)

	// SplitCross attempts to use b2 as a splitter for b1 (phase B).
	SplitCross(p *Partitioner, b1, b2 *Block) (bool, error)

	// Quotient emits the coarsest stable partition as a new graph.
	Quotient(p *Partitioner) *pgraph.Graph
}

// Partitioner holds the live state of one refinement run: the graph being
// refined, per-vertex scratch state, and the blocks discovered so far.
type Partitioner struct {
	g      *pgraph.Graph
	vs     []vertexState
	blocks []*Block
}

// NewPartitioner allocates a Partitioner over g with every vertex initially
// unassigned; the Strategy's CreateInitialPartition is responsible for
// assigning every vertex to a block.
func NewPartitioner(g *pgraph.Graph) *Partitioner {
	return &Partitioner{
		g:  g,
		vs: make([]vertexState, g.Size()),
	}
}

// Graph returns the graph being refined.
func (p *Partitioner) Graph() *pgraph.Graph { return p.g }

// N returns the number of vertices.
func (p *Partitioner) N() int { return p.g.Size() }

// Label returns vertex i's label.
func (p *Partitioner) Label(i int) pgraph.Label { return p.g.Label(i) }

// Out returns vertex i's out-neighbours.
func (p *Partitioner) Out(i int) []int { return p.g.Vertex(i).Out }

// In returns vertex i's in-neighbours.
func (p *Partitioner) In(i int) []int { return p.g.Vertex(i).In }

// BlockOf returns the block vertex i currently belongs to.
func (p *Partitioner) BlockOf(i int) *Block { return p.vs[i].block }

// Blocks returns every block created so far, in creation order.
func (p *Partitioner) Blocks() []*Block { return p.blocks }

// NewBlock appends and returns a fresh, empty block.
func (p *Partitioner) NewBlock() *Block {
	b := &Block{Index: len(p.blocks), seenRound: -1}
	p.blocks = append(p.blocks, b)
	return b
}

// Assign places vertex i into block b.
func (p *Partitioner) Assign(i int, b *Block) {
	p.vs[i].block = b
	b.Vertices = append(b.Vertices, i)
}

// Pos reports vertex i's transient pos flag.
func (p *Partitioner) Pos(i int) bool { return p.vs[i].pos }

// SetPos sets vertex i's transient pos flag.
func (p *Partitioner) SetPos(i int, v bool) { p.vs[i].pos = v }

// Visited reports whether vertex i has been visited since its counter was
// last cleared.
func (p *Partitioner) Visited(i int) bool { return p.vs[i].visited() }

// Visit increments vertex i's visit counter.
func (p *Partitioner) Visit(i int) { p.vs[i].visit() }

// ClearVisit resets vertex i's visit counter to zero.
func (p *Partitioner) ClearVisit(i int) { p.vs[i].clearVisit() }

// VisitCounter returns vertex i's raw visit counter.
func (p *Partitioner) VisitCounter(i int) uint32 { return p.vs[i].visitCounter }

// SetVisitCounter sets vertex i's raw visit counter.
func (p *Partitioner) SetVisitCounter(i int, v uint32) { p.vs[i].visitCounter = v }

// External returns vertex i's external counter (fmib/gstut).
func (p *Partitioner) External(i int) uint32 { return p.vs[i].external }

// SetExternal sets vertex i's external counter.
func (p *Partitioner) SetExternal(i int, v uint32) { p.vs[i].external = v }

// IncExternal increments vertex i's external counter.
func (p *Partitioner) IncExternal(i int) { p.vs[i].external++ }

// Div returns vertex i's divergence bitfield (gstut).
func (p *Partitioner) Div(i int) uint8 { return p.vs[i].div }

// SetDiv sets vertex i's divergence bitfield.
func (p *Partitioner) SetDiv(i int, v uint8) { p.vs[i].div = v }

// Run partitions g under strategy and returns the quotient graph.
func Run(g *pgraph.Graph, strategy Strategy) (*pgraph.Graph, error) {
	p := NewPartitioner(g)
	strategy.CreateInitialPartition(p)

	for {
		foundSplitter := false
		var b1 *Block

		// Phase A: self-splits.
		for _, b := range p.blocks {
			if b.DivStable {
				continue
			}
			ok, err := strategy.SplitSelf(p, b)
			if err != nil {
				return nil, err
			}
			if ok {
				b1 = b
				foundSplitter = true
				break
			}
			b.DivStable = true
		}

		// Phase B: cross-splits.
		if !foundSplitter {
			for _, b2 := range p.blocks {
				if foundSplitter {
					break
				}
				if b2.Stable {
					continue
				}
				adjacent := p.markAndCollectAdjacent(b2)
				for _, a := range adjacent {
					ok, err := strategy.SplitCross(p, a, b2)
					if err != nil {
						return nil, err
					}
					if ok {
						b1 = a
						foundSplitter = true
						break
					}
				}
				p.clearIncomingMarks(b2)
				if !foundSplitter {
					b2.Stable = true
				}
			}
		}

		if !foundSplitter {
			break
		}

		if p.refine(strategy, b1) {
			b1.DivStable = false
			for _, b := range p.blocks {
				b.Stable = false
			}
		}
	}

	return strategy.Quotient(p), nil
}

// refine splits off every vertex with pos==true from b into a fresh block
// c, updates both blocks' bookkeeping, and reports whether the split
// revealed new inert-edge work elsewhere.
func (p *Partitioner) refine(strategy Strategy, b *Block) bool {
	c := p.NewBlock()
	kept := b.Vertices[:0:0]
	for _, v := range b.Vertices {
		if p.vs[v].pos {
			p.vs[v].pos = false
			p.vs[v].block = c
			c.Vertices = append(c.Vertices, v)
		} else {
			kept = append(kept, v)
		}
	}
	b.Vertices = kept

	r1 := strategy.UpdateBlock(p, b, c)
	r2 := strategy.UpdateBlock(p, c, b)
	return r1 || r2
}

// markAndCollectAdjacent marks every source of b2.Incoming as visited and
// returns the distinct blocks those sources (other than b2 itself) belong
// to, each at most once.
func (p *Partitioner) markAndCollectAdjacent(b2 *Block) []*Block {
	var adjacent []*Block
	for _, src := range b2.Incoming {
		p.Visit(src)
		ab := p.BlockOf(src)
		if ab == b2 || ab.seenRound == b2.Index {
			continue
		}
		ab.seenRound = b2.Index
		adjacent = append(adjacent, ab)
	}
	for _, ab := range adjacent {
		ab.seenRound = -1
	}
	return adjacent
}

// clearIncomingMarks undoes markAndCollectAdjacent's visit marks.
func (p *Partitioner) clearIncomingMarks(b2 *Block) {
	for _, src := range b2.Incoming {
		p.ClearVisit(src)
	}
}
