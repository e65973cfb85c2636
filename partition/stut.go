package partition

import (
	"math"

	"github.com/sjcranen/pgquotient/pgraph"
)

// stutStrategy computes (ordinary, ungoverned) stuttering equivalence.
type stutStrategy struct{}

// StutStrategy is the Strategy for stuttering equivalence. Most callers
// should use RunStut instead, which also handles the divergence sink.
var StutStrategy Strategy = stutStrategy{}

func (stutStrategy) CreateInitialPartition(p *Partitioner) {
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
		stutUpdate(p, b, nil)
	}
}

// stutUpdate recomputes b.Incoming, filtered to sources outside b, and
// b.Bottom: members with no in-block outgoing edge.
func stutUpdate(p *Partitioner, b, hasEdgeFrom *Block) bool {
	result := false
	b.Incoming = b.Incoming[:0]
	b.Bottom = b.Bottom[:0]
	for _, v := range b.Vertices {
		for _, src := range p.In(v) {
			if p.BlockOf(src) == b {
				continue
			}
			b.Incoming = append(b.Incoming, src)
			if p.BlockOf(src) == hasEdgeFrom {
				result = true
			}
		}
		isBottom := true
		for _, dst := range p.Out(v) {
			if p.BlockOf(dst) == b {
				isBottom = false
				break
			}
		}
		if isBottom {
			b.Bottom = append(b.Bottom, v)
		}
	}
	return result
}

func (stutStrategy) UpdateBlock(p *Partitioner, b, hasEdgeFrom *Block) bool {
	return stutUpdate(p, b, hasEdgeFrom)
}

func (stutStrategy) SplitSelf(p *Partitioner, b *Block) (bool, error) {
	return false, nil
}

func (stutStrategy) SplitCross(p *Partitioner, b1, b2 *Block) (bool, error) {
	allBottomsVisited := true
	for _, v := range b1.Bottom {
		if !p.Visited(v) {
			allBottomsVisited = false
			break
		}
	}
	if allBottomsVisited {
		return false, nil
	}

	var todo []int
	for _, v := range b1.Vertices {
		if p.Visited(v) {
			p.SetPos(v, true)
			todo = append(todo, v)
		}
	}
	for len(todo) > 0 {
		v := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		for _, pred := range p.In(v) {
			if p.BlockOf(pred) == b1 && !p.Pos(pred) {
				p.SetPos(pred, true)
				todo = append(todo, pred)
			}
		}
	}
	return true, nil
}

func (stutStrategy) Quotient(p *Partitioner) *pgraph.Graph {
	return buildQuotient(p,
		func(b *Block) pgraph.Label { return p.Label(b.Vertices[0]) },
		func(b *Block) bool { return false },
	)
}

// divSinkPriority is a reserved priority value used to label the synthetic
// divergence sink vertex that RunStut adds. Priorities occurring in real
// input graphs are expected to stay well below this.
const divSinkPriority = math.MaxUint32

var divSinkLabel = pgraph.Label{Priority: divSinkPriority, Player: pgraph.Even, Div: true}

// EncodeDivergence appends a single synthetic divergence-sink vertex (with a
// self-loop, labelled divSinkLabel) to g and adds an edge from every vertex
// whose label is marked divergent to that sink, in place. It returns the
// sink's index, or -1 if g had no divergent vertex.
func EncodeDivergence(g *pgraph.Graph) int {
	sink := -1
	n := g.Size()
	for i := 0; i < n; i++ {
		if !g.Label(i).Div {
			continue
		}
		if sink == -1 {
			sink = g.Size()
			g.Resize(sink + 1)
			g.Vertex(sink).Label = divSinkLabel
			g.AddEdge(sink, sink)
		}
		g.AddEdge(i, sink)
	}
	return sink
}

// decodeDivergence removes the divergence sink from a quotiented graph,
// turning every edge into it into a self-loop on the source instead.
func decodeDivergence(q *pgraph.Graph) *pgraph.Graph {
	sink := -1
	for i := 0; i < q.Size(); i++ {
		if q.Label(i) == divSinkLabel {
			sink = i
			break
		}
	}
	if sink == -1 {
		return q
	}

	selfLoop := make(map[int]bool)
	for _, src := range q.Vertex(sink).In {
		if src != sink {
			selfLoop[src] = true
		}
	}

	remap := make([]int, q.Size())
	out := pgraph.New(q.Size() - 1)
	next := 0
	for i := 0; i < q.Size(); i++ {
		if i == sink {
			remap[i] = -1
			continue
		}
		remap[i] = next
		out.Vertex(next).Label = q.Label(i)
		next++
	}
	for i := 0; i < q.Size(); i++ {
		if i == sink {
			continue
		}
		for _, dst := range q.Vertex(i).Out {
			if dst == sink {
				continue
			}
			out.AddEdge(remap[i], remap[dst])
		}
		if selfLoop[i] {
			out.AddEdge(remap[i], remap[i])
		}
	}
	return out
}

// RunStut refines g under stuttering equivalence, transparently handling
// the divergence sink: g is mutated in place to add the sink if needed, and
// the returned graph never contains it.
func RunStut(g *pgraph.Graph) (*pgraph.Graph, error) {
	EncodeDivergence(g)
	q, err := Run(g, StutStrategy)
	if err != nil {
		return nil, err
	}
	return decodeDivergence(q), nil
}
