package scc

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/sjcranen/pgquotient/pgraph"
)

// Collapse replaces every maximal, label-homogeneous strongly connected
// component of g with a single representative vertex, in place. Vertex 0's
// identity is preserved: it always ends up as vertex 0 of the collapsed
// graph. A representative that loses a self-loop during collapsing (because
// all of its SCC's internal edges, including the loop, were folded away) has
// its label's Div bit set, recording that the original component could
// stutter on its own priority forever.
func Collapse(g *pgraph.Graph) {
	n := g.Size()
	if n == 0 {
		return
	}
	sccs := tarjanIterative(g)
	swapZero(sccs)
	collapse(g, sccs)
}

// Components returns the strongly connected components of g (restricted to
// edges between equal-label vertices, same as Collapse), without mutating g.
// Each returned slice holds the original vertex indices of one component, in
// ascending order; components are in no particular order relative to each
// other.
func Components(g *pgraph.Graph) [][]int {
	n := g.Size()
	if n == 0 {
		return nil
	}
	sccs := tarjanIterative(g)
	members := make(map[int][]int)
	for v, id := range sccs {
		members[id] = append(members[id], v)
	}
	out := make([][]int, 0, len(members))
	for _, vs := range members {
		out = append(out, vs)
	}
	return out
}

// tarjanIterative runs Tarjan's SCC algorithm restricted to edges between
// equal-label vertices, using an explicit stack to avoid recursion depth
// limits on large graphs. It returns, for each vertex, the id of the SCC it
// belongs to; ids are dense and assigned in completion order.
func tarjanIterative(g *pgraph.Graph) []int {
	n := g.Size()
	scc := make([]int, n)
	low := make([]int, n)
	unused := 1
	lastSCC := 0

	// queued records every vertex ever pushed onto dfsStack, so no vertex
	// is pushed twice. The outer loop needs it too: component ids start at
	// 0, so scc[i] == 0 alone cannot tell an unvisited vertex from a member
	// of component 0.
	queued := bitset.New(uint(n))

	var dfsStack []int
	var sccQueue []int

	for i := 0; i < n; i++ {
		if scc[i] == 0 && !queued.Test(uint(i)) {
			dfsStack = append(dfsStack, i)
			queued.Set(uint(i))
		}
		for len(dfsStack) > 0 {
			vi := dfsStack[len(dfsStack)-1]
			v := g.Vertex(vi)

			if low[vi] == 0 {
				scc[vi] = unused
				low[vi] = unused
				unused++
				for _, w := range v.Out {
					if low[w] == 0 && scc[w] == 0 && g.Vertex(w).Label == v.Label && !queued.Test(uint(w)) {
						dfsStack = append(dfsStack, w)
						queued.Set(uint(w))
					}
				}
				continue
			}

			for _, w := range v.Out {
				if low[w] != 0 && g.Vertex(w).Label == v.Label && low[w] < low[vi] {
					low[vi] = low[w]
				}
			}
			if low[vi] == scc[vi] {
				id := lastSCC
				lastSCC++
				sccQueue = append(sccQueue, vi)
				for len(sccQueue) > 0 {
					tos := sccQueue[0]
					sccQueue = sccQueue[1:]
					low[tos] = 0
					scc[tos] = id
				}
			} else {
				sccQueue = append(sccQueue, dfsStack[len(dfsStack)-1])
			}
			dfsStack = dfsStack[:len(dfsStack)-1]
		}
	}
	return scc
}

// swapZero exchanges the SCC ids of vertex 0's component and component 0, so
// that after collapse() compacts representatives, vertex 0 lands at index 0.
func swapZero(sccs []int) {
	old := sccs[0]
	if old == 0 {
		return
	}
	for i, v := range sccs {
		switch v {
		case 0:
			sccs[i] = old
		case old:
			sccs[i] = 0
		}
	}
}

// collapse folds every vertex whose scc id is not its own index into its
// component's representative, then compacts the graph down to one vertex per
// component.
func collapse(g *pgraph.Graph, sccs []int) {
	n := len(sccs)
	vs := g.Vertices()

	// Remap every vertex's neighbour sets through the scc mapping.
	for i := 0; i < n; i++ {
		vs[i].Out = remapDedup(vs[i].Out, sccs)
		vs[i].In = remapDedup(vs[i].In, sccs)
	}

	// Chase each vertex to its component's representative slot, swapping
	// vertex contents and scc ids as we go, then merge members in.
	for i := 0; i < n; i++ {
		id := sccs[i]
		for sccs[id] != id {
			vs[i], vs[id] = vs[id], vs[i]
			sccs[i], sccs[id] = sccs[id], sccs[i]
			id = sccs[i]
		}
		if i != id {
			vs[id].Out = unionSorted(vs[id].Out, vs[i].Out)
			vs[id].In = unionSorted(vs[id].In, vs[i].In)
		}
	}

	// Keep only fixed points: one vertex per component. A representative
	// that had a self-loop folded away (its own index removed from its
	// remapped Out set) is now divergent.
	last := 0
	for i := 0; i < n; i++ {
		if sccs[i] != i {
			continue
		}
		v := &vs[i]
		if removeFromSorted(&v.Out, i) {
			v.Label.Div = true
		}
		removeFromSorted(&v.In, i)
		vs[last] = vs[i]
		last++
	}
	g.Truncate(last)
}

// remapDedup maps every element of s through ids, returning a sorted,
// de-duplicated result.
func remapDedup(s []int, ids []int) []int {
	out := make([]int, len(s))
	for i, v := range s {
		out[i] = ids[v]
	}
	sort.Ints(out)
	return dedupSorted(out)
}

// unionSorted merges two sorted, de-duplicated slices into one.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// dedupSorted removes adjacent duplicates from a sorted slice, in place.
func dedupSorted(s []int) []int {
	if len(s) == 0 {
		return s
	}
	last := 0
	for i := 1; i < len(s); i++ {
		if s[i] != s[last] {
			last++
			s[last] = s[i]
		}
	}
	return s[:last+1]
}

// removeFromSorted removes val from *s if present, reporting whether it was
// found.
func removeFromSorted(s *[]int, val int) bool {
	t := *s
	i := sort.SearchInts(t, val)
	if i >= len(t) || t[i] != val {
		return false
	}
	*s = append(t[:i], t[i+1:]...)
	return true
}
