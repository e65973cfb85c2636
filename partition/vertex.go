package partition

// divOdd and divEven are the two bits of a vertex's div field: divOdd is set
// while the vertex may still be able to stutter divergently as the odd
// player, divEven likewise for even. gstut is the only strategy that uses
// either bit; the others leave div at zero throughout.
const (
	divOdd  uint8 = 1 << 0
	divEven uint8 = 1 << 1
)

// vertexState is the per-vertex scratch record threaded through a
// refinement run: which block the vertex currently belongs to, and the
// transient flags (visitCounter, external, div, pos) that the splitters use
// and are required to clear once consumed.
type vertexState struct {
	block        *Block
	visitCounter uint32
	external     uint32
	div          uint8
	pos          bool
}

// visited reports whether a vertex has been marked at least once since its
// visitCounter was last cleared.
func (vs *vertexState) visited() bool {
	return vs.visitCounter > 0
}

// visit increments the vertex's visit counter.
func (vs *vertexState) visit() {
	vs.visitCounter++
}

// clearVisit resets the vertex's visit counter to zero.
func (vs *vertexState) clearVisit() {
	vs.visitCounter = 0
}
