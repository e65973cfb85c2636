package partition

// Block is a set of vertices currently conjectured to be equivalent. Its
// Index doubles as the vertex number the block will occupy in the emitted
// quotient graph; it is reassigned exactly once, in O(1), during
// quotienting, to bring vertex 0 into block 0 (see buildQuotient).
type Block struct {
	// Index is this block's output vertex number.
	Index int

	// Vertices holds the member vertex indices.
	Vertices []int

	// Incoming holds the source vertex index of every edge entering this
	// block, recomputed by the owning Strategy's UpdateBlock. bisim/fmib
	// include same-block sources; stut/gstut exclude them.
	Incoming []int

	// Exit holds members with at least one cross-block outgoing edge
	// (gstut bookkeeping).
	Exit []int

	// Bottom holds members with no in-block outgoing edge (stut bookkeeping).
	Bottom []int

	// Size is the member count as of the last update (fmib/gstut; bisim and
	// stut leave it at zero).
	Size int

	// MixedPlayers reports whether members span both players (fmib).
	MixedPlayers bool

	// Stable reports the block found no cross-splitter in the last full
	// scan of phase B.
	Stable bool

	// DivStable reports the block found no self-splitter in the last scan
	// of phase A.
	DivStable bool

	// seenRound is an internal dedup marker: the driver stamps it with the
	// Index of the B2 currently being scanned in phase B, so a block is
	// added to the adjacent list at most once per scan, and resets it to -1
	// once that scan's adjacent list is complete.
	seenRound int
}
