// Package partition implements the generic partition-refinement driver
// shared by the four behavioural equivalences this module computes over
// parity games and labelled transition systems: strong bisimulation,
// forced-move identifying bisimulation (fmib), stuttering equivalence, and
// governed stuttering equivalence.
//
// The driver (Run) is a single fixpoint loop that alternates self-splits
// (phase A) and cross-splits (phase B) over an evolving set of Blocks until
// no block can split any other, then emits the coarsest stable partition as
// a quotient graph. Every equivalence plugs into the driver through the
// Strategy interface, supplying its own initial partition, splitting rules,
// and quotient representative choice; the bookkeeping of blocks, vertex
// scratch state, and the splitter search itself is shared.
//
// Only the governed-stuttering strategy can fail at runtime (it detects an
// internally inconsistent divergence marking and reports it as an error);
// the other three strategies never do.
package partition
