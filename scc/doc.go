// Package scc collapses each maximal strongly connected component of a
// pgraph.Graph that is homogeneous in label (every member vertex shares the
// same priority, player, and divergence bit) down to a single representative
// vertex.
//
// Collapsing is a prerequisite step for the scc and stut equivalences: once
// same-label SCCs are gone, the remaining graph has no same-label cycles
// left for the refinement driver to worry about, and any self-loop that
// collapsing introduces on a representative is recorded as divergence on
// that vertex's label.
package scc
