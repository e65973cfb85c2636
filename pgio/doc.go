// Package pgio reads and writes the on-disk formats this module's command
// line tools consume: the PGSolver parity-game format (load and dump), the
// mCRL2 .aut labelled-transition-system format (load only), and a GraphViz
// .dot dump for inspecting a graph visually.
//
// None of the three formats carry a native divergence marker; a vertex's
// Label.Div is always false immediately after loading. Divergence only
// enters a graph later, through scc.Collapse folding away a self-loop.
package pgio
