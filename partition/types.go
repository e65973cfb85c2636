package partition

import "errors"

// ErrDivergentBothPlayers is returned by gstut's split_cross when it finds a
// vertex whose div field claims divergence for both players simultaneously —
// an internally inconsistent state that the driver refuses to refine
// through, since it would make the attractor computation ambiguous about
// which player's divergence it is clearing.
var ErrDivergentBothPlayers = errors.New("partition: block is divergent for both players")

// Equivalence names one of the four refinement strategies this package
// implements, as used on the pgconvert command line.
type Equivalence string

const (
	Bisim Equivalence = "bisim"
	FMIB  Equivalence = "fmib"
	Stut  Equivalence = "stut"
	GStut Equivalence = "gstut"
)
