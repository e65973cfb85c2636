package partition

import (
	"fmt"

	"github.com/sjcranen/pgquotient/pgraph"
)

// Strategies maps each Equivalence name to its Strategy, for callers that
// want to drive Run directly.
var Strategies = map[Equivalence]Strategy{
	Bisim: BisimStrategy,
	FMIB:  FMIBStrategy,
	Stut:  StutStrategy,
	GStut: GStutStrategy,
}

// Quotient computes g's quotient under equiv, mutating g in place when the
// equivalence requires preprocessing (stut adds a divergence sink). pgconvert
// uses it for the bisim, fmib, stut and gstut names.
func Quotient(g *pgraph.Graph, equiv Equivalence) (*pgraph.Graph, error) {
	switch equiv {
	case Stut:
		return RunStut(g)
	case Bisim, FMIB, GStut:
		strategy, ok := Strategies[equiv]
		if !ok {
			return nil, fmt.Errorf("partition: unknown equivalence %q", equiv)
		}
		return Run(g, strategy)
	default:
		return nil, fmt.Errorf("partition: unknown equivalence %q", equiv)
	}
}
