// Command pgconvert loads a parity game, reduces it under one of the
// supported equivalences, and dumps the resulting quotient.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/sjcranen/pgquotient/partition"
	"github.com/sjcranen/pgquotient/pgio"
	"github.com/sjcranen/pgquotient/pgraph"
	"github.com/sjcranen/pgquotient/scc"
)

type cli struct {
	Equivalence string `short:"e" required:"" help:"Equivalence to reduce under: scc, bisim, fmib, stut, gstut, gstut2, wgstut."`
	Input       string `short:"i" help:"Input file (PGSolver format). Defaults to standard input."`
	Output      string `short:"o" help:"Output file (PGSolver format). Defaults to standard output."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Reduces a parity game under a behavioural equivalence."))

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(&c, log); err != nil {
		log.Error().Err(err).Msg("pgconvert failed")
		os.Exit(1)
	}
}

func run(c *cli, log zerolog.Logger) error {
	in, inName, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	log.Info().Str("source", inName).Msg("loading parity game")
	g, err := pgio.LoadPGSolver(in)
	if err != nil {
		return fmt.Errorf("pgconvert: %w", err)
	}
	log.Info().Int("vertices", g.Size()).Msg("loaded")

	result, err := reduce(c.Equivalence, g, log)
	if err != nil {
		return err
	}

	out, outName, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	log.Info().Str("destination", outName).Int("vertices", result.Size()).Msg("writing quotient")
	if err := pgio.DumpPGSolver(out, result); err != nil {
		return fmt.Errorf("pgconvert: %w", err)
	}
	return nil
}

// reduce dispatches on the equivalence name. gstut2 runs scc.Collapse first
// because plain gstut expects an input graph whose divergence is already
// exposed through self-loops; wgstut is a bare alias for gstut, since the
// weak variant never actually overrides the strong one's behaviour.
func reduce(equiv string, g *pgraph.Graph, log zerolog.Logger) (*pgraph.Graph, error) {
	switch equiv {
	case "scc":
		log.Info().Msg("collapsing strongly connected components")
		scc.Collapse(g)
		return g, nil
	case "gstut2":
		log.Info().Msg("collapsing strongly connected components")
		scc.Collapse(g)
		log.Info().Msg("refining under gstut")
		return partition.Run(g, partition.GStutStrategy)
	case "wgstut":
		log.Info().Msg("refining under gstut")
		return partition.Run(g, partition.GStutStrategy)
	case "bisim", "fmib", "stut", "gstut":
		log.Info().Str("equivalence", equiv).Msg("refining")
		return partition.Quotient(g, partition.Equivalence(equiv))
	default:
		return nil, fmt.Errorf("pgconvert: unknown equivalence %q", equiv)
	}
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), "standard input", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("pgconvert: could not open input: %w", err)
	}
	return f, path, nil
}

func openOutput(path string) (io.WriteCloser, string, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, "standard output", nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("pgconvert: could not open output: %w", err)
	}
	return f, path, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
