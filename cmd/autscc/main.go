// Command autscc dumps the strongly connected components of an Aldebaran
// labelled transition system, one line per component.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/sjcranen/pgquotient/pgio"
	"github.com/sjcranen/pgquotient/scc"
)

type cli struct {
	Input  string `short:"i" help:"Input file (.aut format). Defaults to standard input."`
	Output string `short:"o" help:"Output file. Defaults to standard output."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Dumps strongly connected components within a .aut file."))

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := run(&c, log); err != nil {
		log.Error().Err(err).Msg("autscc failed")
		os.Exit(1)
	}
}

func run(c *cli, log zerolog.Logger) error {
	in, inName, err := openInput(c.Input)
	if err != nil {
		return err
	}
	defer in.Close()

	log.Info().Str("source", inName).Msg("loading state space")
	g, err := pgio.LoadAut(in)
	if err != nil {
		return fmt.Errorf("autscc: %w", err)
	}
	log.Info().Int("states", g.Size()).Msg("loaded")

	components := scc.Components(g)
	log.Info().Int("components", len(components)).Msg("decomposed")

	out, outName, err := openOutput(c.Output)
	if err != nil {
		return err
	}
	defer out.Close()

	log.Info().Str("destination", outName).Msg("writing components")
	return writeComponents(out, components)
}

func writeComponents(w io.Writer, components [][]int) error {
	bw := bufio.NewWriter(w)
	for _, members := range components {
		for i, v := range members {
			if i > 0 {
				if _, err := fmt.Fprint(bw, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", v); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func openInput(path string) (io.ReadCloser, string, error) {
	if path == "" {
		return io.NopCloser(os.Stdin), "standard input", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("autscc: could not open input: %w", err)
	}
	return f, path, nil
}

func openOutput(path string) (io.WriteCloser, string, error) {
	if path == "" {
		return nopWriteCloser{os.Stdout}, "standard output", nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("autscc: could not open output: %w", err)
	}
	return f, path, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
