package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/keypadchain/sequence"
)

// SolveCommand holds the flags of `keypadchain solve`.
type SolveCommand struct {
	Depth      int    `short:"d" long:"depth" description:"directional arms between the numeric arm and the human; negative keeps the configured depth" default:"-1"`
	Input      string `short:"i" long:"input" description:"file with one code per line, '-' for stdin" value-name:"<file>"`
	Concurrent bool   `long:"concurrent" description:"price codes on several goroutines"`
	UnitWeight bool   `long:"unit-weight" description:"weigh every code 1 instead of by its digits"`
}

// Execute prints Σ presses × weight over the configured and input codes.
// (This gets called by go-flags when `solve` is provided on the command line)
func (c *SolveCommand) Execute(args []string) error {
	e, err := setup(c.Depth, c.UnitWeight)
	if err != nil {
		return err
	}
	defer e.closer.Close()

	input := e.cfg.Input
	if c.Input != "" {
		input = c.Input
	}
	codes := append([]string{}, e.cfg.Codes...)
	if input != "" || len(codes) == 0 {
		read, err := readCodes(input)
		if err != nil {
			return err
		}
		codes = append(codes, read...)
	}

	var total int64
	if c.Concurrent || e.cfg.Concurrent {
		total, err = e.agg.ComplexityConcurrent(context.Background(), codes, e.cfg.Depth)
	} else {
		total, err = e.agg.Complexity(codes, e.cfg.Depth)
	}
	if err != nil {
		return err
	}

	stats := e.oracle.Stats()
	log.Info().
		Int("codes", len(codes)).
		Int("depth", e.cfg.Depth).
		Int("cache-entries", stats.Entries).
		Uint64("cache-hits", stats.Hits).
		Msg("solved batch")

	_, err = fmt.Fprintln(stdout, total)
	return err
}

// readCodes reads codes from path, or from stdin for "" and "-".
func readCodes(path string) ([]string, error) {
	var r io.Reader = stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return sequence.ReadCodes(r)
}
