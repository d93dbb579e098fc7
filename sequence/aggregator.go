package sequence

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/oracle"
	"github.com/katalvlaran/keypadchain/paths"
)

// Aggregator prices whole codes typed on the numeric keypad through a stack
// of directional arms, using a shared Oracle for the directional levels.
// It is safe for concurrent use.
type Aggregator struct {
	oracle       *oracle.Oracle
	numeric      *keypad.Layout
	weight       WeightFunc
	log          zerolog.Logger
	maxExpansion int
	workers      int
}

// NewAggregator builds an Aggregator over o.
// Returns ErrOracleNil or ErrOptionViolation for invalid input.
func NewAggregator(o *oracle.Oracle, opts ...Option) (*Aggregator, error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Aggregator{
		oracle:       o,
		numeric:      cfg.Numeric,
		weight:       cfg.Weight,
		log:          cfg.Logger,
		maxExpansion: cfg.MaxExpansion,
		workers:      cfg.Workers,
	}, nil
}

// Validate reports whether code and depth can be priced: ErrNegativeDepth
// for depth < 0, ErrInvalidSymbol for a key missing from the numeric layout.
func (a *Aggregator) Validate(code string, depth int) error {
	if depth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	for i, r := range code {
		if !a.numeric.Has(r) {
			return fmt.Errorf("%w: %q at offset %d of %q", ErrInvalidSymbol, r, i, code)
		}
	}
	return nil
}

// TotalCost returns the minimum number of human presses that make the arm
// over the numeric keypad type code, with depth directional arms between
// that arm and the human. At depth 0 the human types directly on the
// keypad steering the numeric arm. An empty code costs 0.
//
// Each numeric transition, starting from the home key, is priced as the
// cheapest numeric path framed in Activate presses on the directional
// keypad, where each directional step costs oracle.Cost at depth-1.
func (a *Aggregator) TotalCost(code string, depth int) (int64, error) {
	if err := a.Validate(code, depth); err != nil {
		return 0, err
	}
	total := a.totalCost(code, depth)
	if total == math.MaxInt64 {
		return 0, fmt.Errorf("%w: code %q at depth %d", ErrCostOverflow, code, depth)
	}
	return total, nil
}

// totalCost assumes validated input.
func (a *Aggregator) totalCost(code string, depth int) int64 {
	var total int64
	prev := a.numeric.Home()
	for _, key := range code {
		c, _ := a.transition(prev, key, depth)
		total = oracle.SaturatingAdd(total, c)
		prev = key
	}
	return total
}

// transition returns the cheapest way to move the numeric arm from one key
// to another and press it, and the numeric path achieving it.
func (a *Aggregator) transition(from, to rune, depth int) (int64, paths.Path) {
	gen, err := paths.NewGenerator(a.numeric, from, to)
	if err != nil {
		// keys were validated by the caller
		panic(err)
	}
	home := a.oracle.Layout().Home()
	best, bestPath := int64(math.MaxInt64), paths.Path(nil)
	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
		var c int64
		if depth == 0 {
			c = int64(len(p)) + 1
		} else {
			c = a.oracle.SequenceCost(p.Framed(home), depth-1)
		}
		if bestPath == nil || c < best {
			best, bestPath = c, p
		}
	}
	return best, bestPath
}

// Complexity returns Σ TotalCost(code, depth) × weight(code) over codes.
// Every code is validated before any cost is computed.
func (a *Aggregator) Complexity(codes []string, depth int) (int64, error) {
	for _, code := range codes {
		if err := a.Validate(code, depth); err != nil {
			return 0, err
		}
	}

	var sum int64
	for _, code := range codes {
		score, err := a.score(code, depth)
		if err != nil {
			return 0, err
		}
		if sum, err = addChecked(sum, score); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// ComplexityConcurrent computes the same result as Complexity, pricing codes
// on up to Workers goroutines that share the oracle cache. Cancelling ctx
// stops scheduling further codes and returns ctx.Err().
func (a *Aggregator) ComplexityConcurrent(ctx context.Context, codes []string, depth int) (int64, error) {
	for _, code := range codes {
		if err := a.Validate(code, depth); err != nil {
			return 0, err
		}
	}

	scores := make([]int64, len(codes))
	errs := make([]error, len(codes))
	sem := make(chan struct{}, a.workers)
	var wg sync.WaitGroup

schedule:
	for i, code := range codes {
		select {
		case <-ctx.Done():
			break schedule
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			defer func() { <-sem }()
			scores[i], errs[i] = a.score(code, depth)
		}(i, code)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var sum int64
	for i := range codes {
		if errs[i] != nil {
			return 0, errs[i]
		}
		var err error
		if sum, err = addChecked(sum, scores[i]); err != nil {
			return 0, err
		}
	}
	return sum, nil
}

// score prices one validated code and applies its weight.
func (a *Aggregator) score(code string, depth int) (int64, error) {
	presses := a.totalCost(code, depth)
	if presses == math.MaxInt64 {
		return 0, fmt.Errorf("%w: code %q at depth %d", ErrCostOverflow, code, depth)
	}
	w, err := a.weight(code)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, err)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: %q weighs %d", ErrInvalidWeight, code, w)
	}
	if w != 0 && presses > math.MaxInt64/w {
		return 0, fmt.Errorf("%w: %d presses × weight %d", ErrCostOverflow, presses, w)
	}

	a.log.Debug().
		Str("code", code).
		Int("depth", depth).
		Int64("presses", presses).
		Int64("weight", w).
		Msg("priced code")

	return presses * w, nil
}

// addChecked adds two non-negative totals, failing instead of wrapping.
func addChecked(a, b int64) (int64, error) {
	if a > math.MaxInt64-b {
		return 0, ErrCostOverflow
	}
	return a + b, nil
}
