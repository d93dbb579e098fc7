package sequence

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/keypadchain/paths"
)

// Expand returns one press string of minimal length that, typed by the
// human at the bottom of a depth-arm stack, makes the numeric arm type
// code. Several minimal strings usually exist; which one is returned is
// unspecified. len(Expand(code, depth)) == TotalCost(code, depth).
//
// The result grows about 2.5× per level, so it is refused with
// ErrExpansionTooLong once it would exceed the MaxExpansion option.
func (a *Aggregator) Expand(code string, depth int) (string, error) {
	if err := a.Validate(code, depth); err != nil {
		return "", err
	}
	total := a.totalCost(code, depth)
	if total > int64(a.maxExpansion) {
		return "", fmt.Errorf("%w: %d presses > %d", ErrExpansionTooLong, total, a.maxExpansion)
	}

	var sb strings.Builder
	sb.Grow(int(total))
	home := a.oracle.Layout().Home()
	prev := a.numeric.Home()
	for _, key := range code {
		_, p := a.transition(prev, key, depth)
		a.expandFramed(&sb, p.Framed(home), depth)
		prev = key
	}
	return sb.String(), nil
}

// expandFramed writes the human presses that make the arm at level depth
// type seq, which starts at the resting key.
func (a *Aggregator) expandFramed(sb *strings.Builder, seq []rune, depth int) {
	if depth == 0 {
		// the human types seq itself, minus the resting position
		for _, r := range seq[1:] {
			sb.WriteRune(r)
		}
		return
	}
	for i := 1; i < len(seq); i++ {
		a.expandDirectional(sb, seq[i-1], seq[i], depth-1)
	}
}

// expandDirectional writes the presses behind oracle.Cost(from, to, depth).
func (a *Aggregator) expandDirectional(sb *strings.Builder, from, to rune, depth int) {
	layout := a.oracle.Layout()
	gen, err := paths.NewGenerator(layout, from, to)
	if err != nil {
		panic(err)
	}
	home := layout.Home()

	var best paths.Path
	bestCost := int64(math.MaxInt64)
	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
		if depth == 0 {
			// every shortest path is typed with the same number of presses
			best = p
			break
		}
		if c := a.oracle.SequenceCost(p.Framed(home), depth-1); c < bestCost {
			best, bestCost = p, c
		}
	}
	a.expandFramed(sb, best.Framed(home), depth)
}
