// Package oracle provides tunable options and error definitions for the
// memoized press-cost oracle over a directional keypad.
package oracle

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("oracle: invalid option supplied")

// CacheKey identifies one memoized sub-problem: move the arm from From to
// To and press it, with Depth further arms stacked above this keypad.
type CacheKey struct {
	From, To rune
	Depth    int
}

// Stats reports cache behaviour since construction or the last Reset.
type Stats struct {
	Hits    uint64
	Misses  uint64
	Entries int
}

// Option configures an Oracle via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the parameters of an Oracle.
type Options struct {
	// Layout is the directional keypad every arm of the chain hovers.
	Layout *keypad.Layout

	// Logger receives debug output about cache fills.
	Logger zerolog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with keypad.Directional and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Layout: keypad.Directional,
		Logger: zerolog.Nop(),
	}
}

// WithLayout replaces the directional layout. Every unit move key must be
// present on it, otherwise New fails with ErrOptionViolation.
func WithLayout(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: layout is nil", ErrOptionViolation)
			return
		}
		for _, m := range keypad.Moves {
			if !l.Has(m.Key()) {
				o.err = fmt.Errorf("%w: layout lacks move key %q", ErrOptionViolation, m.Key())
				return
			}
		}
		o.Layout = l
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
