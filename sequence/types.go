// Package sequence provides options, weighting strategies and error
// definitions for pricing whole codes on the numeric keypad.
package sequence

import (
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for code pricing.
var (
	// ErrOracleNil is returned if a nil oracle pointer is passed.
	ErrOracleNil = errors.New("sequence: oracle is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("sequence: invalid option supplied")

	// ErrNegativeDepth is returned for an indirection depth below zero.
	ErrNegativeDepth = errors.New("sequence: indirection depth cannot be negative")

	// ErrInvalidSymbol is returned when a code holds a key absent from the numeric layout.
	ErrInvalidSymbol = errors.New("sequence: symbol not on numeric layout")

	// ErrInvalidWeight is returned when a WeightFunc fails or yields a negative weight.
	ErrInvalidWeight = errors.New("sequence: invalid code weight")

	// ErrCostOverflow is returned when a total no longer fits in int64.
	ErrCostOverflow = errors.New("sequence: press count overflows int64")

	// ErrExpansionTooLong is returned when Expand would exceed the configured length.
	ErrExpansionTooLong = errors.New("sequence: expansion exceeds maximum length")

	// ErrGapPanic is returned by Replay when an arm hovers the gap or leaves its keypad.
	ErrGapPanic = errors.New("sequence: arm hovered the gap or left the keypad")

	// ErrUnknownPress is returned by Replay for a press that is not a directional key.
	ErrUnknownPress = errors.New("sequence: press is not a directional key")
)

// DefaultMaxExpansion bounds the strings built by Expand.
const DefaultMaxExpansion = 1 << 20

// WeightFunc maps a code to the factor its press count is multiplied by.
type WeightFunc func(code string) (int64, error)

// NumericWeight is the integer formed by the digit characters of code,
// ignoring every other symbol: "029A" weighs 29. A code without digits
// weighs 0.
func NumericWeight(code string) (int64, error) {
	digits := make([]rune, 0, len(code))
	for _, r := range code {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	if len(digits) == 0 {
		return 0, nil
	}
	w, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidWeight, code, err)
	}
	return w, nil
}

// UnitWeight weighs every code 1, so a batch total is the plain press count.
func UnitWeight(string) (int64, error) {
	return 1, nil
}

// Option configures an Aggregator via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the parameters of an Aggregator.
type Options struct {
	// Numeric is the primary keypad codes are typed on.
	Numeric *keypad.Layout

	// Weight scores each code; NumericWeight by default.
	Weight WeightFunc

	// Logger receives one debug line per priced code.
	Logger zerolog.Logger

	// MaxExpansion caps the length of strings built by Expand.
	MaxExpansion int

	// Workers bounds the goroutines of ComplexityConcurrent.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with keypad.Numeric, NumericWeight, a
// no-op logger, DefaultMaxExpansion and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Numeric:      keypad.Numeric,
		Weight:       NumericWeight,
		Logger:       zerolog.Nop(),
		MaxExpansion: DefaultMaxExpansion,
		Workers:      runtime.GOMAXPROCS(0),
	}
}

// WithNumericLayout replaces the primary keypad.
func WithNumericLayout(l *keypad.Layout) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: numeric layout is nil", ErrOptionViolation)
			return
		}
		o.Numeric = l
	}
}

// WithWeight injects the weighting strategy.
func WithWeight(fn WeightFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: weight function is nil", ErrOptionViolation)
			return
		}
		o.Weight = fn
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxExpansion caps Expand output.
//
//	n > 0: limit to n presses
//	n <= 0: invalid option → ErrOptionViolation
func WithMaxExpansion(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxExpansion must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansion = n
	}
}

// WithWorkers bounds ComplexityConcurrent. n must be positive.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: Workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}
