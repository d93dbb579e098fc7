package oracle

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// Oracle answers "how many human presses does it take to move this arm from
// one directional key to another and press it" for any stack depth.
//
// Results are memoized per CacheKey for the lifetime of the Oracle and
// shared by every caller. The cache is guarded by an RWMutex: lookups take
// the read lock, computation runs unlocked, and the first writer of a key
// wins, so a racing duplicate computation is discarded.
type Oracle struct {
	layout *keypad.Layout
	log    zerolog.Logger

	mu    sync.RWMutex
	cache map[CacheKey]int64

	hits, misses atomic.Uint64
}

// New builds an Oracle. Returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Oracle, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Oracle{
		layout: o.Layout,
		log:    o.Logger,
		cache:  make(map[CacheKey]int64),
	}, nil
}

// Layout returns the directional layout the oracle prices moves on.
func (o *Oracle) Layout() *keypad.Layout {
	return o.layout
}

// Cost returns the minimum number of human presses needed to move the arm
// hovering the directional keypad from key from to key to and press it,
// with depth further directional arms between that keypad and the human.
//
//	depth == 0: the human types on the controlling keypad directly, so the
//	            cost is Manhattan(from, to) + 1.
//	depth  > 0: every gap-free shortest path is typed one level down as
//	            A, moves..., A and priced at depth-1; the cheapest wins.
//
// Every ordering is priced, since orderings that look alike at one level
// diverge deeper down. Unknown keys and negative depth are programming
// errors and panic.
func (o *Oracle) Cost(from, to rune, depth int) int64 {
	if depth < 0 {
		panic(fmt.Sprintf("oracle: negative depth %d", depth))
	}
	key := CacheKey{From: from, To: to, Depth: depth}

	o.mu.RLock()
	v, ok := o.cache[key]
	o.mu.RUnlock()
	if ok {
		o.hits.Add(1)
		return v
	}
	o.misses.Add(1)

	v = o.compute(key)

	o.mu.Lock()
	if stored, ok := o.cache[key]; ok {
		v = stored
	} else {
		o.cache[key] = v
	}
	o.mu.Unlock()

	o.log.Debug().
		Str("from", string(from)).
		Str("to", string(to)).
		Int("depth", depth).
		Int64("cost", v).
		Msg("cached press cost")

	return v
}

// compute evaluates one CacheKey without touching the cache for key itself.
func (o *Oracle) compute(key CacheKey) int64 {
	src := o.layout.MustPosition(key.From)
	dst := o.layout.MustPosition(key.To)
	if key.Depth == 0 {
		return int64(src.Manhattan(dst)) + 1
	}

	gen, err := paths.NewGenerator(o.layout, key.From, key.To)
	if err != nil {
		// both keys were resolved above
		panic(err)
	}
	best := int64(math.MaxInt64)
	home := o.layout.Home()
	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
		if c := o.SequenceCost(p.Framed(home), key.Depth-1); c < best {
			best = c
		}
	}

	return best
}

// SequenceCost sums Cost over consecutive pairs of keys at depth.
// A sequence shorter than two keys costs nothing. The sum saturates at
// math.MaxInt64.
func (o *Oracle) SequenceCost(keys []rune, depth int) int64 {
	var total int64
	for i := 1; i < len(keys); i++ {
		total = SaturatingAdd(total, o.Cost(keys[i-1], keys[i], depth))
	}
	return total
}

// Stats returns a snapshot of cache counters.
func (o *Oracle) Stats() Stats {
	o.mu.RLock()
	n := len(o.cache)
	o.mu.RUnlock()

	return Stats{Hits: o.hits.Load(), Misses: o.misses.Load(), Entries: n}
}

// Reset drops every memoized entry and zeroes the counters.
func (o *Oracle) Reset() {
	o.mu.Lock()
	o.cache = make(map[CacheKey]int64)
	o.mu.Unlock()
	o.hits.Store(0)
	o.misses.Store(0)
}

// SaturatingAdd returns a+b for non-negative operands, clamped to math.MaxInt64.
func SaturatingAdd(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
