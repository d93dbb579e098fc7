package paths

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// Sentinel errors for path enumeration.
var (
	// ErrLayoutNil is returned if a nil layout pointer is passed.
	ErrLayoutNil = errors.New("paths: layout is nil")

	// ErrUnknownKey is returned when source or destination is not on the layout.
	ErrUnknownKey = errors.New("paths: key not on layout")
)

// Path is one ordering of unit moves from a source key to a destination key.
type Path []keypad.Move

// Keys returns the directional keys that command p, in order.
func (p Path) Keys() []rune {
	keys := make([]rune, len(p))
	for i, m := range p {
		keys[i] = m.Key()
	}
	return keys
}

// Framed returns the directional key sequence an operator types to carry
// out p and press the destination: home, the move keys, then home again.
func (p Path) Framed(home rune) []rune {
	seq := make([]rune, 0, len(p)+2)
	seq = append(seq, home)
	seq = append(seq, p.Keys()...)
	return append(seq, home)
}

// String renders p as its move keys, e.g. "^^<".
func (p Path) String() string {
	var sb strings.Builder
	for _, m := range p {
		sb.WriteRune(m.Key())
	}
	return sb.String()
}

// Generator yields every distinct gap-avoiding ordering of the unit moves
// between two keys. It is restartable with Reset and not safe for concurrent use.
type Generator struct {
	layout *keypad.Layout
	src    keypad.Position
	moves  Path // sorted multiset, the first ordering
	cur    Path
	done   bool
}

// NewGenerator prepares the orderings from src to dst on layout.
// Returns ErrLayoutNil or ErrUnknownKey for invalid input.
func NewGenerator(layout *keypad.Layout, src, dst rune) (*Generator, error) {
	if layout == nil {
		return nil, ErrLayoutNil
	}
	from, ok := layout.Position(src)
	if !ok {
		return nil, fmt.Errorf("%w: source %q", ErrUnknownKey, src)
	}
	to, ok := layout.Position(dst)
	if !ok {
		return nil, fmt.Errorf("%w: destination %q", ErrUnknownKey, dst)
	}

	d := to.Sub(from)
	moves := make(Path, 0, from.Manhattan(to))
	moves = appendN(moves, keypad.Down, d.Row)
	moves = appendN(moves, keypad.Up, -d.Row)
	moves = appendN(moves, keypad.Right, d.Col)
	moves = appendN(moves, keypad.Left, -d.Col)
	sort.Slice(moves, func(i, j int) bool { return moves[i] < moves[j] })

	g := &Generator{layout: layout, src: from, moves: moves}
	g.Reset()

	return g, nil
}

// appendN appends n copies of m when n is positive.
func appendN(p Path, m keypad.Move, n int) Path {
	for ; n > 0; n-- {
		p = append(p, m)
	}
	return p
}

// Reset rewinds the generator to its first ordering.
func (g *Generator) Reset() {
	g.cur = append(g.cur[:0], g.moves...)
	g.done = false
}

// Next returns the next ordering that never hovers the gap. ok is false once
// every ordering has been produced. The returned Path is owned by the caller.
func (g *Generator) Next() (p Path, ok bool) {
	for !g.done {
		candidate := append(Path(nil), g.cur...)
		g.done = !nextPermutation(g.cur)
		if g.avoidsGap(candidate) {
			return candidate, true
		}
	}
	return nil, false
}

// avoidsGap walks p cell by cell from the source.
func (g *Generator) avoidsGap(p Path) bool {
	at := g.src
	for _, m := range p {
		at = at.Add(m.Delta())
		if g.layout.IsGap(at) {
			return false
		}
	}
	return true
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. Equal elements never produce repeated orderings.
func nextPermutation(p Path) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}

// Enumerate returns every gap-avoiding Manhattan-optimal path from src to
// dst on layout. A key paired with itself yields one empty path.
func Enumerate(layout *keypad.Layout, src, dst rune) ([]Path, error) {
	g, err := NewGenerator(layout, src, dst)
	if err != nil {
		return nil, err
	}
	var out []Path
	for p, ok := g.Next(); ok; p, ok = g.Next() {
		out = append(out, p)
	}

	return out, nil
}
