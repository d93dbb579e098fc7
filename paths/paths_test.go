package paths_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/keypad"
	"github.com/katalvlaran/keypadchain/paths"
)

// strs renders paths as move strings, sorted, for set comparisons.
func strs(ps []paths.Path) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	sort.Strings(out)
	return out
}

// walkAll collects every shortest gap-free walk from src to dst by plain
// depth-first search, as an independent oracle for Enumerate.
func walkAll(l *keypad.Layout, src, dst rune) []string {
	from, to := l.MustPosition(src), l.MustPosition(dst)
	limit := from.Manhattan(to)
	var out []string
	var walk func(at keypad.Position, prefix []rune)
	walk = func(at keypad.Position, prefix []rune) {
		if len(prefix) == limit {
			if at == to {
				out = append(out, string(prefix))
			}
			return
		}
		for _, m := range keypad.Moves {
			next := at.Add(m.Delta())
			if !l.InBounds(next) || l.IsGap(next) {
				continue
			}
			walk(next, append(prefix, m.Key()))
		}
	}
	walk(from, nil)
	sort.Strings(out)
	return out
}

func TestEnumerate_NilLayout(t *testing.T) {
	ps, err := paths.Enumerate(nil, 'A', '0')
	assert.Nil(t, ps)
	assert.ErrorIs(t, err, paths.ErrLayoutNil)
}

func TestEnumerate_UnknownKey(t *testing.T) {
	_, err := paths.Enumerate(keypad.Directional, '7', 'A')
	assert.ErrorIs(t, err, paths.ErrUnknownKey)
	_, err = paths.Enumerate(keypad.Numeric, 'A', '^')
	assert.ErrorIs(t, err, paths.ErrUnknownKey)
}

func TestEnumerate_SameKey(t *testing.T) {
	ps, err := paths.Enumerate(keypad.Numeric, '5', '5')
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Empty(t, ps[0])
}

func TestEnumerate_StraightLine(t *testing.T) {
	ps, err := paths.Enumerate(keypad.Numeric, 'A', '9')
	require.NoError(t, err)
	assert.Equal(t, []string{"^^^"}, strs(ps))
}

// TestEnumerate_PrunesGap covers both layouts' gap corners.
func TestEnumerate_PrunesGap(t *testing.T) {
	ps, err := paths.Enumerate(keypad.Directional, '<', 'A')
	require.NoError(t, err)
	assert.Equal(t, []string{">>^", ">^>"}, strs(ps))

	ps, err = paths.Enumerate(keypad.Numeric, 'A', '7')
	require.NoError(t, err)
	assert.Len(t, ps, 9, "10 orderings of ^^^<< minus <<^^^")
	assert.NotContains(t, strs(ps), "<<^^^")

	ps, err = paths.Enumerate(keypad.Numeric, '1', '0')
	require.NoError(t, err)
	assert.Equal(t, []string{">v"}, strs(ps))
}

// TestEnumerate_AllPairs checks every pair of both layouts against an
// exhaustive walk: same set, Manhattan length, gap never visited.
func TestEnumerate_AllPairs(t *testing.T) {
	for _, l := range []*keypad.Layout{keypad.Numeric, keypad.Directional} {
		for _, src := range l.Keys() {
			for _, dst := range l.Keys() {
				ps, err := paths.Enumerate(l, src, dst)
				require.NoError(t, err)
				require.NotEmpty(t, ps, "%q->%q", src, dst)

				want := l.Distance(src, dst)
				for _, p := range ps {
					assert.Len(t, p, want, "%q->%q %v", src, dst, p)
					at := l.MustPosition(src)
					for _, m := range p {
						at = at.Add(m.Delta())
						assert.False(t, l.IsGap(at), "%q->%q %v crosses gap", src, dst, p)
					}
					assert.Equal(t, l.MustPosition(dst), at)
				}
				if want > 0 {
					assert.Equal(t, walkAll(l, src, dst), strs(ps), "%q->%q", src, dst)
				}
			}
		}
	}
}

func TestGenerator_ResetRestarts(t *testing.T) {
	g, err := paths.NewGenerator(keypad.Numeric, 'A', '7')
	require.NoError(t, err)

	var first []paths.Path
	for p, ok := g.Next(); ok; p, ok = g.Next() {
		first = append(first, p)
	}
	_, ok := g.Next()
	assert.False(t, ok, "exhausted generator stays exhausted")

	g.Reset()
	var second []paths.Path
	for p, ok := g.Next(); ok; p, ok = g.Next() {
		second = append(second, p)
	}
	assert.Equal(t, first, second)
}

func TestGenerator_LexicographicOrder(t *testing.T) {
	g, err := paths.NewGenerator(keypad.Numeric, 'A', '7')
	require.NoError(t, err)
	p, ok := g.Next()
	require.True(t, ok)
	assert.Equal(t, "^^^<<", p.String())
	p, ok = g.Next()
	require.True(t, ok)
	assert.Equal(t, "^^<^<", p.String())
}

func TestPath_Framed(t *testing.T) {
	p := paths.Path{keypad.Left, keypad.Up}
	assert.Equal(t, []rune{'<', '^'}, p.Keys())
	assert.Equal(t, []rune{'A', '<', '^', 'A'}, p.Framed(keypad.Activate))
	assert.Equal(t, []rune{'A', 'A'}, paths.Path(nil).Framed(keypad.Activate))
}
