package keypad

import (
	"fmt"
	"sort"
)

// Layout is an immutable keypad: a rectangular grid where every cell but
// one holds a distinct key, and the remaining cell is the gap.
type Layout struct {
	width, height int
	cells         [][]rune
	index         map[rune]Position
	gap           Position
	home          rune
}

// Numeric is the primary keypad: digits 0-9 and Activate, gap bottom-left.
var Numeric = MustLayout([]string{
	"789",
	"456",
	"123",
	"#0A",
}, Activate)

// Directional is the keypad that commands an arm: four moves and Activate,
// gap top-left.
var Directional = MustLayout([]string{
	"#^A",
	"<v>",
}, Activate)

// NewLayout builds a Layout from row strings, one rune per cell, with the
// gap written as Gap. The input is copied.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrDuplicateKey, ErrGapCount or
// ErrHomeNotFound for malformed rows.
// Complexity: O(W×H).
func NewLayout(rows []string, home rune) (*Layout, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len([]rune(rows[0]))
	l := &Layout{
		width:  w,
		height: h,
		cells:  make([][]rune, h),
		index:  make(map[rune]Position, w*h-1),
		home:   home,
	}
	gaps := 0
	for r, row := range rows {
		cells := []rune(row)
		if len(cells) != w {
			return nil, ErrNonRectangular
		}
		l.cells[r] = cells
		for c, key := range cells {
			p := Position{Row: r, Col: c}
			if key == Gap {
				gaps++
				l.gap = p
				continue
			}
			if prev, dup := l.index[key]; dup {
				return nil, fmt.Errorf("%w: %q at %v and %v", ErrDuplicateKey, key, prev, p)
			}
			l.index[key] = p
		}
	}
	if gaps != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrGapCount, gaps)
	}
	if _, ok := l.index[home]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrHomeNotFound, home)
	}

	return l, nil
}

// MustLayout is NewLayout for layouts fixed at compile time; it panics on
// malformed rows.
func MustLayout(rows []string, home rune) *Layout {
	l, err := NewLayout(rows, home)
	if err != nil {
		panic(err)
	}
	return l
}

// Width returns the number of columns.
func (l *Layout) Width() int { return l.width }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.height }

// Home returns the key the arm rests on before and after every press.
func (l *Layout) Home() rune { return l.home }

// Gap returns the position of the forbidden cell.
func (l *Layout) Gap() Position { return l.gap }

// Has reports whether key is on the layout.
func (l *Layout) Has(key rune) bool {
	_, ok := l.index[key]
	return ok
}

// Position returns the cell of key.
// Complexity: O(1).
func (l *Layout) Position(key rune) (Position, bool) {
	p, ok := l.index[key]
	return p, ok
}

// MustPosition returns the cell of key and panics when key is not on the
// layout. Callers validate keys before reaching it.
func (l *Layout) MustPosition(key rune) Position {
	p, ok := l.index[key]
	if !ok {
		panic(fmt.Sprintf("keypad: key %q not on layout", key))
	}
	return p
}

// InBounds reports whether p lies within the grid.
func (l *Layout) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < l.height && p.Col >= 0 && p.Col < l.width
}

// IsGap reports whether p is the forbidden cell.
func (l *Layout) IsGap(p Position) bool {
	return p == l.gap
}

// KeyAt returns the key at p. ok is false outside the grid and on the gap.
func (l *Layout) KeyAt(p Position) (key rune, ok bool) {
	if !l.InBounds(p) || l.IsGap(p) {
		return 0, false
	}
	return l.cells[p.Row][p.Col], true
}

// Keys returns every key of the layout in row-major order.
func (l *Layout) Keys() []rune {
	keys := make([]rune, 0, len(l.index))
	for k := range l.index {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		pi, pj := l.index[keys[i]], l.index[keys[j]]
		if pi.Row != pj.Row {
			return pi.Row < pj.Row
		}
		return pi.Col < pj.Col
	})
	return keys
}

// Distance returns the Manhattan distance between two keys.
// Panics when either key is not on the layout.
func (l *Layout) Distance(from, to rune) int {
	return l.MustPosition(from).Manhattan(l.MustPosition(to))
}
