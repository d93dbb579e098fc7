package keypad

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout construction.
var (
	// ErrEmptyGrid indicates the rows describe no cell at all.
	ErrEmptyGrid = errors.New("keypad: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("keypad: all rows must have the same length")
	// ErrDuplicateKey indicates a key rune assigned to more than one cell.
	ErrDuplicateKey = errors.New("keypad: key assigned to more than one cell")
	// ErrGapCount indicates the layout does not have exactly one gap cell.
	ErrGapCount = errors.New("keypad: layout must have exactly one gap cell")
	// ErrHomeNotFound indicates the home key is not part of the layout.
	ErrHomeNotFound = errors.New("keypad: home key not found in layout")
)

// Gap is the rune marking the forbidden cell in layout rows.
const Gap = '#'

// Activate is the home key of both builtin layouts. Pressing it on a
// directional keypad makes the controlled arm press the key it hovers.
const Activate = 'A'

// Position is a cell coordinate on a layout grid. Row grows downwards,
// Col grows to the right.
type Position struct {
	Row, Col int
}

// Add returns p translated by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Sub returns the offset leading from q to p.
func (p Position) Sub(q Position) Position {
	return Position{Row: p.Row - q.Row, Col: p.Col - q.Col}
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	d := p.Sub(q)
	return abs(d.Row) + abs(d.Col)
}

// String renders p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Move is one unit step of an arm over a keypad.
type Move uint8

const (
	// Up moves one row towards the top.
	Up Move = iota
	// Down moves one row towards the bottom.
	Down
	// Left moves one column to the left.
	Left
	// Right moves one column to the right.
	Right
)

// Moves lists the four unit moves in their canonical order.
var Moves = [...]Move{Up, Down, Left, Right}

var (
	moveDeltas = [...]Position{Up: {-1, 0}, Down: {1, 0}, Left: {0, -1}, Right: {0, 1}}
	moveKeys   = [...]rune{Up: '^', Down: 'v', Left: '<', Right: '>'}
)

// Delta returns the unit offset of m.
func (m Move) Delta() Position {
	return moveDeltas[m]
}

// Key returns the directional key that commands m.
func (m Move) Key() rune {
	return moveKeys[m]
}

// String returns the key of m.
func (m Move) String() string {
	return string(moveKeys[m])
}

// MoveForKey maps a directional key back to its Move.
func MoveForKey(key rune) (Move, bool) {
	for m, k := range moveKeys {
		if k == key {
			return Move(m), true
		}
	}
	return 0, false
}
