// Package keypad describes the keypads an actuator arm can hover over:
// a rectangular grid of keys with exactly one forbidden "gap" cell.
//
// What:
//
//   - Layout maps every key rune to its Position and remembers the gap.
//   - Position is an explicit (Row, Col) pair with Add, Sub and Manhattan.
//   - Move is one of the four unit steps, each typed on a directional keypad.
//   - Numeric and Directional are the two process-wide layouts:
//
//	Numeric           Directional
//	+---+---+---+     +---+---+---+
//	| 7 | 8 | 9 |     |   | ^ | A |
//	+---+---+---+     +---+---+---+
//	| 4 | 5 | 6 |     | < | v | > |
//	+---+---+---+     +---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	|   | 0 | A |
//	+---+---+---+
//
// Layouts are immutable once built and safe to share between goroutines.
//
// Complexity:
//
//   - NewLayout: O(W×H) time and memory.
//   - Position, KeyAt, IsGap: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrDuplicateKey: a key rune appears twice.
//   - ErrGapCount: zero or several gap cells.
//   - ErrHomeNotFound: the home key is not on the grid.
package keypad
