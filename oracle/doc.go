// Package oracle prices key presses through a stack of robot arms.
//
// 🚀 What is the press-cost oracle?
//
//	A robot arm hovers a directional keypad. It is steered by someone
//	typing on another directional keypad, who may be another arm, and so on
//	until a human sits at the bottom of the stack. Cost(from, to, depth)
//	is the number of keys the human must press so that the top arm moves
//	from key from to key to and presses it, with depth arms in between.
//
// ✨ How:
//
//   - depth 0: Manhattan(from, to) moves plus one Activate.
//   - depth d: every shortest gap-free path (package paths) is typed one
//     level down as A, m1, ..., mk, A; each step of that sequence is
//     itself a Cost at depth d-1. The cheapest path wins.
//   - The arm one level down always rests on A between commands, which is
//     what makes the sub-problems independent and memoizable.
//
// Memoization:
//
//	One cache per Oracle keyed on (from, to, depth), shared across calls
//	and goroutines. A directional keypad has 5 keys, so at most 25·(D+1)
//	entries exist for depth D; without the cache the recursion is
//	exponential in D.
//
// Complexity:
//
//   - first Cost at depth D: O(25 · D · P · L), P ≤ 3 paths of length L ≤ 3.
//   - cached Cost: O(1).
//
// Costs grow roughly 2.5× per level; sums saturate at math.MaxInt64
// rather than wrap.
package oracle
