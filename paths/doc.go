// Package paths enumerates the shortest ways an arm can travel between two
// keys of a keypad.Layout without ever hovering its gap.
//
// On a rectangular grid with four unit moves, any ordering of the same
// multiset of moves ends on the same cell after Manhattan(src, dst) steps,
// and no ordering can be shorter. So the candidates are exactly the distinct
// orderings of that multiset whose every prefix avoids the gap.
//
// The Generator walks those orderings lazily in lexicographic order using
// the classic next-permutation step, which skips repeated orderings of equal
// moves for free:
//
//	gen, _ := paths.NewGenerator(keypad.Numeric, 'A', '7')
//	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
//		fmt.Println(p) // ^^^<< ^^<^< ... (never <<^^^, it crosses the gap)
//	}
//
// Complexity:
//
//   - Next: amortized O(k) per ordering, k = Manhattan(src, dst).
//   - Full enumeration: O(k · C(k, |Δrow|)) orderings at most.
//
// Errors:
//
//   - ErrLayoutNil: a nil layout was supplied.
//   - ErrUnknownKey: source or destination is not on the layout.
package paths
