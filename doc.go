// Package keypadchain computes the fewest presses a human needs to type a
// code on a numeric keypad when the keypad is only reachable through a
// chain of robot arms, each steered from a directional keypad.
//
// 🚀 What is in the box?
//
//	keypad/   — Layout, Position, Move; the Numeric and Directional keypads
//	paths/    — lazy enumeration of every shortest gap-free move ordering
//	oracle/   — memoized Cost(from, to, depth) over the directional keypad
//	sequence/ — per-code totals, weighted batch complexity, Expand, Replay
//	config/   — YAML run configuration
//	logging/  — zerolog console + rotating file logger
//	cmd/keypadchain — the command line front end
//
// Quick picture of one level of indirection:
//
//	human ──types──► [ ^ A / < v > ] ──steers──► arm ──presses──► [ 7 8 9 / 4 5 6 / 1 2 3 / 0 A ]
//
// Every extra directional arm in between multiplies the work by roughly
// 2.5, which is why costs are memoized per (from, to, depth) rather than
// expanded as strings.
//
//	go install github.com/katalvlaran/keypadchain/cmd/keypadchain@latest
package keypadchain
