// Package sequence prices whole codes typed on the numeric keypad through a
// stack of robot arms, and combines them into a weighted batch total.
//
// What:
//
//   - Aggregator.TotalCost: minimum human presses for one code at a given
//     indirection depth (number of directional arms between the numeric
//     arm and the human).
//   - Aggregator.Complexity: Σ TotalCost × weight over a batch, the weight
//     being an injected WeightFunc (NumericWeight by default: "029A" → 29).
//   - Aggregator.ComplexityConcurrent: the same, with codes priced on
//     goroutines sharing one oracle cache.
//   - Aggregator.Expand: one concrete minimal press string for a code.
//   - Aggregator.Replay: simulate the stack and recover the typed code.
//   - ReadCodes: one code per line from an io.Reader.
//
// Depth convention:
//
//	depth 0   human ─► [dir pad] ─► numeric arm
//	depth 1   human ─► [dir pad] ─► arm ─► [dir pad] ─► numeric arm
//	depth 2   human ─► [dir pad] ─► arm ─► [dir pad] ─► arm ─► [dir pad] ─► numeric arm
//
// so "029A" costs 12 presses at depth 0, 28 at depth 1 and 68 at depth 2.
//
// Errors:
//
//   - ErrNegativeDepth, ErrInvalidSymbol: rejected input, reported before
//     any cost is computed.
//   - ErrInvalidWeight, ErrCostOverflow: weighting failures.
//   - ErrExpansionTooLong, ErrGapPanic, ErrUnknownPress: Expand and Replay.
package sequence
