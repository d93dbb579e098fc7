package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/sequence"
)

// TestReplay_KnownSequences replays the hand-written minimal sequences for
// "029A" at each of the first three depths.
func TestReplay_KnownSequences(t *testing.T) {
	a := newAggregator(t)
	cases := []struct {
		depth   int
		presses string
	}{
		{0, "<A^A>^^AvvvA"},
		{1, "v<<A>>^A<A>AvA<^AA>A<vAAA>^A"},
		{2, "<vA<AA>>^AvAA<^A>A<v<A>>^AvA^A<vA>^A<v<A>^A>AAvA^A<v<A>A>^AAAvA<^A>A"},
	}
	for _, tc := range cases {
		got, err := a.Replay(tc.presses, tc.depth)
		require.NoError(t, err)
		assert.Equal(t, "029A", got, "depth %d", tc.depth)

		cost, err := a.TotalCost("029A", tc.depth)
		require.NoError(t, err)
		assert.Equal(t, int64(len(tc.presses)), cost, "depth %d", tc.depth)
	}
}

func TestReplay_Errors(t *testing.T) {
	a := newAggregator(t)

	_, err := a.Replay("<<", 0)
	assert.ErrorIs(t, err, sequence.ErrGapPanic, "A -> 0 -> gap on the numeric keypad")

	_, err = a.Replay("v", 0)
	assert.ErrorIs(t, err, sequence.ErrGapPanic, "below A is off the keypad")

	_, err = a.Replay("<", 1)
	require.NoError(t, err, "A -> ^ on the directional keypad is fine")
	_, err = a.Replay("<<", 1)
	assert.ErrorIs(t, err, sequence.ErrGapPanic)

	_, err = a.Replay("x", 1)
	assert.ErrorIs(t, err, sequence.ErrUnknownPress)

	_, err = a.Replay("A", -1)
	assert.ErrorIs(t, err, sequence.ErrNegativeDepth)
}

func TestReplay_Empty(t *testing.T) {
	a := newAggregator(t)
	got, err := a.Replay("", 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestExpand_RoundTrip expands every sample code and replays it back.
func TestExpand_RoundTrip(t *testing.T) {
	a := newAggregator(t)
	for _, code := range sample {
		for depth := 0; depth <= 4; depth++ {
			presses, err := a.Expand(code, depth)
			require.NoError(t, err)

			cost, err := a.TotalCost(code, depth)
			require.NoError(t, err)
			assert.Equal(t, int64(len(presses)), cost, "%s depth %d", code, depth)

			typed, err := a.Replay(presses, depth)
			require.NoError(t, err)
			assert.Equal(t, code, typed, "%s depth %d", code, depth)
		}
	}
}

func TestExpand_Limits(t *testing.T) {
	a := newAggregator(t, sequence.WithMaxExpansion(64))

	_, err := a.Expand("029A", 2)
	assert.ErrorIs(t, err, sequence.ErrExpansionTooLong, "68 presses > 64")

	presses, err := a.Expand("029A", 1)
	require.NoError(t, err)
	assert.Len(t, presses, 28)

	_, err = a.Expand("029A", -1)
	assert.ErrorIs(t, err, sequence.ErrNegativeDepth)

	presses, err = a.Expand("", 3)
	require.NoError(t, err)
	assert.Empty(t, presses)
}
