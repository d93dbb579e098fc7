// Package oracle_test verifies the oracle cache under concurrent callers.
package oracle_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypadchain/keypad"
)

// TestConcurrentCost races many goroutines on one cold cache and checks
// every answer against a privately computed reference.
func TestConcurrentCost(t *testing.T) {
	const depth = 25
	ref := newOracle(t)
	shared := newOracle(t)
	keys := keypad.Directional.Keys()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(offset int) {
			defer wg.Done()
			// each worker walks the pairs starting from a different one
			for i := range keys {
				a := keys[(i+offset)%len(keys)]
				for _, b := range keys {
					shared.Cost(a, b, depth)
				}
			}
		}(w)
	}
	wg.Wait()

	for _, a := range keys {
		for _, b := range keys {
			require.Equal(t, ref.Cost(a, b, depth), shared.Cost(a, b, depth), "%q->%q", a, b)
		}
	}
	require.LessOrEqual(t, shared.Stats().Entries, 25*(depth+1))
}

// TestConcurrentReset mixes Reset with Cost; answers must stay correct.
func TestConcurrentReset(t *testing.T) {
	want := newOracle(t).Cost('A', '<', 10)
	o := newOracle(t)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			assert.Equal(t, want, o.Cost('A', '<', 10))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			o.Reset()
		}
	}()
	wg.Wait()
}
