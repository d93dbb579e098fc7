package sequence

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/keypadchain/keypad"
)

// arm is one actuator of the stack: the keypad it hovers and where it is.
type arm struct {
	layout *keypad.Layout
	at     keypad.Position
}

// Replay simulates the stack: presses are typed by the human on the keypad
// steering the first of depth directional arms, each directional arm types
// on the keypad steering the next one, and the last arm hovers the numeric
// keypad. It returns the keys the numeric arm pressed.
//
// Every arm starts on its home key. A move that would put an arm over the
// gap or off its keypad aborts with ErrGapPanic; a press that is neither a
// move nor Activate fails with ErrUnknownPress.
func (a *Aggregator) Replay(presses string, depth int) (string, error) {
	if depth < 0 {
		return "", fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}
	directional := a.oracle.Layout()
	arms := make([]arm, depth+1)
	for i := range arms {
		l := directional
		if i == depth {
			l = a.numeric
		}
		arms[i] = arm{layout: l, at: l.MustPosition(l.Home())}
	}

	var out strings.Builder
	activate := directional.Home()
	for n, press := range presses {
		key, level := press, 0
		for level <= depth {
			if key != activate {
				m, ok := keypad.MoveForKey(key)
				if !ok {
					return "", fmt.Errorf("%w: %q at press %d", ErrUnknownPress, key, n)
				}
				ar := &arms[level]
				next := ar.at.Add(m.Delta())
				if !ar.layout.InBounds(next) || ar.layout.IsGap(next) {
					return "", fmt.Errorf("%w: arm %d at press %d", ErrGapPanic, level, n)
				}
				ar.at = next
				break
			}
			// Activate: this arm presses the key it hovers.
			key, _ = arms[level].layout.KeyAt(arms[level].at)
			level++
		}
		if level > depth {
			out.WriteRune(key)
		}
	}
	return out.String(), nil
}
