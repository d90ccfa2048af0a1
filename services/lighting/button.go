package lighting

import (
	"time"

	"ledmode-go/x/timex"
)

// Pin reads the instantaneous level of the button input.
type Pin interface {
	Get() bool
}

// Button turns a bouncing contact into one event per press-and-release.
type Button struct {
	pin        Pin
	activeHigh bool
	settle     time.Duration
	sleep      timex.Sleeper
}

// NewButton wraps pin. The input is active-low unless activeHigh is set.
func NewButton(pin Pin, activeHigh bool, settle time.Duration, sleep timex.Sleeper) *Button {
	return &Button{pin: pin, activeHigh: activeHigh, settle: settle, sleep: sleep}
}

// Poll returns false at once when the button is not held. Otherwise it
// blocks through the leading settle, the whole press and the trailing
// settle, then returns true. A button that never releases blocks forever.
func (b *Button) Poll() bool {
	if !b.pressed() {
		return false
	}
	b.sleep.Sleep(b.settle)
	for b.pressed() {
	}
	b.sleep.Sleep(b.settle)
	return true
}

func (b *Button) pressed() bool {
	if b.activeHigh {
		return b.pin.Get()
	}
	return !b.pin.Get()
}
