package lighting

import (
	"context"

	"ledmode-go/types"
)

// Monitor observes the loop after each iteration (e.g. a heartbeat log).
type Monitor interface {
	Tick(mode types.Mode, levels types.DutyTable)
}

// Loop is the single cooperative thread of control: poll, advance, render.
type Loop struct {
	btn *Button
	m   *Machine
	mon Monitor
}

// NewLoop ties the button to the machine. mon may be nil.
func NewLoop(btn *Button, m *Machine, mon Monitor) *Loop {
	return &Loop{btn: btn, m: m, mon: mon}
}

// Step runs one iteration. It blocks for as long as a press is held and for
// any pacing delay in the active mode.
func (l *Loop) Step() {
	if l.btn.Poll() {
		l.m.Press()
	}
	l.m.Render()
	if l.mon != nil {
		l.mon.Tick(l.m.Mode(), l.m.ch.Levels())
	}
}

// Run steps until ctx is cancelled. Cancellation is only observed between
// iterations; delays inside a step always run to completion.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		l.Step()
	}
}
