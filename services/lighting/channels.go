package lighting

import (
	"ledmode-go/types"
	"ledmode-go/x/mathx"
)

// Output applies a duty to one physical PWM channel.
type Output interface {
	Set(d types.Duty)
}

// Channels fans logical duty writes out to the four physical outputs.
type Channels struct {
	outs   [types.NumChannels]Output
	levels types.DutyTable
}

func NewChannels(outs [types.NumChannels]Output) *Channels {
	return &Channels{outs: outs}
}

// Set writes d to the channel(s) chosen by sel. A single-channel selector
// drives every other channel to 0; SelAll and unknown selectors broadcast.
func (c *Channels) Set(d types.Duty, sel types.Selector) {
	d = mathx.Min(d, types.MaxDuty)
	idx := sel.Index()
	for i := range c.outs {
		v := d
		if idx >= 0 && i != idx {
			v = 0
		}
		c.write(i, v)
	}
}

// Apply writes one table entry per channel.
func (c *Channels) Apply(t types.DutyTable) {
	for i, d := range t {
		c.write(i, mathx.Min(d, types.MaxDuty))
	}
}

// Off drives all channels to 0.
func (c *Channels) Off() { c.Set(0, types.SelAll) }

// Levels returns the duties last written, in G, R, B, W order.
func (c *Channels) Levels() types.DutyTable { return c.levels }

func (c *Channels) write(i int, d types.Duty) {
	c.outs[i].Set(d)
	c.levels[i] = d
}
