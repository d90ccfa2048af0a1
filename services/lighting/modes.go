package lighting

import (
	"log/slog"
	"time"

	"ledmode-go/services/config"
	"ledmode-go/types"
	"ledmode-go/x/ramp"
	"ledmode-go/x/timex"
)

// Rand is the random source for the flicker mode; *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Machine owns the current mode, advances it on presses and renders it.
type Machine struct {
	cfg   config.Config
	modes []modeSpec
	n     types.Mode
	mode  types.Mode

	ch    *Channels
	store *Store
	sleep timex.Sleeper
	rnd   Rand
	log   *slog.Logger

	// Animation cursor, reset whenever a mode is entered.
	entered    bool
	active     types.Mode
	breatheSel int
}

// NewMachine loads the persisted mode and clamps it into range; anything the
// variant does not know becomes mode 0 and is written back.
func NewMachine(cfg config.Config, ch *Channels, store *Store, sleep timex.Sleeper, rnd Rand, log *slog.Logger) *Machine {
	m := &Machine{
		cfg:   cfg,
		modes: modesFor(cfg.Variant),
		ch:    ch,
		store: store,
		sleep: sleep,
		rnd:   rnd,
		log:   orDiscard(log),
	}
	m.n = types.Mode(len(m.modes))

	raw := store.Load()
	m.mode = types.Mode(raw)
	if m.mode >= m.n {
		m.set(types.ModeOff)
	}
	m.log.Info("mode loaded", "variant", cfg.Variant.String(), "raw", raw, "mode", m.mode)
	return m
}

func (m *Machine) Mode() types.Mode  { return m.mode }
func (m *Machine) Count() types.Mode { return m.n }

// Press advances to the next mode, wrapping to 0, and persists it before
// returning.
func (m *Machine) Press() types.Mode {
	next := types.Mode((int(m.mode) + 1) % int(m.n))
	m.log.Info("button press", "from", m.mode, "to", next)
	m.set(next)
	return next
}

// Render draws the current mode once. Animated modes block for their own
// pacing delays before returning.
func (m *Machine) Render() {
	if m.mode >= m.n {
		m.ch.Off()
		m.set(types.ModeOff)
		return
	}
	if !m.entered || m.active != m.mode {
		m.enter(m.mode)
	}

	spec := m.modes[m.mode]
	switch spec.kind {
	case kindOff:
		m.ch.Off()
		m.set(1)
	case kindStatic:
		m.ch.Apply(spec.table)
	case kindFlicker:
		m.flicker()
	case kindBreathe:
		m.breathe()
	case kindSolid:
		m.ch.Set(m.cfg.DemoLevel, spec.sel)
	default:
		m.ch.Off()
		m.set(types.ModeOff)
	}
}

func (m *Machine) enter(mode types.Mode) {
	m.entered = true
	m.active = mode
	m.breatheSel = 0
}

// set updates the in-memory mode then persists it. A failed write is logged;
// the device keeps running on the in-memory value.
func (m *Machine) set(mode types.Mode) {
	m.mode = mode
	if err := m.store.Save(byte(mode)); err != nil {
		m.log.Error("mode not persisted", "mode", mode, "err", err)
	}
}

// flicker picks a random duty and a random selector out of all five,
// broadcast included.
func (m *Machine) flicker() {
	d := types.Duty(m.rnd.IntN(int(m.cfg.FlickerMax)))
	sel := types.Selector(m.rnd.IntN(types.NumSelectors))
	m.ch.Set(d, sel)
	m.sleep.Sleep(m.cfg.FlickerPause)
}

func (m *Machine) breathe() {
	sel := types.SelectorFor(m.breatheSel)
	tick := func(d time.Duration) bool {
		m.sleep.Sleep(d)
		return true
	}
	ramp.Triangle(0, m.cfg.BreatheMax, m.cfg.BreatheStep, tick, func(lvl uint16) {
		m.ch.Set(types.Duty(lvl), sel)
	})
	m.breatheSel = (m.breatheSel + 1) % types.NumChannels
}
