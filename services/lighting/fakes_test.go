package lighting

import (
	"errors"
	"testing"
	"time"

	"ledmode-go/services/config"
	"ledmode-go/types"
)

// ---- Test doubles ----

type recOut struct {
	level  types.Duty
	writes int
}

func (o *recOut) Set(d types.Duty) { o.level = d; o.writes++ }

func newRecChannels() (*Channels, [types.NumChannels]*recOut) {
	var recs [types.NumChannels]*recOut
	var outs [types.NumChannels]Output
	for i := range recs {
		recs[i] = &recOut{}
		outs[i] = recs[i]
	}
	return NewChannels(outs), recs
}

func levelsOf(recs [types.NumChannels]*recOut) types.DutyTable {
	var t types.DutyTable
	for i, r := range recs {
		t[i] = r.level
	}
	return t
}

// fakeSleep records requested delays without blocking.
type fakeSleep struct {
	calls []time.Duration
	total time.Duration
}

func (s *fakeSleep) Sleep(d time.Duration) {
	s.calls = append(s.calls, d)
	s.total += d
}

// memStore is a 256-byte EEPROM stand-in with failure injection.
type memStore struct {
	mem       [256]byte
	writes    int
	readErr   error
	writeErr  error
	dropWrite bool // accept writes without storing them
}

func newMemStore(fill byte) *memStore {
	m := &memStore{}
	for i := range m.mem {
		m.mem[i] = fill
	}
	return m
}

func (m *memStore) ReadByte(addr uint16) (byte, error) {
	if m.readErr != nil {
		return 0, m.readErr
	}
	return m.mem[byte(addr)], nil
}

func (m *memStore) WriteByte(addr uint16, v byte) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.writes++
	if !m.dropWrite {
		m.mem[byte(addr)] = v
	}
	return nil
}

var errBus = errors.New("i2c nack")

// seqRand replays vals (mod n) and records each bound it was asked for.
type seqRand struct {
	vals   []int
	i      int
	bounds []int
}

func (r *seqRand) IntN(n int) int {
	r.bounds = append(r.bounds, n)
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// scriptPin returns seq in order, then rest forever.
type scriptPin struct {
	seq  []bool
	i    int
	rest bool
}

func (p *scriptPin) Get() bool {
	if p.i < len(p.seq) {
		v := p.seq[p.i]
		p.i++
		return v
	}
	return p.rest
}

// ---- Fixture ----

type rig struct {
	cfg   config.Config
	ch    *Channels
	recs  [types.NumChannels]*recOut
	mem   *memStore
	store *Store
	sleep *fakeSleep
	rnd   *seqRand
	m     *Machine
}

func newRig(t *testing.T, device string, stored byte) *rig {
	t.Helper()
	cfg, err := config.Lookup(device)
	if err != nil {
		t.Fatalf("config.Lookup(%q): %v", device, err)
	}
	r := &rig{cfg: cfg, mem: newMemStore(0xFF), sleep: &fakeSleep{}, rnd: &seqRand{vals: []int{0}}}
	r.mem.mem[byte(cfg.StoreAddr)] = stored
	r.ch, r.recs = newRecChannels()
	r.store = NewStore(r.mem, cfg.StoreAddr, nil)
	r.m = NewMachine(cfg, r.ch, r.store, r.sleep, r.rnd, nil)
	return r
}

func (r *rig) stored() byte { return r.mem.mem[byte(r.cfg.StoreAddr)] }
