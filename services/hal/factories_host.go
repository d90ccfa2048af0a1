// services/hal/factories_host.go
//go:build !rp2040 && !rp2350

package hal

import (
	"errors"
	"io"
	"math/rand/v2"
	"os"
	"sync"

	"ledmode-go/errcode"
	"ledmode-go/services/config"
	"ledmode-go/types"
)

// StoreEnv names a file that backs the mode byte across host runs.
const StoreEnv = "LEDMODE_STORE"

// openBoard builds an inert host board: recording PWM outputs, a released
// button and an erased in-memory EEPROM, or a file store when StoreEnv is set.
func openBoard(cfg config.Config) (*Board, error) {
	var store ByteStore = NewMemStore(256)
	if path := os.Getenv(StoreEnv); path != "" {
		fs, err := OpenFileStore(path)
		if err != nil {
			return nil, err
		}
		store = fs
	}
	var outs [types.NumChannels]PWMOutput
	for i := range outs {
		outs[i] = &FakePWM{}
	}
	return &Board{
		Name:    "host",
		Outputs: outs,
		Button:  NewFakePin(!cfg.ButtonActiveHigh),
		Store:   store,
		Serial:  os.Stderr,
		Rand:    rand.New(rand.NewPCG(0x4c45, 0x4d4f)), // fixed seed: reproducible host runs
	}, nil
}

// ----------------------------- PWM (host) ------------------------------------

// FakePWM records the last duty written and how many writes happened.
type FakePWM struct {
	mu     sync.Mutex
	level  types.Duty
	writes int
}

func (p *FakePWM) Set(d types.Duty) {
	p.mu.Lock()
	p.level = d
	p.writes++
	p.mu.Unlock()
}

func (p *FakePWM) Level() types.Duty {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePWM) Writes() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// ----------------------------- GPIO (host) -----------------------------------

// FakePin is an input whose level is set by the test or simulator.
type FakePin struct {
	mu    sync.RWMutex
	level bool
}

func NewFakePin(level bool) *FakePin { return &FakePin{level: level} }

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	v := p.level
	p.mu.RUnlock()
	return v
}

// ----------------------------- EEPROM (host) ---------------------------------

// MemStore is an erased (0xFF) byte array standing in for the EEPROM.
type MemStore struct {
	mu  sync.Mutex
	mem []byte
}

func NewMemStore(size int) *MemStore {
	m := &MemStore{mem: make([]byte, size)}
	for i := range m.mem {
		m.mem[i] = 0xFF
	}
	return m
}

func (m *MemStore) ReadByte(addr uint16) (byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.mem) {
		return 0, &errcode.E{C: errcode.StoreRead, Op: "mem", Msg: "address out of range"}
	}
	return m.mem[addr], nil
}

func (m *MemStore) WriteByte(addr uint16, v byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if int(addr) >= len(m.mem) {
		return &errcode.E{C: errcode.StoreWrite, Op: "mem", Msg: "address out of range"}
	}
	m.mem[addr] = v
	return nil
}

// FileStore keeps bytes in a regular file at their address offset. Cells past
// the end of the file read as erased (0xFF).
type FileStore struct {
	mu sync.Mutex
	f  *os.File
}

func OpenFileStore(path string) (*FileStore, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, errcode.Wrap(errcode.StoreRead, "file", err)
	}
	return &FileStore{f: f}, nil
}

func (s *FileStore) ReadByte(addr uint16) (byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var b [1]byte
	n, err := s.f.ReadAt(b[:], int64(addr))
	if n == 1 {
		return b[0], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0xFF, nil
	}
	return 0, errcode.Wrap(errcode.StoreRead, "file", err)
}

func (s *FileStore) WriteByte(addr uint16, v byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.f.WriteAt([]byte{v}, int64(addr)); err != nil {
		return errcode.Wrap(errcode.StoreWrite, "file", err)
	}
	if err := s.f.Sync(); err != nil {
		return errcode.Wrap(errcode.StoreWrite, "file", err)
	}
	return nil
}

func (s *FileStore) Close() error { return s.f.Close() }
