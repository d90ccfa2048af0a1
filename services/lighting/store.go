package lighting

import (
	"log/slog"

	"ledmode-go/errcode"
)

// ByteStore is non-volatile byte storage; WriteByte is durable on return.
type ByteStore interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, v byte) error
}

// unreadable is what Load reports when the device cannot be read; it is
// treated like an erased cell.
const unreadable = 0xFF

// Store keeps the mode byte at a fixed address.
type Store struct {
	dev  ByteStore
	addr uint16
	log  *slog.Logger
}

func NewStore(dev ByteStore, addr uint16, log *slog.Logger) *Store {
	return &Store{dev: dev, addr: addr, log: orDiscard(log)}
}

// Load returns the raw stored byte. It is not range checked.
func (s *Store) Load() byte {
	v, err := s.dev.ReadByte(s.addr)
	if err != nil {
		s.log.Error("store read failed", "addr", s.addr, "err", errcode.Wrap(errcode.StoreRead, "load", err))
		return unreadable
	}
	return v
}

// Save writes v and reads it back.
func (s *Store) Save(v byte) error {
	if err := s.dev.WriteByte(s.addr, v); err != nil {
		return errcode.Wrap(errcode.StoreWrite, "save", err)
	}
	got, err := s.dev.ReadByte(s.addr)
	if err != nil {
		return errcode.Wrap(errcode.StoreRead, "save", err)
	}
	if got != v {
		return &errcode.E{C: errcode.StoreVerify, Op: "save", Msg: "read-back mismatch"}
	}
	return nil
}

func orDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
