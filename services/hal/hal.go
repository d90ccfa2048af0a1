// services/hal/hal.go
package hal

import (
	"io"
	"math/rand/v2"

	"ledmode-go/services/config"
	"ledmode-go/types"
)

// -----------------------------------------------------------------------------
// Contracts
// -----------------------------------------------------------------------------

// PWMOutput applies a logical duty to one physical channel immediately.
type PWMOutput interface {
	Set(d types.Duty)
}

// InputPin returns the instantaneous electrical level of an input.
type InputPin interface {
	Get() bool
}

// ByteStore is non-volatile byte storage. WriteByte returns once the byte is
// durable.
type ByteStore interface {
	ReadByte(addr uint16) (byte, error)
	WriteByte(addr uint16, v byte) error
}

// Board is the brought-up peripheral set the firmware runs against.
type Board struct {
	Name    string
	Outputs [types.NumChannels]PWMOutput
	Button  InputPin
	Store   ByteStore
	Serial  io.Writer
	Rand    *rand.Rand
}

// -----------------------------------------------------------------------------
// Entry point
// -----------------------------------------------------------------------------

// Open performs one-shot peripheral bring-up and starts the PWM timers.
// It must complete before any channel or button access.
func Open(cfg config.Config) (*Board, error) {
	return openBoard(cfg)
}
