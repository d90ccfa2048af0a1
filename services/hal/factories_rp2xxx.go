// services/hal/factories_rp2xxx.go
//go:build rp2040 || rp2350

package hal

import (
	"machine"
	"math/rand/v2"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/at24cx"

	"ledmode-go/errcode"
	"ledmode-go/services/config"
	"ledmode-go/services/hal/boards"
	"ledmode-go/types"
	"ledmode-go/x/mathx"
	"ledmode-go/x/timex"
)

// AT24Cxx internal write cycle (tWR) upper bound.
const eepromWriteCycle = 5 * time.Millisecond

func openBoard(cfg config.Config) (*Board, error) {
	b := boards.PicoLED4

	serial, err := openSerial(b)
	if err != nil {
		return nil, err
	}

	var outs [types.NumChannels]PWMOutput
	slices := map[uint8]bool{}
	for i, n := range b.Channels {
		o, err := openPWM(machine.Pin(n), cfg, slices)
		if err != nil {
			return nil, err
		}
		// Outputs start dark until the first render.
		o.Set(0)
		outs[i] = o
	}

	btn := machine.Pin(b.Button)
	if cfg.ButtonActiveHigh {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	} else {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	store, err := openEEPROM(b)
	if err != nil {
		return nil, err
	}

	return &Board{
		Name:    b.Name,
		Outputs: outs,
		Button:  btn,
		Store:   store,
		Serial:  serial,
		Rand:    newRand(),
	}, nil
}

// -----------------------------------------------------------------------------
// PWM
// -----------------------------------------------------------------------------

// Local interface to avoid depending on an unexported concrete type in machine.
type pwmCtrl interface {
	Configure(cfg machine.PWMConfig) error
	Channel(pin machine.Pin) (uint8, error)
	Top() uint32
	Set(channel uint8, value uint32)
}

// Select controller handle for a given slice number (0..7).
func pwmGroupBySlice(slice uint8) pwmCtrl {
	switch slice {
	case 0:
		return machine.PWM0
	case 1:
		return machine.PWM1
	case 2:
		return machine.PWM2
	case 3:
		return machine.PWM3
	case 4:
		return machine.PWM4
	case 5:
		return machine.PWM5
	case 6:
		return machine.PWM6
	default:
		return machine.PWM7
	}
}

// rp2PWM drives one slice channel, scaling logical [0..res] onto the slice top.
type rp2PWM struct {
	ctrl  pwmCtrl
	chIdx uint8
	res   uint32
}

func (p *rp2PWM) Set(d types.Duty) {
	p.ctrl.Set(p.chIdx, mathx.Scale(uint32(d), p.res, p.ctrl.Top()))
}

func openPWM(pin machine.Pin, cfg config.Config, configured map[uint8]bool) (*rp2PWM, error) {
	slice, err := machine.PWMPeripheral(pin)
	if err != nil {
		return nil, &errcode.E{C: errcode.Unsupported, Op: "pwm", Msg: "pin has no PWM slice", Err: err}
	}
	ctrl := pwmGroupBySlice(slice)
	// First channel on a slice starts the slice timer.
	if !configured[slice] {
		period := timex.PeriodFromHz(uint32(cfg.PWMFreqHz))
		if err := ctrl.Configure(machine.PWMConfig{Period: period}); err != nil {
			return nil, errcode.Wrap(errcode.Error, "pwm", err)
		}
		configured[slice] = true
	}
	ch, err := ctrl.Channel(pin)
	if err != nil {
		return nil, errcode.Wrap(errcode.UnknownPin, "pwm", err)
	}
	return &rp2PWM{ctrl: ctrl, chIdx: ch, res: uint32(cfg.Resolution)}, nil
}

// -----------------------------------------------------------------------------
// EEPROM
// -----------------------------------------------------------------------------

type eepromStore struct {
	dev at24cx.Device
}

func (e *eepromStore) ReadByte(addr uint16) (byte, error) {
	return e.dev.ReadByte(addr)
}

func (e *eepromStore) WriteByte(addr uint16, v byte) error {
	if err := e.dev.WriteByte(addr, v); err != nil {
		return err
	}
	// The part NACKs until its internal write completes.
	time.Sleep(eepromWriteCycle)
	return nil
}

func openEEPROM(b boards.Board) (*eepromStore, error) {
	var hw *machine.I2C
	switch b.I2C {
	case "i2c0":
		hw = machine.I2C0
	case "i2c1":
		hw = machine.I2C1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "eeprom", Msg: "unknown bus " + b.I2C}
	}
	err := hw.Configure(machine.I2CConfig{
		SDA:       machine.Pin(b.SDA),
		SCL:       machine.Pin(b.SCL),
		Frequency: b.I2CHz,
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "eeprom", err)
	}
	dev := at24cx.New(hw)
	dev.Configure(at24cx.Config{})
	dev.Address = b.EEPROMAddr
	return &eepromStore{dev: dev}, nil
}

// -----------------------------------------------------------------------------
// Serial + RNG
// -----------------------------------------------------------------------------

func openSerial(b boards.Board) (*uartx.UART, error) {
	var hw *uartx.UART
	switch b.UART {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, &errcode.E{C: errcode.InvalidParams, Op: "serial", Msg: "unknown uart " + b.UART}
	}
	err := hw.Configure(uartx.UARTConfig{
		BaudRate: b.Baud,
		TX:       machine.Pin(b.TX),
		RX:       machine.Pin(b.RX),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.Error, "serial", err)
	}
	return hw, nil
}

func newRand() *rand.Rand {
	var seed [2]uint64
	for i := range seed {
		hi, err1 := machine.GetRNG()
		lo, err2 := machine.GetRNG()
		if err1 != nil || err2 != nil {
			seed[i] = uint64(time.Now().UnixNano())
			continue
		}
		seed[i] = uint64(hi)<<32 | uint64(lo)
	}
	return rand.New(rand.NewPCG(seed[0], seed[1]))
}
