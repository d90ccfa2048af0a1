package config

import (
	"time"

	"ledmode-go/errcode"
	"ledmode-go/types"
	"ledmode-go/x/mathx"
)

// -----------------------------------------------------------------------------
// Config
// -----------------------------------------------------------------------------

// Config is the per-device firmware configuration. Zero durations and limits
// are filled from Defaults by Normalise.
type Config struct {
	Device  string
	Variant types.Variant

	// Persistent mode byte location in the EEPROM.
	StoreAddr uint16

	// Button
	ButtonActiveHigh bool
	Settle           time.Duration

	// Demo animation pacing and levels.
	FlickerPause time.Duration
	FlickerMax   uint16 // exclusive upper bound of random flicker duty
	BreatheStep  time.Duration
	BreatheMax   uint16
	DemoLevel    types.Duty

	// PWM
	Resolution types.Duty // logical full scale mapped onto the peripheral top
	PWMFreqHz  uint64

	// 0 disables the heartbeat log line.
	HeartbeatInterval time.Duration
}

// Defaults mirror the reference firmware timings.
var Defaults = Config{
	Settle:       10 * time.Millisecond,
	FlickerPause: 1 * time.Second,
	FlickerMax:   40,
	BreatheStep:  10 * time.Millisecond,
	BreatheMax:   128,
	DemoLevel:    0x00FF,
	Resolution:   1023,
	PWMFreqHz:    1000,
}

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) (Config, bool) {
	c, ok := embeddedConfigs[device]
	return c, ok
}

// Lookup resolves and normalises the embedded config for device.
func Lookup(device string) (Config, error) {
	if device == "" {
		return Config{}, &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "missing device id"}
	}
	c, ok := EmbeddedConfigLookup(device)
	if !ok {
		return Config{}, &errcode.E{C: errcode.UnknownDevice, Op: "config", Msg: device}
	}
	c.Device = device
	if err := c.Normalise(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Normalise fills unset fields from Defaults and validates the rest.
func (c *Config) Normalise() error {
	if c.Variant != types.VariantPanel && c.Variant != types.VariantDemo {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "variant"}
	}
	if c.Settle == 0 {
		c.Settle = Defaults.Settle
	}
	if c.FlickerPause == 0 {
		c.FlickerPause = Defaults.FlickerPause
	}
	if c.FlickerMax == 0 {
		c.FlickerMax = Defaults.FlickerMax
	}
	if c.BreatheStep == 0 {
		c.BreatheStep = Defaults.BreatheStep
	}
	if c.BreatheMax == 0 {
		c.BreatheMax = Defaults.BreatheMax
	}
	if c.DemoLevel == 0 {
		c.DemoLevel = Defaults.DemoLevel
	}
	if c.Resolution == 0 {
		c.Resolution = Defaults.Resolution
	}
	if c.PWMFreqHz == 0 {
		c.PWMFreqHz = Defaults.PWMFreqHz
	}
	// Flicker draws from [0, FlickerMax); breathe peaks at BreatheMax.
	c.FlickerMax = mathx.Clamp(c.FlickerMax, 1, uint16(types.MaxDuty)+1)
	c.BreatheMax = mathx.Clamp(c.BreatheMax, 1, uint16(types.MaxDuty))
	if c.Resolution > types.MaxDuty || c.DemoLevel > types.MaxDuty {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "duty above 4095"}
	}
	if c.HeartbeatInterval < 0 {
		return &errcode.E{C: errcode.InvalidParams, Op: "config", Msg: "heartbeat interval"}
	}
	return nil
}
