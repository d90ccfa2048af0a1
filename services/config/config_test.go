// config/config_test.go
package config

import (
	"testing"
	"time"

	"ledmode-go/errcode"
	"ledmode-go/types"
)

func TestLookup_EmbeddedDevicesFilled(t *testing.T) {
	for _, dev := range []string{"panel", "demo"} {
		c, err := Lookup(dev)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", dev, err)
		}
		if c.Device != dev {
			t.Fatalf("device=%q want %q", c.Device, dev)
		}
		if c.Settle != 10*time.Millisecond || c.Resolution != 1023 || c.BreatheMax != 128 {
			t.Fatalf("defaults not applied: %+v", c)
		}
	}
	c, _ := Lookup("demo")
	if c.Variant != types.VariantDemo || c.FlickerPause != time.Second || c.FlickerMax != 40 {
		t.Fatalf("unexpected demo config: %+v", c)
	}
}

func TestLookup_Errors(t *testing.T) {
	if _, err := Lookup(""); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("empty device: got %v", err)
	}
	if _, err := Lookup("nope"); errcode.Of(err) != errcode.UnknownDevice {
		t.Fatalf("unknown device: got %v", err)
	}
}

func TestLookup_OverrideHook(t *testing.T) {
	old := EmbeddedConfigLookup
	EmbeddedConfigLookup = func(device string) (Config, bool) {
		if device != "bench" {
			return Config{}, false
		}
		return Config{Variant: types.VariantDemo, Settle: 25 * time.Millisecond, Resolution: 255}, true
	}
	t.Cleanup(func() { EmbeddedConfigLookup = old })

	c, err := Lookup("bench")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if c.Settle != 25*time.Millisecond || c.Resolution != 255 {
		t.Fatalf("override values lost: %+v", c)
	}
	if c.BreatheStep != Defaults.BreatheStep {
		t.Fatalf("defaults not merged: %+v", c)
	}
}

func TestNormalise_Rejects(t *testing.T) {
	bad := []Config{
		{Variant: types.Variant(9)},
		{Variant: types.VariantPanel, Resolution: 5000},
		{Variant: types.VariantDemo, HeartbeatInterval: -time.Second},
	}
	for i, c := range bad {
		if err := c.Normalise(); errcode.Of(err) != errcode.InvalidParams {
			t.Fatalf("case %d: got %v", i, err)
		}
	}
}

func TestNormalise_ClampsAnimationBounds(t *testing.T) {
	c := Config{Variant: types.VariantDemo, FlickerMax: 9000, BreatheMax: 9000}
	if err := c.Normalise(); err != nil {
		t.Fatalf("Normalise: %v", err)
	}
	if c.FlickerMax != uint16(types.MaxDuty)+1 || c.BreatheMax != uint16(types.MaxDuty) {
		t.Fatalf("bounds not clamped: flicker=%d breathe=%d", c.FlickerMax, c.BreatheMax)
	}
}
