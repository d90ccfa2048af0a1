package config

import (
	"time"

	"ledmode-go/types"
)

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (selected at link time in main)
// Val: configuration for that device; zero fields take Defaults.
// -----------------------------------------------------------------------------

var embeddedConfigs = map[string]Config{
	// Calibrated four-channel panel.
	"panel": {
		Variant:           types.VariantPanel,
		HeartbeatInterval: 10 * time.Second,
	},
	// Bench demo board.
	"demo": {
		Variant:           types.VariantDemo,
		HeartbeatInterval: 5 * time.Second,
	},
}
