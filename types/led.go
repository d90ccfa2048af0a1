package types

// ------------------------
// Channels
// ------------------------

// NumChannels is the number of physical PWM outputs (G, R, B, W).
const NumChannels = 4

// Selector picks which physical output(s) a duty write targets.
type Selector uint8

const (
	SelAll Selector = iota // broadcast to all four channels
	SelCh1                 // green
	SelCh2                 // red
	SelCh3                 // blue
	SelCh4                 // white

	NumSelectors = 5
)

// Valid reports whether s is one of the five known selectors.
func (s Selector) Valid() bool { return s < NumSelectors }

// Index returns the zero-based channel addressed by s, or -1 for a broadcast
// (including any selector outside the known set).
func (s Selector) Index() int {
	if s == SelAll || !s.Valid() {
		return -1
	}
	return int(s) - 1
}

// SelectorFor returns the single-channel selector for a zero-based index.
func SelectorFor(idx int) Selector {
	if idx < 0 || idx >= NumChannels {
		return SelAll
	}
	return Selector(idx + 1)
}

func (s Selector) String() string {
	switch s {
	case SelAll:
		return "all"
	case SelCh1:
		return "ch1"
	case SelCh2:
		return "ch2"
	case SelCh3:
		return "ch3"
	case SelCh4:
		return "ch4"
	default:
		return "all?"
	}
}

// ------------------------
// Duty
// ------------------------

// Duty is a logical per-channel brightness in [0, MaxDuty].
type Duty uint16

const MaxDuty Duty = 4095

// DutyTable holds one duty per channel in G, R, B, W order.
type DutyTable [NumChannels]Duty

// ------------------------
// Mode
// ------------------------

// Mode is the device-wide lighting mode, bounded by the variant's mode count.
type Mode uint8

// ModeOff is the transient all-off state entered at boot and on wrap-around.
const ModeOff Mode = 0

// Variant selects the mode table the firmware runs.
type Variant uint8

const (
	VariantPanel Variant = iota // calibrated static colour tables
	VariantDemo                 // flicker, breathe and single-channel test modes
)

func (v Variant) String() string {
	switch v {
	case VariantPanel:
		return "panel"
	case VariantDemo:
		return "demo"
	default:
		return "unknown"
	}
}
