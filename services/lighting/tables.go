package lighting

import "ledmode-go/types"

type modeKind uint8

const (
	kindOff     modeKind = iota // all channels dark, then advance to mode 1
	kindStatic                  // fixed duty table
	kindFlicker                 // random duty on a random selector, then pause
	kindBreathe                 // triangle sweep on one channel, channel advances per sweep
	kindSolid                   // one channel at the demo level, others dark
)

type modeSpec struct {
	kind  modeKind
	table types.DutyTable // kindStatic
	sel   types.Selector  // kindSolid
}

func static(g, r, b, w types.Duty) modeSpec {
	return modeSpec{kind: kindStatic, table: types.DutyTable{g, r, b, w}}
}

func solid(sel types.Selector) modeSpec {
	return modeSpec{kind: kindSolid, sel: sel}
}

// Panel calibration tables, channel order G, R, B, W.
// Modes 1 and 2 are measured. Modes 3..7 are placeholder values pending a
// panel calibration run; their names describe intent only.
var panelModes = []modeSpec{
	{kind: kindOff},
	static(2, 2, 2, 2),         // night light
	static(21, 18, 14, 19),     // dim neutral
	static(64, 55, 41, 60),     // low neutral
	static(150, 128, 96, 140),  // medium neutral
	static(0, 0, 0, 255),       // white only
	static(120, 255, 30, 40),   // warm
	static(512, 470, 380, 500), // full panel
}

var demoModes = []modeSpec{
	{kind: kindOff},
	{kind: kindFlicker},
	{kind: kindBreathe},
	solid(types.SelCh1),
	solid(types.SelCh2),
	solid(types.SelCh3),
	solid(types.SelCh4),
}

func modesFor(v types.Variant) []modeSpec {
	if v == types.VariantDemo {
		return demoModes
	}
	return panelModes
}

// ModeCount returns how many modes variant v cycles through, mode 0 included.
func ModeCount(v types.Variant) int { return len(modesFor(v)) }

// PanelTable returns the calibrated duty table for a panel mode.
func PanelTable(m types.Mode) (types.DutyTable, bool) {
	if int(m) >= len(panelModes) || panelModes[m].kind != kindStatic {
		return types.DutyTable{}, false
	}
	return panelModes[m].table, true
}
