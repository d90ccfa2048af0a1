package ramp

import "time"

// Step sets the new logical level.
type Step func(level uint16)

// Tick waits for d and reports whether to continue (false => cancelled).
type Tick func(d time.Duration) bool

// Triangle runs one synchronous up-then-down sweep in unit steps:
// lo, lo+1 .. hi-1 on the way up, then hi, hi-1 .. lo+1 on the way down.
// Each level is applied with set and followed by tick(stepDur).
// It returns false if tick cancelled the sweep part-way.
// hi <= lo applies nothing and returns true.
func Triangle(lo, hi uint16, stepDur time.Duration, tick Tick, set Step) bool {
	if hi <= lo {
		return true
	}
	for lvl := lo; lvl < hi; lvl++ {
		set(lvl)
		if !tick(stepDur) {
			return false
		}
	}
	for lvl := hi; lvl > lo; lvl-- {
		set(lvl)
		if !tick(stepDur) {
			return false
		}
	}
	return true
}

// Steps returns how many levels Triangle applies for [lo, hi].
func Steps(lo, hi uint16) int {
	if hi <= lo {
		return 0
	}
	return 2 * int(hi-lo)
}
