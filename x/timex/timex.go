package timex

import "time"

// Sleeper is a blocking, non-cancellable delay.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Real sleeps using the runtime timer (busy-waits on bare-metal targets).
type Real struct{}

func (Real) Sleep(d time.Duration) { time.Sleep(d) }

// Clock reports the current time; used for wall-clock bookkeeping only.
type Clock func() time.Time

// PeriodFromHz returns a nanosecond period for a requested frequency.
// freqHz==0 is coerced to 1 to avoid division by zero.
func PeriodFromHz(freqHz uint32) uint64 {
	if freqHz == 0 {
		freqHz = 1
	}
	return uint64(1_000_000_000 / uint64(freqHz))
}
