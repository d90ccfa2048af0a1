package heartbeat

import (
	"log/slog"
	"time"

	"ledmode-go/types"
	"ledmode-go/x/timex"
)

// Service logs the current mode and channel levels at most once per
// interval. It is polled from the main loop rather than run on a timer.
type Service struct {
	interval time.Duration
	log      *slog.Logger
	now      timex.Clock

	last  time.Time
	beats int
}

// New returns nil when interval is not positive; a nil *Service ignores Tick.
func New(interval time.Duration, log *slog.Logger, now timex.Clock) *Service {
	if interval <= 0 || log == nil {
		return nil
	}
	if now == nil {
		now = time.Now
	}
	return &Service{interval: interval, log: log, now: now}
}

// Tick emits one heartbeat line if the interval has elapsed.
func (s *Service) Tick(mode types.Mode, levels types.DutyTable) {
	if s == nil {
		return
	}
	t := s.now()
	if s.beats > 0 && t.Sub(s.last) < s.interval {
		return
	}
	s.last = t
	s.beats++
	s.log.Info("heartbeat",
		"beat", s.beats,
		"mode", mode,
		"g", levels[0], "r", levels[1], "b", levels[2], "w", levels[3])
}

// Beats reports how many heartbeat lines were emitted.
func (s *Service) Beats() int {
	if s == nil {
		return 0
	}
	return s.beats
}
