package heartbeat

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"ledmode-go/types"
)

func TestHeartbeat_RateLimited(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	now := time.Unix(0, 0)
	s := New(time.Second, log, func() time.Time { return now })

	s.Tick(1, types.DutyTable{2, 2, 2, 2})
	now = now.Add(500 * time.Millisecond)
	s.Tick(1, types.DutyTable{2, 2, 2, 2})
	if s.Beats() != 1 {
		t.Fatalf("beats=%d after half an interval", s.Beats())
	}
	now = now.Add(500 * time.Millisecond)
	s.Tick(2, types.DutyTable{21, 18, 14, 19})
	if s.Beats() != 2 {
		t.Fatalf("beats=%d after a full interval", s.Beats())
	}
	out := buf.String()
	if !strings.Contains(out, "msg=heartbeat") || !strings.Contains(out, "mode=2") || !strings.Contains(out, "g=21") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestHeartbeat_DisabledIsNil(t *testing.T) {
	s := New(0, slog.Default(), nil)
	if s != nil {
		t.Fatalf("zero interval should disable heartbeat")
	}
	s.Tick(1, types.DutyTable{}) // must not panic
	if s.Beats() != 0 {
		t.Fatalf("disabled heartbeat counted beats")
	}
}
