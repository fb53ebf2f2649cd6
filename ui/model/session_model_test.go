package model

import (
	"testing"
	"time"
)

func TestSessionModel_TracksSessionsAndTotal(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// First session: 5s.
	m.Observe(true, base)
	m.Observe(true, base.Add(5*time.Second))
	session, total := m.Snapshot()
	if session != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s session & total, got session=%v total=%v", session, total)
	}

	// Stop; values persist through idle ticks.
	m.Observe(false, base.Add(5*time.Second))
	m.Observe(false, base.Add(9*time.Second))
	session, total = m.Snapshot()
	if session != 5*time.Second || total != 5*time.Second {
		t.Fatalf("idle should not change durations, got session=%v total=%v", session, total)
	}

	// Second session of 3s accumulates on top.
	m.Observe(true, base.Add(10*time.Second))
	m.Observe(true, base.Add(13*time.Second))
	session, total = m.Snapshot()
	if session != 3*time.Second {
		t.Fatalf("second session expected 3s, got %v", session)
	}
	if total != 8*time.Second {
		t.Fatalf("total expected 8s, got %v", total)
	}

	m.Observe(false, base.Add(13*time.Second))
	if _, total = m.Snapshot(); total != 8*time.Second {
		t.Fatalf("final total expected 8s, got %v", total)
	}
}

func TestStreamModel_ZeroValueAndNilSafety(t *testing.T) {
	var m StreamModel
	if m.Enabled() {
		t.Fatalf("zero value must be disabled")
	}
	m.SetEnabled(true)
	if !m.Enabled() {
		t.Fatalf("SetEnabled(true) not observed")
	}

	var nilModel *StreamModel
	if nilModel.Enabled() {
		t.Fatalf("nil model must report disabled")
	}
	nilModel.SetEnabled(true) // must not panic
}
