package model

import (
	"time"
)

// SessionModel tracks how long the current stream session has been running
// and the total streaming time across sessions. It is decoupled from the UI;
// presenters poll Snapshot() and push the values into views. The zero value
// is ready to use.
type SessionModel struct {
	active     bool
	startedAt  time.Time
	lastActive time.Duration
	finished   time.Duration
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// Observe updates the model from the current streaming state and timestamp.
// Call periodically, for example from a presenter tick.
func (m *SessionModel) Observe(streaming bool, now time.Time) {
	if m == nil {
		return
	}
	switch {
	case streaming && !m.active:
		m.active = true
		m.startedAt = now
		m.lastActive = 0
	case streaming:
		m.lastActive = now.Sub(m.startedAt)
	case m.active:
		m.lastActive = now.Sub(m.startedAt)
		m.finished += m.lastActive
		m.active = false
	}
}

// Snapshot returns the current session duration and the total across all
// sessions, including the ongoing one while active.
func (m *SessionModel) Snapshot() (session, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	session = m.lastActive
	total = m.finished
	if m.active {
		total += session
	}
	return
}
