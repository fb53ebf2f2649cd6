package presenter

import (
	"time"

	"github.com/soocke/motion-extract-go/ui/model"
)

// StreamEnabledModel reports whether the stream is enabled.
type StreamEnabledModel interface{ Enabled() bool }

// SessionView displays formatted session and total durations.
type SessionView interface {
	SetSession(session, total time.Duration)
}

// SessionPresenter advances the session model and pushes durations to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	stream StreamEnabledModel
	view   SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, stream StreamEnabledModel, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, stream: stream, view: view}
}

// Tick updates the presenter: advance the session model and push values to the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.stream == nil || p.view == nil {
		return
	}
	p.sess.Observe(p.stream.Enabled(), now)
	s, t := p.sess.Snapshot()
	p.view.SetSession(s, t)
}
