package presenter

import (
	"log/slog"
)

// StreamModel provides enabled state access.
type StreamModel interface {
	Enabled() bool
	SetEnabled(bool)
}

// StreamLifecycle narrows what the presenter needs from the stream service.
type StreamLifecycle interface {
	Start() error
	Stop()
	FPS() float64
}

// StreamView updates UI elements affected by toggling the stream.
type StreamView interface {
	PreviewReset()
	SetStateLabel(text string)
	SetFPS(fps float64)
}

// StreamPresenter owns presentation logic for starting and stopping the
// motion stream.
type StreamPresenter struct {
	model   StreamModel
	service StreamLifecycle
	view    StreamView
	logger  *slog.Logger
}

func NewStreamPresenter(model StreamModel, service StreamLifecycle, view StreamView, logger *slog.Logger) *StreamPresenter {
	return &StreamPresenter{model: model, service: service, view: view, logger: logger}
}

// Enable starts the stream service and flips the model. Idempotent; a source
// open failure leaves the model disabled and surfaces on the state label.
func (p *StreamPresenter) Enable() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if p.model.Enabled() {
		return
	}
	if err := p.service.Start(); err != nil {
		if p.logger != nil {
			p.logger.Error("stream start", "error", err)
		}
		p.view.SetStateLabel("State: camera error")
		return
	}
	p.model.SetEnabled(true)
	p.view.SetStateLabel("State: streaming")
	p.view.SetFPS(p.service.FPS())
}

// Disable stops the stream service and resets the preview. Idempotent.
func (p *StreamPresenter) Disable() {
	if p == nil || p.model == nil || p.service == nil || p.view == nil {
		return
	}
	if !p.model.Enabled() {
		return
	}
	p.service.Stop()
	p.model.SetEnabled(false)
	p.view.PreviewReset()
	p.view.SetStateLabel("State: stopped")
}

// Toggle flips the stream state delegating to Enable/Disable.
func (p *StreamPresenter) Toggle() {
	if p == nil || p.model == nil {
		return
	}
	if p.model.Enabled() {
		p.Disable()
		return
	}
	p.Enable()
}
