package presenter

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/motion-extract-go/domain/controls"
)

// DelayAdjuster narrows the extractor surface the presenter drives.
type DelayAdjuster interface {
	UpdateDelayFrames(newDelay int) error
	CurrentDelayFrames() int
}

// DelayView shows the current delay to the user.
type DelayView interface {
	SetDelayText(text string)
	SetDelayValue(frames int)
}

// DelayPresenter routes delay adjustments from the UI into the controller and
// the running extractor, keeping both in agreement. All calls happen on the
// UI thread.
type DelayPresenter struct {
	controller *controls.DelayController
	extractor  DelayAdjuster
	view       DelayView
	logger     *slog.Logger
}

func NewDelayPresenter(controller *controls.DelayController, extractor DelayAdjuster, view DelayView, logger *slog.Logger) *DelayPresenter {
	return &DelayPresenter{controller: controller, extractor: extractor, view: view, logger: logger}
}

// Refresh pushes the controller state into the view without changing it.
func (p *DelayPresenter) Refresh() {
	if p == nil || p.controller == nil || p.view == nil {
		return
	}
	p.view.SetDelayValue(p.controller.Current())
	p.view.SetDelayText(p.controller.DisplayText())
}

// Increase raises the delay by step frames.
func (p *DelayPresenter) Increase(step int) {
	if p == nil || p.controller == nil {
		return
	}
	p.apply(p.controller.Increase(step))
}

// Decrease lowers the delay by step frames.
func (p *DelayPresenter) Decrease(step int) {
	if p == nil || p.controller == nil {
		return
	}
	p.apply(p.controller.Decrease(step))
}

// SetFromInput parses a raw widget value. Garbage input just refreshes the
// display back to the current state; out-of-range values clamp.
func (p *DelayPresenter) SetFromInput(text string) {
	if p == nil || p.controller == nil {
		return
	}
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		p.Refresh()
		return
	}
	p.apply(p.controller.Set(v))
}

// apply propagates the clamped controller value into the extractor and view.
func (p *DelayPresenter) apply(frames int) {
	if p.extractor != nil {
		if err := p.extractor.UpdateDelayFrames(frames); err != nil && p.logger != nil {
			p.logger.Error("delay update", "frames", frames, "error", err)
		}
	}
	if p.view != nil {
		p.view.SetDelayValue(frames)
		p.view.SetDelayText(p.controller.DisplayText())
	}
	if p.logger != nil {
		p.logger.Info("delay updated", "display", p.controller.DisplayText())
	}
}
