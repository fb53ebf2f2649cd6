package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/motion-extract-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger

	// Subviews
	Status  StatusBar
	Delay   DelayPanel
	Preview MotionPreview

	// Widgets
	StateLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetDelayText(text string)
	SetDelayValue(frames int)
	UpdatePreview(img image.Image)
	PreviewReset()
	SetSession(session, total time.Duration)
	SetCameraName(name string)
	SetFPS(fps float64)
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Handlers groups the callbacks fired by user actions.
type Handlers struct {
	ToggleStream  func()
	DelayIncrease func()
	DelayDecrease func()
	DelayInput    func(text string)
	Exit          func()
}

// Build constructs the layout: state row, delay controls, preview, status bar.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: state label and buttons.
	rv.StateLabel = Label(Txt("State: stopped"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	toggleBtn := Button(Txt("Toggle Stream"), Command(func() { h.ToggleStream() }))
	Grid(toggleBtn, Row(0), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(func() { h.Exit() }))
	Grid(exitBtn, Row(0), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Rows 1-3: delay controls.
	rv.Delay = NewDelayPanel(1, h.DelayIncrease, h.DelayDecrease, h.DelayInput)

	// Row 4: motion preview.
	rv.Preview = NewMotionPreview(4, 400, 300)

	// Row 5: status bar.
	rv.Status = NewStatusBar(5)
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetDelayText proxies to the delay panel label.
func (rv *RootView) SetDelayText(text string) {
	if rv != nil && rv.Delay != nil {
		rv.Delay.SetText(text)
	}
}

// SetDelayValue proxies to the delay panel entry.
func (rv *RootView) SetDelayValue(frames int) {
	if rv != nil && rv.Delay != nil {
		rv.Delay.SetValue(frames)
	}
}

// UpdatePreview proxies to the motion preview.
func (rv *RootView) UpdatePreview(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Update(img)
	}
}

// PreviewReset restores the blank preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}

// SetSession proxies to the status bar.
func (rv *RootView) SetSession(session, total time.Duration) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetSession(session, total)
	}
}

// SetCameraName proxies to the status bar.
func (rv *RootView) SetCameraName(name string) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetCameraName(name)
	}
}

// SetFPS proxies to the status bar.
func (rv *RootView) SetFPS(fps float64) {
	if rv != nil && rv.Status != nil {
		rv.Status.SetFPS(fps)
	}
}
