package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"github.com/soocke/motion-extract-go/config"
	"github.com/soocke/motion-extract-go/debug"
	"github.com/soocke/motion-extract-go/ui/presenter"
	"github.com/soocke/motion-extract-go/ui/theme"
	"github.com/soocke/motion-extract-go/ui/view"
)

const (
	tick      = 100 * time.Millisecond
	delayStep = 1
)

type app struct {
	c       *AppContainer
	afterID string
}

func NewApp(width, height int, cfg *config.Config, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, logger)
	if err != nil {
		return nil, err
	}
	a := &app{c: c}

	App.WmTitle(cfg.Display.WindowName)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a, nil
}

func (a *app) Start() {
	theme.InitStyles()
	c := a.c

	// Build the layout first; handlers close over the container so the
	// presenters they call can be wired afterwards.
	c.RootView.Build(view.Handlers{
		ToggleStream:  func() { c.StreamPresenter.Toggle() },
		DelayIncrease: func() { c.DelayPresenter.Increase(delayStep) },
		DelayDecrease: func() { c.DelayPresenter.Decrease(delayStep) },
		DelayInput:    func(text string) { c.DelayPresenter.SetFromInput(text) },
		Exit:          a.exitHandler,
	})

	c.StreamPresenter = presenter.NewStreamPresenter(c.Stream, c.StreamSvc, c.UI, c.Logger)
	c.DelayPresenter = presenter.NewDelayPresenter(c.Controller, c.Extractor, c.UI, c.Logger)
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.Stream, c.UI)
	if c.Config.Display.ShowPreview {
		c.PreviewPresenter = presenter.NewPreviewPresenter(c.StreamSvc, c.UI, 400, 300)
	}
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.PreviewPresenter, a.scheduleUpdate)

	c.UI.SetCameraName(c.Source.DeviceName())
	c.DelayPresenter.Refresh()

	if c.Config.Debug {
		debug.StartRuntimeLogger(5*time.Second, c.Logger)
	}

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.c != nil && a.c.StreamSvc != nil {
		a.c.StreamSvc.Stop()
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.c.Loop.Tick() })
}
