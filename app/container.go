package app

import (
	"fmt"
	"log/slog"

	"github.com/soocke/motion-extract-go/config"
	"github.com/soocke/motion-extract-go/domain/camera"
	"github.com/soocke/motion-extract-go/domain/controls"
	"github.com/soocke/motion-extract-go/domain/motion"
	"github.com/soocke/motion-extract-go/domain/stream"
	"github.com/soocke/motion-extract-go/ui/model"
	"github.com/soocke/motion-extract-go/ui/presenter"
	"github.com/soocke/motion-extract-go/ui/view"
)

// AppContainer assembles models, domain services, presenters and the root view.
type AppContainer struct {
	Config     *config.Config
	Logger     *slog.Logger
	Stream     *model.StreamModel
	Session    *model.SessionModel
	Controller *controls.DelayController
	Extractor  *motion.MotionExtractor
	Source     camera.FrameSource
	StreamSvc  stream.Service
	RootView   *view.RootView
	UI         view.UI

	// Presenters
	SessionPresenter *presenter.SessionPresenter
	StreamPresenter  *presenter.StreamPresenter
	DelayPresenter   *presenter.DelayPresenter
	PreviewPresenter *presenter.PreviewPresenter
	Loop             *presenter.Loop
}

// BuildContainer constructs all components. The camera device is not opened
// here; the stream service opens it on Start.
func BuildContainer(cfg *config.Config, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Stream = &model.StreamModel{}
	c.Session = model.NewSessionModel()

	fps := cfg.Motion.FPS
	c.Controller = controls.NewDelayController(fps, cfg.InitialDelayFrames(fps), 0, 0)

	ex, err := motion.NewMotionExtractor(c.Controller.Current(), cfg.Motion.BlendAlpha)
	if err != nil {
		return nil, fmt.Errorf("build extractor: %w", err)
	}
	c.Extractor = ex

	if cfg.Camera.Source == "screen" {
		c.Source = camera.NewScreenSource(nil, float64(fps))
	} else {
		c.Source = camera.NewVideoStream(cfg.Camera.Source, cfg.Camera.Width, cfg.Camera.Height, logger)
	}
	c.StreamSvc = stream.NewService(c.Source, c.Extractor, float64(fps), logger)

	// View
	c.RootView = view.NewRootView(cfg, logger)
	c.UI = c.RootView
	// Presenters wired after the UI is built (see app wrapper).
	return c, nil
}
