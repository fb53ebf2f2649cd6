package camera

import (
	"fmt"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenSource feeds the pipeline from the screen instead of a camera, which
// makes motion extraction usable on any on-screen video. An optional region
// restricts the grab; nil captures the full screen.
type ScreenSource struct {
	region  *image.Rectangle
	fps     float64
	width   int
	height  int
	running bool
}

// NewScreenSource returns a screen grabber paced at fps (<= 0 selects 30).
func NewScreenSource(region *image.Rectangle, fps float64) *ScreenSource {
	if fps <= 0 {
		fps = 30.0
	}
	return &ScreenSource{region: region, fps: fps}
}

// Start resolves the capture dimensions.
func (s *ScreenSource) Start() error {
	if s.running {
		return nil
	}
	if s.region != nil {
		s.width, s.height = s.region.Dx(), s.region.Dy()
	} else {
		r, err := screenshot.ScreenRect()
		if err != nil {
			return fmt.Errorf("camera: screen rect: %w", err)
		}
		s.width, s.height = r.Dx(), r.Dy()
	}
	s.running = true
	return nil
}

// ReadFrame grabs the configured region of the screen.
func (s *ScreenSource) ReadFrame() (*image.RGBA, error) {
	if !s.running {
		return nil, fmt.Errorf("camera: screen source not started")
	}
	if s.region != nil {
		img, err := screenshot.CaptureRect(*s.region)
		if err != nil {
			return nil, fmt.Errorf("camera: capture rect: %w", err)
		}
		return img, nil
	}
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("camera: capture screen: %w", err)
	}
	return img, nil
}

// FPS reports the configured pacing rate.
func (s *ScreenSource) FPS() float64 { return s.fps }

// Resolution reports the grab dimensions, (0, 0) before Start.
func (s *ScreenSource) Resolution() (width, height int) { return s.width, s.height }

// DeviceName identifies this source in the UI.
func (s *ScreenSource) DeviceName() string { return "Screen" }

// Stop marks the source stopped. The library holds no persistent handle.
func (s *ScreenSource) Stop() error {
	s.running = false
	return nil
}
