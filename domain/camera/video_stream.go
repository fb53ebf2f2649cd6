package camera

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log/slog"
	"strconv"

	"gocv.io/x/gocv"
)

// VideoStream reads frames from a camera device or a video file through
// OpenCV. The source string is either a device index ("0") or a file path.
//
// ReadFrame reuses one Mat across calls; the returned *image.RGBA is a fresh
// allocation each time and safe to hand off downstream.
type VideoStream struct {
	source string
	width  int
	height int
	logger *slog.Logger

	cap     *gocv.VideoCapture
	mat     gocv.Mat
	running bool
}

// NewVideoStream returns an unopened stream. width/height <= 0 keep the
// device defaults.
func NewVideoStream(source string, width, height int, logger *slog.Logger) *VideoStream {
	return &VideoStream{source: source, width: width, height: height, logger: logger}
}

// Start opens the device or file and applies the requested resolution.
func (s *VideoStream) Start() error {
	if s.running {
		return nil
	}
	var (
		cap *gocv.VideoCapture
		err error
	)
	if idx, convErr := strconv.Atoi(s.source); convErr == nil {
		cap, err = gocv.VideoCaptureDevice(idx)
	} else {
		cap, err = gocv.VideoCaptureFile(s.source)
	}
	if err != nil {
		return fmt.Errorf("camera: open %q: %w", s.source, err)
	}
	if s.width > 0 {
		cap.Set(gocv.VideoCaptureFrameWidth, float64(s.width))
	}
	if s.height > 0 {
		cap.Set(gocv.VideoCaptureFrameHeight, float64(s.height))
	}
	s.cap = cap
	s.mat = gocv.NewMat()
	s.running = true
	if s.logger != nil {
		w, h := s.Resolution()
		s.logger.Info("camera.open", "source", s.DeviceName(), "fps", s.FPS(), "width", w, "height", h)
	}
	return nil
}

// ReadFrame grabs the next frame and converts it to RGBA.
func (s *VideoStream) ReadFrame() (*image.RGBA, error) {
	if !s.running || s.cap == nil {
		return nil, errors.New("camera: stream not started")
	}
	if ok := s.cap.Read(&s.mat); !ok {
		return nil, errors.New("camera: read failed")
	}
	if s.mat.Empty() {
		return nil, errors.New("camera: empty frame")
	}
	img, err := s.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("camera: convert frame: %w", err)
	}
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	b := img.Bounds()
	rgba := image.NewRGBA(b)
	draw.Draw(rgba, b, img, b.Min, draw.Src)
	return rgba, nil
}

// FPS reports the stream frame rate, defaulting to 30 when the device does
// not provide one.
func (s *VideoStream) FPS() float64 {
	if s.cap == nil {
		return 30.0
	}
	fps := s.cap.Get(gocv.VideoCaptureFPS)
	if fps <= 0 {
		return 30.0
	}
	return fps
}

// Resolution reports the current frame dimensions.
func (s *VideoStream) Resolution() (width, height int) {
	if s.cap == nil {
		return 0, 0
	}
	return int(s.cap.Get(gocv.VideoCaptureFrameWidth)), int(s.cap.Get(gocv.VideoCaptureFrameHeight))
}

// DeviceName returns a short label such as "Cam 0" or "clip.mp4".
func (s *VideoStream) DeviceName() string { return displayName(s.source) }

// Stop releases the capture handle and scratch Mat. Idempotent.
func (s *VideoStream) Stop() error {
	if !s.running {
		return nil
	}
	s.running = false
	var err error
	if s.cap != nil {
		err = s.cap.Close()
		s.cap = nil
	}
	s.mat.Close()
	return err
}
