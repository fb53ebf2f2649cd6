package camera

import (
	"errors"
	"image"
)

// SyntheticSource generates frames procedurally: a dark background with a
// bright block that advances one step per frame, wrapping at the edge. It
// backs tests and lets the app run without any capture hardware.
type SyntheticSource struct {
	width   int
	height  int
	fps     float64
	seq     int
	running bool
}

// NewSyntheticSource returns a generator producing width x height frames at
// the given fps (<= 0 selects 30).
func NewSyntheticSource(width, height int, fps float64) *SyntheticSource {
	if width < 1 {
		width = 64
	}
	if height < 1 {
		height = 48
	}
	if fps <= 0 {
		fps = 30.0
	}
	return &SyntheticSource{width: width, height: height, fps: fps}
}

// Start resets the sequence counter.
func (s *SyntheticSource) Start() error {
	s.seq = 0
	s.running = true
	return nil
}

// ReadFrame renders the next frame in the sequence.
func (s *SyntheticSource) ReadFrame() (*image.RGBA, error) {
	if !s.running {
		return nil, errors.New("camera: synthetic source not started")
	}
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 16, 16, 16, 255
	}
	// Bright block, one column further each frame.
	block := s.width / 8
	if block < 1 {
		block = 1
	}
	x0 := s.seq % (s.width - block + 1)
	for y := s.height / 4; y < 3*s.height/4; y++ {
		row := img.Pix[y*img.Stride:]
		for x := x0; x < x0+block; x++ {
			i := x * 4
			row[i], row[i+1], row[i+2] = 220, 220, 220
		}
	}
	s.seq++
	return img, nil
}

// FPS reports the configured pacing rate.
func (s *SyntheticSource) FPS() float64 { return s.fps }

// Resolution reports the generated frame dimensions.
func (s *SyntheticSource) Resolution() (width, height int) { return s.width, s.height }

// DeviceName identifies this source in the UI.
func (s *SyntheticSource) DeviceName() string { return "Synthetic" }

// Stop halts frame generation. Idempotent.
func (s *SyntheticSource) Stop() error {
	s.running = false
	return nil
}
