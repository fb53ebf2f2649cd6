package stream

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/motion-extract-go/domain/camera"
	"github.com/soocke/motion-extract-go/domain/motion"
)

const statsLogInterval = 5 * time.Second

// Extractor is the slice of the motion core driven by the loop.
type Extractor interface {
	AddFrame(frame *image.RGBA) error
	ExtractMotion() (*image.RGBA, error)
}

// Service drives the capture-and-extract loop: it pulls frames from a
// camera.FrameSource, feeds them through the extractor and publishes the
// latest motion frame alongside instrumentation data. Use NewService to
// construct an instance.
type Service interface {
	Start() error
	Stop()
	LatestFrame() FrameSnapshot
	Running() bool
	FPS() float64
	Stats() Stats
}

type service struct {
	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	source       camera.FrameSource
	extractor    Extractor
	fps          float64
	logger       *slog.Logger
	sessionID    string
	frames       atomic.Uint64
	skipped      atomic.Uint64
	processNanos atomic.Uint64
	sequence     atomic.Uint64
	done         chan struct{}
}

// NewService constructs a stream service over source and extractor. fps sets
// the loop pacing rate so it stays in agreement with the delay math; fps <= 0
// falls back to the source-reported rate. Each Start opens a fresh session
// with its own ID in the stats and log lines.
func NewService(source camera.FrameSource, extractor Extractor, fps float64, logger *slog.Logger) Service {
	return &service{source: source, extractor: extractor, fps: fps, logger: logger}
}

// FPS reports the effective pacing rate of the loop.
func (s *service) FPS() float64 {
	if s.fps > 0 {
		return s.fps
	}
	if f := s.source.FPS(); f > 0 {
		return f
	}
	return 30.0
}

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Running() bool { return s.running.Load() }

func (s *service) Stats() Stats {
	frames := s.frames.Load()
	skipped := s.skipped.Load()
	total := s.processNanos.Load()
	var avg time.Duration
	avgMicros := 0.0
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
		avgMicros = float64(avg) / float64(time.Microsecond)
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		SessionID:        s.sessionID,
		Frames:           frames,
		Skipped:          skipped,
		AvgProcess:       avg,
		AvgProcessMicros: avgMicros,
		LastFrame:        snapshot.CapturedAt,
		LatestFrameAge:   age,
		Sequence:         snapshot.Sequence,
	}
}

// Start opens the source and launches the loop goroutine. Calling Start on a
// running service is a no-op.
func (s *service) Start() error {
	if s.running.Load() {
		return nil
	}
	if s.done != nil {
		<-s.done // wait out a previous loop still winding down
	}
	if err := s.source.Start(); err != nil {
		return fmt.Errorf("stream: start source: %w", err)
	}
	s.sessionID = uuid.NewString()
	s.running.Store(true)
	if s.logger != nil {
		s.logger.Info("stream.start", "session", s.sessionID, "source", s.source.DeviceName(), "fps", s.FPS())
	}
	s.done = make(chan struct{})
	go s.loop(s.done)
	return nil
}

// Stop signals the loop to exit; the loop releases the source on the way out.
func (s *service) Stop() {
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
}

func (s *service) loop(done chan struct{}) {
	defer close(done)
	defer func() {
		if err := s.source.Stop(); err != nil && s.logger != nil {
			s.logger.Error("stream.source_stop", "session", s.sessionID, "error", err)
		}
	}()

	tick := time.NewTicker(time.Duration(float64(time.Second) / s.FPS()))
	defer tick.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()

	for s.running.Load() {
		<-tick.C
		start := time.Now()

		frame, err := s.source.ReadFrame()
		if err != nil {
			s.skipped.Add(1)
			if s.logger != nil {
				s.logger.Debug("stream.read", "session", s.sessionID, "error", err)
			}
			continue
		}
		if err := s.extractor.AddFrame(frame); err != nil {
			s.skipped.Add(1)
			if s.logger != nil {
				s.logger.Error("stream.add_frame", "session", s.sessionID, "error", err)
			}
			continue
		}
		out, err := s.extractor.ExtractMotion()
		if err != nil {
			if errors.Is(err, motion.ErrInsufficientData) {
				continue // warming up, nothing to render yet
			}
			s.skipped.Add(1)
			if s.logger != nil {
				s.logger.Error("stream.extract", "session", s.sessionID, "error", err)
			}
			continue
		}

		elapsed := time.Since(start)
		s.processNanos.Add(uint64(elapsed.Nanoseconds()))
		s.frames.Add(1)
		seq := s.sequence.Add(1)
		s.latest.Store(&FrameSnapshot{Image: out, CapturedAt: time.Now(), Sequence: seq})

		select {
		case <-logTicker.C:
			s.logStats()
		default:
		}
	}
}

func (s *service) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("stream.stats",
		"session", stats.SessionID,
		"frames", stats.Frames,
		"skipped", stats.Skipped,
		"avg_process", stats.AvgProcess,
		"age", stats.LatestFrameAge,
	)
}
