package stream

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest motion output frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises loop behaviour for instrumentation.
type Stats struct {
	SessionID        string
	Frames           uint64
	Skipped          uint64
	AvgProcess       time.Duration
	AvgProcessMicros float64
	LastFrame        time.Time
	LatestFrameAge   time.Duration
	Sequence         uint64
}
