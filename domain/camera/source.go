package camera

import (
	"image"
	"path/filepath"
	"strconv"
)

// FrameSource supplies frames to the processing loop. Implementations are
// driven from a single goroutine; Start and Stop bracket the session and are
// idempotent.
type FrameSource interface {
	// Start opens the underlying device or file. It must be called before
	// ReadFrame.
	Start() error
	// ReadFrame returns the next frame. A non-nil error means no frame was
	// produced this tick (end of stream, device hiccup); the caller decides
	// whether to retry or shut down.
	ReadFrame() (*image.RGBA, error)
	// FPS reports the source frame rate, falling back to 30 when the device
	// does not expose one.
	FPS() float64
	// Resolution reports the frame dimensions, (0, 0) before Start.
	Resolution() (width, height int)
	// DeviceName returns a short human-readable label for display.
	DeviceName() string
	// Stop releases the source. Safe to call multiple times.
	Stop() error
}

const maxDisplayNameLen = 20

// displayName formats a capture source for display: numeric device indexes
// become "Cam N", file paths shorten to their base name and long names are
// truncated with an ellipsis.
func displayName(source string) string {
	if source == "" {
		return "Unknown"
	}
	if idx, err := strconv.Atoi(source); err == nil {
		return "Cam " + strconv.Itoa(idx)
	}
	name := filepath.Base(source)
	if len(name) > maxDisplayNameLen {
		return name[:maxDisplayNameLen-3] + "..."
	}
	return name
}
