package motion

import (
	"fmt"
	"image"
)

// FrameBuffer keeps the most recent frames in arrival order, newest at the
// tail. Once full, appending evicts from the head (oldest first). Capacity can
// be changed while populated: shrinking discards the oldest entries, growing
// never discards anything.
//
// Not safe for concurrent use; MotionExtractor serializes access.
type FrameBuffer struct {
	frames []*image.RGBA
	cap    int
}

// NewFrameBuffer returns a buffer that retains up to capacity frames.
func NewFrameBuffer(capacity int) (*FrameBuffer, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: capacity %d, want >= 1", ErrInvalidArgument, capacity)
	}
	return &FrameBuffer{frames: make([]*image.RGBA, 0, capacity), cap: capacity}, nil
}

// Append adds frame at the tail, evicting from the head until the length is
// back within capacity. The buffer takes ownership of frame; callers must not
// mutate it afterwards.
func (b *FrameBuffer) Append(frame *image.RGBA) error {
	if frame == nil || frame.Bounds().Empty() {
		return fmt.Errorf("%w: nil or empty frame", ErrInvalidArgument)
	}
	b.frames = append(b.frames, frame)
	if over := len(b.frames) - b.cap; over > 0 {
		b.frames = append(b.frames[:0], b.frames[over:]...)
	}
	return nil
}

// Resize sets a new capacity. Shrinking below the current length evicts the
// oldest frames until the length matches; growing keeps everything and simply
// allows more appends before eviction starts again.
func (b *FrameBuffer) Resize(newCap int) error {
	if newCap < 1 {
		return fmt.Errorf("%w: capacity %d, want >= 1", ErrInvalidArgument, newCap)
	}
	if over := len(b.frames) - newCap; over > 0 {
		b.frames = append(b.frames[:0], b.frames[over:]...)
	}
	b.cap = newCap
	return nil
}

// Get returns the frame offset positions behind the newest entry; offset 0 is
// the newest frame, Len()-1 the oldest.
func (b *FrameBuffer) Get(offset int) (*image.RGBA, error) {
	if offset < 0 || offset >= len(b.frames) {
		return nil, fmt.Errorf("%w: offset %d, length %d", ErrOutOfRange, offset, len(b.frames))
	}
	return b.frames[len(b.frames)-1-offset], nil
}

// Len reports the number of buffered frames.
func (b *FrameBuffer) Len() int { return len(b.frames) }

// Cap reports the current capacity.
func (b *FrameBuffer) Cap() int { return b.cap }

// Clear drops all buffered frames. Capacity is unchanged.
func (b *FrameBuffer) Clear() {
	for i := range b.frames {
		b.frames[i] = nil
	}
	b.frames = b.frames[:0]
}
