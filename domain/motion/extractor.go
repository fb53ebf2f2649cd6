package motion

import (
	"fmt"
	"image"
	"sync"
)

// MotionExtractor compares each new frame against a delayed reference frame
// and produces a blended difference image in which moving regions stay salient
// while static regions cancel toward a neutral mid-value.
//
// The capture loop calls AddFrame/ExtractMotion while the UI may call
// UpdateDelayFrames from another goroutine; one mutex guards the buffer.
type MotionExtractor struct {
	mu          sync.Mutex
	buf         *FrameBuffer
	delayFrames int
	blendAlpha  float64
}

// NewMotionExtractor returns an extractor that looks delayFrames behind the
// newest frame, blending the raw difference with the inverted delayed frame at
// ratio blendAlpha.
func NewMotionExtractor(delayFrames int, blendAlpha float64) (*MotionExtractor, error) {
	if delayFrames < 0 {
		return nil, fmt.Errorf("%w: delay %d, want >= 0", ErrInvalidArgument, delayFrames)
	}
	if blendAlpha < 0 || blendAlpha > 1 {
		return nil, fmt.Errorf("%w: blend alpha %v, want [0,1]", ErrInvalidArgument, blendAlpha)
	}
	buf, err := NewFrameBuffer(delayFrames + 1)
	if err != nil {
		return nil, err
	}
	return &MotionExtractor{buf: buf, delayFrames: delayFrames, blendAlpha: blendAlpha}, nil
}

// AddFrame appends frame to the history buffer, evicting the oldest entry
// once more than delay+1 frames are held. The extractor takes ownership of
// frame.
func (m *MotionExtractor) AddFrame(frame *image.RGBA) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Append(frame)
}

// ExtractMotion returns the blended difference between the newest frame and
// the frame delayFrames behind it. While fewer frames than the configured
// delay have accumulated, the oldest available frame serves as the reference
// instead of failing. With fewer than two frames buffered it returns
// ErrInsufficientData; callers should skip rendering that tick.
func (m *MotionExtractor) ExtractMotion() (*image.RGBA, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := m.buf.Len()
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d, need 2", ErrInsufficientData, n)
	}
	current, err := m.buf.Get(0)
	if err != nil {
		return nil, err
	}
	off := m.delayFrames
	if off > n-1 {
		off = n - 1
	}
	delayed, err := m.buf.Get(off)
	if err != nil {
		return nil, err
	}
	return blendDiff(current, delayed, m.blendAlpha), nil
}

// UpdateDelayFrames changes the delay live, resizing the buffer to
// newDelay+1. Shrinking keeps the newest frames; growing keeps everything.
// Calling with the current delay is a no-op.
func (m *MotionExtractor) UpdateDelayFrames(newDelay int) error {
	if newDelay < 0 {
		return fmt.Errorf("%w: delay %d, want >= 0", ErrInvalidArgument, newDelay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if newDelay == m.delayFrames {
		return nil
	}
	if err := m.buf.Resize(newDelay + 1); err != nil {
		return err
	}
	m.delayFrames = newDelay
	return nil
}

// CurrentDelayFrames reports the configured delay in frames.
func (m *MotionExtractor) CurrentDelayFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.delayFrames
}

// BufferedFrames reports how many frames are currently held.
func (m *MotionExtractor) BufferedFrames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.buf.Len()
}

// Reset clears the frame history. The delay and blend settings are kept.
func (m *MotionExtractor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buf.Clear()
}

// blendDiff computes alpha*|cur-del| + (1-alpha)*(255-del) per pixel and
// channel, rounded to 8 bits. Both inputs must share the same dimensions; the
// output alpha channel is forced opaque. The sum cannot exceed 255 for alpha
// in [0,1], so no clamp is needed after rounding.
func blendDiff(cur, del *image.RGBA, alpha float64) *image.RGBA {
	cb, db := cur.Bounds(), del.Bounds()
	w, h := cb.Dx(), cb.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	inv := 1 - alpha
	for y := 0; y < h; y++ {
		cRow := cur.Pix[cur.PixOffset(cb.Min.X, cb.Min.Y+y):]
		dRow := del.Pix[del.PixOffset(db.Min.X, db.Min.Y+y):]
		oRow := out.Pix[y*out.Stride:]
		for x := 0; x < w; x++ {
			i := x * 4
			for c := 0; c < 3; c++ {
				cv := float64(cRow[i+c])
				dv := float64(dRow[i+c])
				d := cv - dv
				if d < 0 {
					d = -d
				}
				oRow[i+c] = uint8(alpha*d + inv*(255-dv) + 0.5)
			}
			oRow[i+3] = 255
		}
	}
	return out
}
