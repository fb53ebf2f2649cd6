package controls

import "fmt"

// Default delay ceiling: ten seconds worth of frames at the session fps.
const defaultMaxDelaySeconds = 10

// DelayController owns the user-adjustable frame delay, clamped into
// [Min, Max]. Every mutation clamps silently instead of failing so UI widgets
// can push raw values straight through.
//
// Not safe for concurrent use; all mutations happen on the UI thread.
type DelayController struct {
	fps     int
	min     int
	max     int
	current int
}

// NewDelayController returns a controller for a stream running at fps.
// maxDelay <= 0 selects the default of ten seconds worth of frames; the
// initial value is clamped into range like any other mutation.
func NewDelayController(fps, initial, minDelay, maxDelay int) *DelayController {
	if fps <= 0 {
		fps = 30
	}
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay <= 0 {
		maxDelay = fps * defaultMaxDelaySeconds
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	c := &DelayController{fps: fps, min: minDelay, max: maxDelay, current: initial}
	c.current = c.clamp(initial)
	return c
}

func (c *DelayController) clamp(v int) int {
	if v < c.min {
		return c.min
	}
	if v > c.max {
		return c.max
	}
	return v
}

// Increase raises the delay by step frames, clamped to the upper bound, and
// returns the new value.
func (c *DelayController) Increase(step int) int {
	c.current = c.clamp(c.current + step)
	return c.current
}

// Decrease lowers the delay by step frames, clamped to the lower bound, and
// returns the new value.
func (c *DelayController) Decrease(step int) int {
	c.current = c.clamp(c.current - step)
	return c.current
}

// Set assigns the delay, clamping out-of-range values into [Min, Max], and
// returns the value actually stored.
func (c *DelayController) Set(frames int) int {
	c.current = c.clamp(frames)
	return c.current
}

// SetSeconds assigns the delay expressed in seconds, converting via the
// session fps before clamping. Returns the stored value in frames.
func (c *DelayController) SetSeconds(seconds float64) int {
	return c.Set(int(seconds * float64(c.fps)))
}

// Current reports the delay in frames.
func (c *DelayController) Current() int { return c.current }

// Bounds reports the inclusive clamp range.
func (c *DelayController) Bounds() (min, max int) { return c.min, c.max }

// DelaySeconds reports the delay converted to seconds at the session fps.
func (c *DelayController) DelaySeconds() float64 {
	return float64(c.current) / float64(c.fps)
}

// DisplayText formats the delay for on-screen display, for example
// "Delay: 60 frames (2.00s)".
func (c *DelayController) DisplayText() string {
	return fmt.Sprintf("Delay: %d frames (%.2fs)", c.current, c.DelaySeconds())
}
