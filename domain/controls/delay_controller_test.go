package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDelayController_Defaults(t *testing.T) {
	c := NewDelayController(30, 60, 0, 0)
	min, max := c.Bounds()
	assert.Equal(t, 0, min)
	assert.Equal(t, 300, max, "default max is ten seconds worth of frames")
	assert.Equal(t, 60, c.Current())

	// Non-positive fps falls back to 30.
	c = NewDelayController(0, 5, 0, 0)
	_, max = c.Bounds()
	assert.Equal(t, 300, max)
}

func TestSet_ClampsSilently(t *testing.T) {
	c := NewDelayController(30, 60, 10, 100)

	assert.Equal(t, 100, c.Set(5000), "above max clamps to max")
	assert.Equal(t, 10, c.Set(-3), "below min clamps to min")
	assert.Equal(t, 42, c.Set(42), "in-range value is stored unchanged")
	assert.Equal(t, 42, c.Current())
}

func TestIncreaseDecrease_ClampAtBounds(t *testing.T) {
	c := NewDelayController(30, 99, 0, 100)

	assert.Equal(t, 100, c.Increase(1))
	assert.Equal(t, 100, c.Increase(50), "stays at max")
	assert.Equal(t, 90, c.Decrease(10))
	assert.Equal(t, 0, c.Decrease(1000), "stays at min")
}

func TestSetSeconds_ConvertsViaFPS(t *testing.T) {
	c := NewDelayController(30, 0, 0, 300)
	assert.Equal(t, 60, c.SetSeconds(2.0))
	assert.InDelta(t, 2.0, c.DelaySeconds(), 1e-9)

	// Out-of-range seconds clamp like frame values.
	assert.Equal(t, 300, c.SetSeconds(60.0))
}

func TestInitialValue_Clamped(t *testing.T) {
	c := NewDelayController(30, 9999, 0, 120)
	assert.Equal(t, 120, c.Current())
	c = NewDelayController(30, -5, 0, 120)
	assert.Equal(t, 0, c.Current())
}

func TestDisplayText(t *testing.T) {
	c := NewDelayController(30, 60, 0, 300)
	assert.Equal(t, "Delay: 60 frames (2.00s)", c.DisplayText())

	c.Set(5)
	assert.Equal(t, "Delay: 5 frames (0.17s)", c.DisplayText())
}
