package motion

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewMotionExtractor_Validation(t *testing.T) {
	_, err := NewMotionExtractor(-1, 0.5)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMotionExtractor(5, -0.1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = NewMotionExtractor(5, 1.1)
	require.ErrorIs(t, err, ErrInvalidArgument)

	m, err := NewMotionExtractor(5, 0.5)
	require.NoError(t, err)
	require.Equal(t, 5, m.CurrentDelayFrames())
}

func TestExtractMotion_InsufficientData(t *testing.T) {
	m, err := NewMotionExtractor(5, 0.5)
	require.NoError(t, err)

	_, err = m.ExtractMotion()
	require.ErrorIs(t, err, ErrInsufficientData)

	require.NoError(t, m.AddFrame(frame(10)))
	_, err = m.ExtractMotion()
	require.ErrorIs(t, err, ErrInsufficientData)

	require.NoError(t, m.AddFrame(frame(20)))
	out, err := m.ExtractMotion()
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestExtractMotion_UsesOldestWhileUnderfilled(t *testing.T) {
	// Delay 5 (capacity 6) with alpha 1 isolates the raw difference, so the
	// output pixel value reveals which reference frame was used.
	m, err := NewMotionExtractor(5, 1.0)
	require.NoError(t, err)
	require.NoError(t, m.AddFrame(frame(10))) // F1
	require.NoError(t, m.AddFrame(frame(20))) // F2
	require.NoError(t, m.AddFrame(frame(30))) // F3

	out, err := m.ExtractMotion()
	require.NoError(t, err)
	// |F3 - F1| = 20: the oldest available frame is the reference, not F2.
	require.EqualValues(t, 20, out.Pix[0])
	require.EqualValues(t, 20, out.Pix[1])
	require.EqualValues(t, 20, out.Pix[2])
	require.EqualValues(t, 255, out.Pix[3])
}

func TestExtractMotion_IdenticalFramesYieldInvertedHalf(t *testing.T) {
	m, err := NewMotionExtractor(1, 0.5)
	require.NoError(t, err)
	const v = 40
	require.NoError(t, m.AddFrame(frame(v)))
	require.NoError(t, m.AddFrame(frame(v)))

	out, err := m.ExtractMotion()
	require.NoError(t, err)
	// diff is all-zero, so the result is the inverted frame at half weight.
	want := uint8(0.5*float64(255-v) + 0.5)
	require.Equal(t, want, out.Pix[0])
	require.Equal(t, want, out.Pix[1])
	require.Equal(t, want, out.Pix[2])
}

func TestExtractMotion_OutputDimensionsMatchInput(t *testing.T) {
	m, err := NewMotionExtractor(2, 0.5)
	require.NoError(t, err)
	f := image.NewRGBA(image.Rect(0, 0, 8, 6))
	g := image.NewRGBA(image.Rect(0, 0, 8, 6))
	require.NoError(t, m.AddFrame(f))
	require.NoError(t, m.AddFrame(g))

	out, err := m.ExtractMotion()
	require.NoError(t, err)
	require.Equal(t, 8, out.Bounds().Dx())
	require.Equal(t, 6, out.Bounds().Dy())
}

func TestUpdateDelayFrames_ResizesAndPreserves(t *testing.T) {
	m, err := NewMotionExtractor(2, 0.5)
	require.NoError(t, err)
	// Fill capacity 3 completely.
	for _, v := range []byte{1, 2, 3} {
		require.NoError(t, m.AddFrame(frame(v)))
	}
	require.Equal(t, 3, m.BufferedFrames())

	// Growing loses nothing and extends headroom.
	require.NoError(t, m.UpdateDelayFrames(5))
	require.Equal(t, 5, m.CurrentDelayFrames())
	require.Equal(t, 3, m.BufferedFrames())
	for _, v := range []byte{4, 5, 6} {
		require.NoError(t, m.AddFrame(frame(v)))
	}
	require.Equal(t, 6, m.BufferedFrames())
}

func TestUpdateDelayFrames_ShrinkKeepsNewest(t *testing.T) {
	m, err := NewMotionExtractor(5, 1.0)
	require.NoError(t, err)
	for v := byte(1); v <= 6; v++ {
		require.NoError(t, m.AddFrame(frame(v * 10)))
	}

	require.NoError(t, m.UpdateDelayFrames(1))
	require.Equal(t, 2, m.BufferedFrames())
	out, err := m.ExtractMotion()
	require.NoError(t, err)
	// Newest two frames survive: |60 - 50| = 10.
	require.EqualValues(t, 10, out.Pix[0])
}

func TestUpdateDelayFrames_Idempotent(t *testing.T) {
	m, err := NewMotionExtractor(3, 0.5)
	require.NoError(t, err)
	for v := byte(1); v <= 4; v++ {
		require.NoError(t, m.AddFrame(frame(v)))
	}

	require.NoError(t, m.UpdateDelayFrames(2))
	lenOnce := m.BufferedFrames()
	require.NoError(t, m.UpdateDelayFrames(2))
	require.Equal(t, lenOnce, m.BufferedFrames())
	require.Equal(t, 2, m.CurrentDelayFrames())
}

func TestUpdateDelayFrames_RejectsNegative(t *testing.T) {
	m, err := NewMotionExtractor(3, 0.5)
	require.NoError(t, err)
	require.ErrorIs(t, m.UpdateDelayFrames(-1), ErrInvalidArgument)
	require.Equal(t, 3, m.CurrentDelayFrames())
}

func TestReset_ClearsHistoryKeepsSettings(t *testing.T) {
	m, err := NewMotionExtractor(2, 0.5)
	require.NoError(t, err)
	require.NoError(t, m.AddFrame(frame(1)))
	require.NoError(t, m.AddFrame(frame(2)))

	m.Reset()
	require.Equal(t, 0, m.BufferedFrames())
	require.Equal(t, 2, m.CurrentDelayFrames())
	_, err = m.ExtractMotion()
	require.ErrorIs(t, err, ErrInsufficientData)
}
