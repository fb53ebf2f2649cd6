package images

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestScaleToFit_PreservesAspectRatio(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 800, 400))
	out := ScaleToFit(src, 400, 400)
	b := out.Bounds()
	if b.Dx() != 400 || b.Dy() != 200 {
		t.Fatalf("expected 400x200, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestScaleToFit_ReturnsOriginalWhenSmaller(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 50))
	out := ScaleToFit(src, 400, 400)
	if out != image.Image(src) {
		t.Fatalf("expected original image back when it already fits")
	}
}

func TestScaleToFit_NilAndTinyBounds(t *testing.T) {
	if ScaleToFit(nil, 10, 10) != nil {
		t.Fatalf("nil source must return nil")
	}
	src := image.NewRGBA(image.Rect(0, 0, 50, 50))
	out := ScaleToFit(src, 0, 0)
	b := out.Bounds()
	if b.Dx() < 1 || b.Dy() < 1 {
		t.Fatalf("scaled size must stay >= 1x1, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEncodePNG_RoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	data := EncodePNG(src)
	if len(data) == 0 {
		t.Fatalf("expected PNG bytes")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 8 {
		t.Fatalf("unexpected decoded size %v", img.Bounds())
	}
	if EncodePNG(nil) != nil {
		t.Fatalf("nil image must encode to nil")
	}
}
