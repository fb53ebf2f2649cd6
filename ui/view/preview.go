package view

import (
	"image"

	"github.com/soocke/motion-extract-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// MotionPreview owns the label that renders the extracted motion frames.
type MotionPreview interface {
	Update(img image.Image)
	Reset()
}

type motionPreview struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo instance, replaced on every update
	w, h      int
}

// NewMotionPreview creates the preview label and grids it at the given row,
// spanning the full width of the layout.
func NewMotionPreview(row, w, h int) MotionPreview {
	if w < 1 {
		w = 400
	}
	if h < 1 {
		h = 300
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, w, h))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return &motionPreview{label: label, prevPhoto: photo, w: w, h: h}
}

// Update replaces the preview image. The frame is expected to be pre-scaled
// by the presenter; no further resizing happens here.
func (v *motionPreview) Update(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}

// Reset restores the blank placeholder.
func (v *motionPreview) Reset() {
	if v == nil || v.label == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, v.w, v.h))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
