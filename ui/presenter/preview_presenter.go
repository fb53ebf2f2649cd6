package presenter

import (
	"image"

	"github.com/soocke/motion-extract-go/domain/stream"
	"github.com/soocke/motion-extract-go/ui/images"
)

// MotionSource supplies the most recent motion output frame.
type MotionSource interface {
	Running() bool
	LatestFrame() stream.FrameSnapshot
}

// PreviewView receives scaled motion frames.
type PreviewView interface {
	UpdatePreview(img image.Image)
}

// PreviewPresenter copies fresh motion frames from the stream service to the
// preview view, scaled to the preview bounds. Frames already rendered (same
// sequence number) are skipped.
type PreviewPresenter struct {
	source  MotionSource
	view    PreviewView
	maxW    int
	maxH    int
	lastSeq uint64
}

func NewPreviewPresenter(source MotionSource, view PreviewView, maxW, maxH int) *PreviewPresenter {
	if maxW < 1 {
		maxW = 400
	}
	if maxH < 1 {
		maxH = 300
	}
	return &PreviewPresenter{source: source, view: view, maxW: maxW, maxH: maxH}
}

// ProcessFrame renders the latest snapshot if it is newer than the one shown.
func (p *PreviewPresenter) ProcessFrame() {
	if p == nil || p.source == nil || p.view == nil {
		return
	}
	if !p.source.Running() {
		return
	}
	snap := p.source.LatestFrame()
	if snap.Image == nil || snap.Sequence == p.lastSeq {
		return
	}
	p.lastSeq = snap.Sequence
	p.view.UpdatePreview(images.ScaleToFit(snap.Image, p.maxW, p.maxH))
}
