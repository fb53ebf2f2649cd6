package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StatusBar shows the camera name, stream rate and session/total durations.
type StatusBar interface {
	SetCameraName(name string)
	SetFPS(fps float64)
	SetSession(session, total time.Duration)
}

type statusBar struct {
	cameraLbl  *LabelWidget
	fpsLbl     *LabelWidget
	sessionLbl *LabelWidget
	totalLbl   *LabelWidget
}

// NewStatusBar creates the status labels on the given row.
func NewStatusBar(row int) StatusBar {
	s := &statusBar{
		cameraLbl:  Label(Width(18)),
		fpsLbl:     Label(Width(10)),
		sessionLbl: Label(Width(14)),
		totalLbl:   Label(Width(14)),
	}
	Grid(s.cameraLbl, Row(row), Column(0), Sticky("w"), Padx("0.2m"))
	Grid(s.fpsLbl, Row(row), Column(1), Sticky("w"), Padx("0.2m"))
	Grid(s.sessionLbl, Row(row), Column(2), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, Row(row), Column(3), Sticky("w"), Padx("0.2m"))
	s.cameraLbl.Configure(Txt("Camera: <none>"))
	s.fpsLbl.Configure(Txt("FPS: --"))
	s.sessionLbl.Configure(Txt("Session: 00:00"))
	s.totalLbl.Configure(Txt("Total: 00:00"))
	return s
}

// SetCameraName updates the camera label.
func (s *statusBar) SetCameraName(name string) {
	if s == nil || s.cameraLbl == nil {
		return
	}
	s.cameraLbl.Configure(Txt("Camera: " + name))
}

// SetFPS updates the stream rate label.
func (s *statusBar) SetFPS(fps float64) {
	if s == nil || s.fpsLbl == nil {
		return
	}
	s.fpsLbl.Configure(Txt(fmt.Sprintf("FPS: %.1f", fps)))
}

// SetSession updates the session and total duration labels.
func (s *statusBar) SetSession(session, total time.Duration) {
	if s == nil || s.sessionLbl == nil || s.totalLbl == nil {
		return
	}
	s.sessionLbl.Configure(Txt("Session: " + clock(session)))
	s.totalLbl.Configure(Txt("Total: " + clock(total)))
}

func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
