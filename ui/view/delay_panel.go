package view

import (
	"strconv"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// DelayPanel owns the delay adjustment row: a value entry flanked by
// increment/decrement buttons and a label mirroring the formatted delay.
type DelayPanel interface {
	SetText(text string)
	SetValue(frames int)
}

type delayPanel struct {
	entry   *TextWidget
	textLbl *LabelWidget
}

// NewDelayPanel builds the row at startRow. onIncrease/onDecrease fire on the
// +/- buttons; onInput receives the raw entry text when Apply is pressed.
func NewDelayPanel(startRow int, onIncrease, onDecrease func(), onInput func(text string)) DelayPanel {
	v := &delayPanel{}

	lbl := Label(Txt("Delay (frames)"), Anchor("w"))
	Grid(lbl, Row(startRow), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))

	decBtn := Button(Txt("-"), Command(func() { onDecrease() }))
	Grid(decBtn, Row(startRow), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	v.entry = Text(Height(1), Width(8))
	Grid(v.entry, Row(startRow), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	incBtn := Button(Txt("+"), Command(func() { onIncrease() }))
	Grid(incBtn, Row(startRow), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	applyBtn := Button(Txt("Apply"), Command(func() { onInput(v.entryText()) }))
	Grid(applyBtn, Row(startRow+1), Column(1), Columnspan(3), Sticky("we"), Padx("0.2m"), Pady("0.15m"))

	v.textLbl = Label(Txt(""), Anchor("w"))
	Grid(v.textLbl, Row(startRow+2), Column(0), Columnspan(4), Sticky("w"), Padx("0.4m"), Pady("0.15m"))

	return v
}

func (v *delayPanel) entryText() string {
	if v == nil || v.entry == nil {
		return ""
	}
	parts := v.entry.Get("1.0", END)
	return strings.TrimSpace(strings.Join(parts, ""))
}

// SetText updates the formatted delay label.
func (v *delayPanel) SetText(text string) {
	if v == nil || v.textLbl == nil {
		return
	}
	v.textLbl.Configure(Txt(text))
}

// SetValue rewrites the entry with the clamped frame count.
func (v *delayPanel) SetValue(frames int) {
	if v == nil || v.entry == nil {
		return
	}
	v.entry.Delete("1.0", END)
	v.entry.Insert("1.0", strconv.Itoa(frames))
}
