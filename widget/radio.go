// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
	"tilekit.org/layout"
)

// Selectable is implemented by elements with a selected state.
type Selectable interface {
	Selected() bool
	Select(selected bool)
}

// RadioButton is a labeled indicator that is one of a group of
// mutually exclusive choices. The group is formed by the radio
// buttons among the children of the nearest enclosing composite,
// looking through wrappers.
type RadioButton struct {
	Label Label
	// OnChange is called when the selected state changes.
	OnChange func(selected bool)

	selected bool
	focused  bool
}

var (
	_ layout.Clicker    = (*RadioButton)(nil)
	_ layout.KeyHandler = (*RadioButton)(nil)
	_ layout.Focusable  = (*RadioButton)(nil)
	_ Selectable        = (*RadioButton)(nil)
)

// NewRadioButton returns an unselected radio button labeled txt.
func NewRadioButton(txt string) *RadioButton {
	return &RadioButton{Label: Label{Text: txt}}
}

func (r *RadioButton) Selected() bool {
	return r.selected
}

// Select changes the selected state without affecting the rest of
// the group.
func (r *RadioButton) Select(selected bool) {
	if selected == r.selected {
		return
	}
	r.selected = selected
	if r.OnChange != nil {
		r.OnChange(selected)
	}
}

// Limits fits the indicator, a square as tall as the label, followed
// by the label.
func (r *RadioButton) Limits(gtx layout.BasicContext) layout.Limits {
	l := r.Label.Limits(gtx)
	h := l.Min.Y
	return layout.FixedLimits(f32.Pt(l.Min.X+h+r.gap(gtx), h))
}

// Stretch is zero: a radio button keeps its natural size.
func (r *RadioButton) Stretch() f32.Point {
	return f32.Point{}
}

func (r *RadioButton) Layout(gtx layout.Context) {}

func (r *RadioButton) Draw(gtx layout.Context) {
	ind, txt := r.split(gtx)
	if th := gtx.Theme; th != nil {
		w := gtx.Dp(th.FrameWidth)
		if r.focused {
			w *= 2
		}
		gtx.Canvas.Stroke(ind, w, th.Frame)
		if r.selected {
			d := ind.Dx() / 4
			gtx.Canvas.Fill(ind.Inset(d, d, d, d), th.Indicator)
		}
	}
	r.Label.Draw(gtx.Sub(&r.Label, txt))
}

// Click selects the button on a press and deselects the other
// buttons of its group.
func (r *RadioButton) Click(gtx layout.Context, e pointer.Event) bool {
	if e.Kind == pointer.Press {
		r.choose(gtx)
	}
	return true
}

// Key selects the button on a space or return press.
func (r *RadioButton) Key(gtx layout.Context, e key.Event) bool {
	if e.State != key.Press || shortcut(e) {
		return false
	}
	switch e.Name {
	case key.NameSpace, key.NameReturn, key.NameEnter:
		r.choose(gtx)
		return true
	}
	return false
}

func (r *RadioButton) WantsFocus() bool {
	return true
}

func (r *RadioButton) Focus(focused bool) {
	r.focused = focused
}

func (r *RadioButton) choose(gtx layout.Context) {
	if r.selected {
		return
	}
	comp, cctx := gtx.FindComposite()
	if comp == nil {
		r.Select(true)
		gtx.Refresh()
		return
	}
	for i := 0; i < comp.Len(); i++ {
		if rb, ok := Find(comp.At(i), isRadioButton).(*RadioButton); ok {
			rb.Select(rb == r)
		}
	}
	cctx.Refresh()
}

// split returns the bounds of the indicator and of the label.
func (r *RadioButton) split(gtx layout.Context) (ind, txt f32.Rectangle) {
	b := gtx.Bounds
	h := b.Dy()
	ind = f32.Rect(b.Min.X, b.Min.Y, b.Min.X+h, b.Max.Y)
	txt = f32.Rect(ind.Max.X+r.gap(gtx.BasicContext), b.Min.Y, b.Max.X, b.Max.Y)
	return ind, txt
}

func (r *RadioButton) gap(gtx layout.BasicContext) float32 {
	if gtx.Theme == nil {
		return 0
	}
	return gtx.Dp(gtx.Theme.Padding)
}

func isRadioButton(e layout.Element) bool {
	_, ok := e.(*RadioButton)
	return ok
}
