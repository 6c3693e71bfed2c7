// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
	"tilekit.org/layout"
)

// IconButton is a square button showing an icon. A momentary button
// reports every click through OnClick; a toggle button also flips its
// selected state.
type IconButton struct {
	Icon *Icon
	// Toggle makes the button latch its selected state.
	Toggle bool
	// OnClick is called after every click, once the selected state
	// has been updated.
	OnClick func()
	// OnChange is called when the selected state changes.
	OnChange func(selected bool)

	selected bool
	pressed  bool
	focused  bool
}

var (
	_ layout.Clicker    = (*IconButton)(nil)
	_ layout.KeyHandler = (*IconButton)(nil)
	_ layout.Focusable  = (*IconButton)(nil)
	_ Selectable        = (*IconButton)(nil)
)

// bodyScale is the ratio of the button edge to the icon edge.
const bodyScale = 1.8

// NewIconButton returns a momentary button showing ic.
func NewIconButton(ic *Icon) *IconButton {
	return &IconButton{Icon: ic}
}

// NewToggleButton returns a toggle button showing ic.
func NewToggleButton(ic *Icon) *IconButton {
	return &IconButton{Icon: ic, Toggle: true}
}

func (b *IconButton) Selected() bool {
	return b.selected
}

func (b *IconButton) Select(selected bool) {
	if selected == b.selected {
		return
	}
	b.selected = selected
	if b.OnChange != nil {
		b.OnChange(selected)
	}
}

func (b *IconButton) Limits(gtx layout.BasicContext) layout.Limits {
	sz := float32(int(float32(b.Icon.px(gtx))*bodyScale + .5))
	return layout.FixedLimits(f32.Pt(sz, sz))
}

// Stretch is zero: a button keeps its natural size.
func (b *IconButton) Stretch() f32.Point {
	return f32.Point{}
}

func (b *IconButton) Layout(gtx layout.Context) {}

// Draw fills the body with the theme's button color, or its
// indicator color while pressed or selected, and centers the icon.
func (b *IconButton) Draw(gtx layout.Context) {
	if th := gtx.Theme; th != nil {
		body := th.Button
		if b.pressed || b.selected {
			body = th.Indicator
		}
		gtx.Canvas.Fill(gtx.Bounds, body)
		if b.focused {
			gtx.Canvas.Stroke(gtx.Bounds, gtx.Dp(th.FrameWidth), th.Frame)
		}
	} else {
		gtx.Canvas.Fill(gtx.Bounds, color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff})
	}
	b.Icon.Draw(gtx.Sub(b.Icon, gtx.Bounds))
}

// Click highlights the button on a press and activates it on the
// matching release.
func (b *IconButton) Click(gtx layout.Context, e pointer.Event) bool {
	switch e.Kind {
	case pointer.Press:
		b.pressed = true
		gtx.Refresh()
	case pointer.Release:
		if !b.pressed {
			return true
		}
		b.pressed = false
		b.activate(gtx)
	}
	return true
}

// Key activates the button on a space or return press.
func (b *IconButton) Key(gtx layout.Context, e key.Event) bool {
	if e.State != key.Press || shortcut(e) {
		return false
	}
	switch e.Name {
	case key.NameSpace, key.NameReturn, key.NameEnter:
		b.activate(gtx)
		return true
	}
	return false
}

func (b *IconButton) WantsFocus() bool {
	return true
}

func (b *IconButton) Focus(focused bool) {
	b.focused = focused
}

func (b *IconButton) activate(gtx layout.Context) {
	if b.Toggle {
		b.Select(!b.selected)
	}
	if b.OnClick != nil {
		b.OnClick()
	}
	gtx.Refresh()
}
