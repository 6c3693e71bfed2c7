// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"tilekit.org/f32"
	"tilekit.org/layout"
)

// Box fills its bounds with a solid color.
type Box struct {
	layout.Leaf
	Color color.NRGBA
}

func (b *Box) Draw(gtx layout.Context) {
	gtx.Canvas.Fill(gtx.Bounds, b.Color)
}

// Basic draws with a function and otherwise behaves like a Leaf.
type Basic struct {
	layout.Leaf
	DrawFunc func(gtx layout.Context)
}

// NewBasic returns a Basic element drawing with f.
func NewBasic(f func(gtx layout.Context)) *Basic {
	return &Basic{DrawFunc: f}
}

func (b *Basic) Draw(gtx layout.Context) {
	if b.DrawFunc != nil {
		b.DrawFunc(gtx)
	}
}

// Panel fills its bounds with the theme's panel color.
type Panel struct {
	layout.Leaf
}

func (p *Panel) Draw(gtx layout.Context) {
	if th := gtx.Theme; th != nil {
		gtx.Canvas.Fill(gtx.Bounds, th.Panel)
	}
}

// Frame outlines its bounds with the theme's frame color.
type Frame struct {
	layout.Leaf
}

func (f *Frame) Draw(gtx layout.Context) {
	if th := gtx.Theme; th != nil {
		gtx.Canvas.Stroke(gtx.Bounds, gtx.Dp(th.FrameWidth), th.Frame)
	}
}

// TitleBar is the background of a title: a panel with a frame
// colored rule along its bottom edge.
type TitleBar struct {
	layout.Leaf
}

func (t *TitleBar) Draw(gtx layout.Context) {
	th := gtx.Theme
	if th == nil {
		return
	}
	b := gtx.Bounds
	gtx.Canvas.Fill(b, th.Panel)
	w := gtx.Dp(th.FrameWidth)
	gtx.Canvas.Fill(f32.Rect(b.Min.X, b.Max.Y-w, b.Max.X, b.Max.Y), th.Frame)
}
