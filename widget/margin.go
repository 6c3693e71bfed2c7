// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
	"tilekit.org/layout"
	"tilekit.org/unit"
)

// Margin adds space around its subject.
type Margin struct {
	Proxy
	Top, Right, Bottom, Left unit.Dp
}

// NewMargin returns a Margin with the given insets around subject.
// Negative insets panic.
func NewMargin(top, right, bottom, left unit.Dp, subject layout.Element) *Margin {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		panic("widget: negative margin")
	}
	return &Margin{
		Proxy: Proxy{Subject: subject},
		Top:   top, Right: right, Bottom: bottom, Left: left,
	}
}

// UniformMargin returns a Margin with a single inset applied to all
// edges.
func UniformMargin(v unit.Dp, subject layout.Element) *Margin {
	return NewMargin(v, v, v, v, subject)
}

func (m *Margin) Limits(gtx layout.BasicContext) layout.Limits {
	l := m.Subject.Limits(gtx)
	dx := gtx.Dp(m.Left) + gtx.Dp(m.Right)
	dy := gtx.Dp(m.Top) + gtx.Dp(m.Bottom)
	l.Min.X += dx
	l.Min.Y += dy
	l.Max.X = l.Max.X.Add(layout.Px(dx))
	l.Max.Y = l.Max.Y.Add(layout.Px(dy))
	return l
}

func (m *Margin) Layout(gtx layout.Context) {
	b := m.inset(gtx)
	m.Subject.Layout(gtx.Sub(m.Subject, b))
}

func (m *Margin) Draw(gtx layout.Context) {
	b := m.inset(gtx)
	m.Subject.Draw(gtx.Sub(m.Subject, b))
}

func (m *Margin) Click(gtx layout.Context, e pointer.Event) bool {
	return click(gtx, m.Subject, m.inset(gtx), e)
}

func (m *Margin) Key(gtx layout.Context, e key.Event) bool {
	return keyPress(gtx, m.Subject, m.inset(gtx), e)
}

// inset returns the bounds of the subject.
func (m *Margin) inset(gtx layout.Context) f32.Rectangle {
	return gtx.Bounds.Inset(gtx.Dp(m.Left), gtx.Dp(m.Top), gtx.Dp(m.Right), gtx.Dp(m.Bottom))
}
