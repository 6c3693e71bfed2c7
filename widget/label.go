// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"tilekit.org/f32"
	"tilekit.org/layout"
	"tilekit.org/unit"
)

// Label is a single line of text. Its limits are fixed to the size
// of the text.
type Label struct {
	layout.Leaf
	Text string
	// Size is the text size. Zero means the theme's text size.
	Size unit.Sp
	// Color is the text color. The zero value means the theme's
	// text color.
	Color color.NRGBA

	// scale multiplies the theme's text size.
	scale float32
}

// headingScale is the size of headings relative to labels.
const headingScale = 1.5

// Heading is a label in a larger default size.
type Heading struct {
	Label
}

// NewHeading returns a heading showing txt.
func NewHeading(txt string) *Heading {
	return &Heading{Label: Label{Text: txt, scale: headingScale}}
}

// NewLabel returns a label showing txt.
func NewLabel(txt string) *Label {
	return &Label{Text: txt}
}

func (l *Label) Limits(gtx layout.BasicContext) layout.Limits {
	face := l.face(gtx)
	m := face.Metrics()
	w := font.MeasureString(face, l.Text).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	return layout.FixedLimits(f32.Pt(float32(w), float32(h)))
}

// Draw draws the text at the left edge of the bounds, centered
// vertically.
func (l *Label) Draw(gtx layout.Context) {
	face := l.face(gtx.BasicContext)
	m := face.Metrics()
	asc, desc := float32(m.Ascent.Ceil()), float32(m.Descent.Ceil())
	y := gtx.Bounds.Min.Y + (gtx.Bounds.Dy()-asc-desc)/2 + asc
	c := l.Color
	if c == (color.NRGBA{}) && gtx.Theme != nil {
		c = gtx.Theme.Text
	}
	gtx.Canvas.Text(f32.Pt(gtx.Bounds.Min.X, y), face, l.Text, c)
}

func (l *Label) face(gtx layout.BasicContext) font.Face {
	th := gtx.Theme
	if th == nil {
		return basicfont.Face7x13
	}
	size := l.Size
	if size == 0 {
		size = th.TextSize
		if l.scale > 0 {
			size *= unit.Sp(l.scale)
		}
	}
	return th.Face(gtx.Sp(size))
}
