// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
)

// Layer stacks its children on top of each other. The first child
// is the topmost: it is drawn last and receives pointer events
// first.
type Layer struct {
	children

	bounds []f32.Rectangle
}

var (
	_ Composite = (*Layer)(nil)
	_ Clicker   = (*Layer)(nil)
)

// NewLayer returns a layer of elems, topmost first.
func NewLayer(elems ...Element) *Layer {
	l := new(Layer)
	l.Add(elems...)
	return l
}

// Limits intersects the limits of the children: the layer is as
// large as the largest minimum and as small as the smallest
// maximum, but never smaller than its minimum.
func (l *Layer) Limits(gtx BasicContext) Limits {
	lim := FullLimits()
	for _, e := range l.elems {
		el := e.Limits(gtx)
		f32.ClampMin(&lim.Min.X, el.Min.X)
		f32.ClampMin(&lim.Min.Y, el.Min.Y)
		lim.Max.X = MinLength(lim.Max.X, el.Max.X)
		lim.Max.Y = MinLength(lim.Max.Y, el.Max.Y)
	}
	return lim.Clamp()
}

func (l *Layer) Stretch() f32.Point {
	return f32.Point{X: 1, Y: 1}
}

// Layout gives every child the layer's bounds, reduced to the
// child's maximum size.
func (l *Layer) Layout(gtx Context) {
	n := len(l.elems)
	if cap(l.bounds) < n {
		l.bounds = make([]f32.Rectangle, n)
	}
	l.bounds = l.bounds[:n]
	for i, e := range l.elems {
		lim := e.Limits(gtx.BasicContext)
		b := gtx.Bounds
		f32.ClampMax(&b.Max.X, b.Min.X+lim.Max.X.Px())
		f32.ClampMax(&b.Max.Y, b.Min.Y+lim.Max.Y.Px())
		l.bounds[i] = b
		e.Layout(gtx.Sub(e, b))
	}
}

// Draw draws the children bottom to top.
func (l *Layer) Draw(gtx Context) {
	DrawChildren(gtx, l, true)
}

// BoundsOf returns the bounds of the ith child as of the last
// Layout. It returns the empty rectangle for an out of range i.
func (l *Layer) BoundsOf(_ Context, i int) f32.Rectangle {
	if i < 0 || i >= len(l.bounds) {
		return f32.Rectangle{}
	}
	return l.bounds[i]
}

// Click offers e to the children under the pointer, topmost first.
func (l *Layer) Click(gtx Context, e pointer.Event) bool {
	return l.click(gtx, l, e)
}

// Key routes e to the focused child.
func (l *Layer) Key(gtx Context, e key.Event) bool {
	return l.key(gtx, l, e)
}
