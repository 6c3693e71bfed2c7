// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"tilekit.org/f32"
	"tilekit.org/op/paint"
	"tilekit.org/theme"
	"tilekit.org/unit"
)

// View is the owner of an element tree as seen by its elements.
type View interface {
	// Refresh requests a redraw of the area covered by e.
	Refresh(e Element)
	// RefreshRect requests a redraw of r.
	RefreshRect(r f32.Rectangle)
}

// BasicContext carries the state needed to measure elements.
type BasicContext struct {
	View   View
	Metric unit.Metric
	Theme  *theme.Theme
}

// Context carries the state of one element during Layout and Draw.
// Contexts form a chain through Parent that mirrors the path from
// the root to the element. A Context and its chain are only valid
// during the call they were passed to.
type Context struct {
	BasicContext

	// Canvas is the drawing surface. It is nil outside of Draw.
	Canvas paint.Canvas
	// Element is the element the context was built for.
	Element Element
	// Bounds are the bounds assigned to Element.
	Bounds f32.Rectangle
	// Parent is the context of the enclosing element, or nil
	// at the root.
	Parent *Context
}

// Sub returns the context of e, a child of c.Element, with the given
// bounds.
func (c *Context) Sub(e Element, bounds f32.Rectangle) Context {
	return Context{
		BasicContext: c.BasicContext,
		Canvas:       c.Canvas,
		Element:      e,
		Bounds:       bounds,
		Parent:       c,
	}
}

// FindComposite returns the nearest enclosing composite and its
// context. It returns nil, nil if no ancestor is a composite.
func (c *Context) FindComposite() (Composite, *Context) {
	for p := c.Parent; p != nil; p = p.Parent {
		if comp, ok := p.Element.(Composite); ok {
			return comp, p
		}
	}
	return nil, nil
}

// Depth returns the number of ancestors of c.
func (c *Context) Depth() int {
	n := 0
	for p := c.Parent; p != nil; p = p.Parent {
		n++
	}
	return n
}

// Clip returns the visible part of the canvas, or paint.Infinite
// when there is no canvas.
func (c *Context) Clip() f32.Rectangle {
	if c.Canvas == nil {
		return paint.Infinite
	}
	return c.Canvas.Clip()
}

// Refresh asks the view to redraw the bounds of c.
func (c *Context) Refresh() {
	if c.View != nil {
		c.View.RefreshRect(c.Bounds)
	}
}

// Dp converts v to pixels using the context's metric.
func (c BasicContext) Dp(v unit.Dp) float32 {
	return c.Metric.Dp(v)
}

// Sp converts v to pixels using the context's metric.
func (c BasicContext) Sp(v unit.Sp) float32 {
	return c.Metric.Sp(v)
}
