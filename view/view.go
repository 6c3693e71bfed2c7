// SPDX-License-Identifier: Unlicense OR MIT

/*
Package view owns an element tree and drives it: it lays the tree out
in the view bounds, draws it onto a canvas, routes pointer and key
events to it and collects the regions elements ask to be redrawn.

A View is not safe for concurrent use. Separate views may be used
from separate goroutines.
*/
package view

import (
	"image/color"

	"github.com/npillmayer/schuko/tracing"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
	"tilekit.org/layout"
	"tilekit.org/op/paint"
	"tilekit.org/theme"
	"tilekit.org/unit"
)

// tracer traces to key 'tilekit.view'.
func tracer() tracing.Trace {
	return tracing.Select("tilekit.view")
}

// View is the root of an element tree.
type View struct {
	metric     unit.Metric
	theme      *theme.Theme
	background color.NRGBA

	root   *layout.Layer
	bounds f32.Rectangle
	dirty  f32.Rectangle
	// valid reports whether the layout is up to date.
	valid bool
}

var _ layout.View = (*View)(nil)

// Option configures a view.
type Option func(v *View)

// WithMetric sets the pixel density of the view.
func WithMetric(m unit.Metric) Option {
	return func(v *View) {
		v.metric = m
	}
}

// WithTheme sets the theme used by the elements of the view. The view
// draws with its own clone of th, so one theme may configure views
// used on separate goroutines.
func WithTheme(th *theme.Theme) Option {
	return func(v *View) {
		v.theme = th.Clone()
	}
}

// WithBackground sets the color drawn behind the content. The
// default is the theme background.
func WithBackground(c color.NRGBA) Option {
	return func(v *View) {
		v.background = c
	}
}

// New returns an empty view of zero size.
func New(opts ...Option) *View {
	v := &View{root: layout.NewLayer()}
	for _, o := range opts {
		o(v)
	}
	if v.theme == nil {
		v.theme = theme.New()
	}
	if v.background == (color.NRGBA{}) {
		v.background = v.theme.Background
	}
	return v
}

// SetContent replaces the content of the view with layers, the
// topmost first.
func (v *View) SetContent(layers ...layout.Element) {
	v.root = layout.NewLayer(layers...)
	v.invalidate()
}

// Content returns the root layer.
func (v *View) Content() *layout.Layer {
	return v.root
}

// Theme returns the theme of the view. It must only be used from the
// goroutine using the view.
func (v *View) Theme() *theme.Theme {
	return v.theme
}

// Resize sets the size of the view.
func (v *View) Resize(sz f32.Point) {
	b := f32.Rectangle{Max: sz}
	if b == v.bounds {
		return
	}
	v.bounds = b
	v.invalidate()
}

// Bounds returns the view bounds.
func (v *View) Bounds() f32.Rectangle {
	return v.bounds
}

// Limits returns the limits of the content.
func (v *View) Limits() layout.Limits {
	return v.root.Limits(v.basic())
}

// Layout lays out the content in the view bounds.
func (v *View) Layout() {
	gtx := v.context(nil)
	v.root.Layout(gtx)
	v.valid = true
	tracer().Debugf("view: layout %v, %d layers", v.bounds.Size(), v.root.Len())
}

// Draw fills the background and draws the content onto c, laying out
// the content first if needed. Only the part of the view inside the
// canvas clip is drawn.
func (v *View) Draw(c paint.Canvas) {
	if !v.valid {
		v.Layout()
	}
	if bg := v.bounds.Intersect(c.Clip()); !bg.Empty() && v.background.A != 0 {
		c.Fill(bg, v.background)
	}
	v.root.Draw(v.context(c))
}

// Click routes e to the content. It reports whether an element
// consumed the event.
func (v *View) Click(e pointer.Event) bool {
	if !v.valid {
		v.Layout()
	}
	if !e.Position.In(v.bounds) {
		return false
	}
	return v.root.Click(v.context(nil), e)
}

// Key routes e to the focused element. It reports whether an element
// consumed the event.
func (v *View) Key(e key.Event) bool {
	if !v.valid {
		v.Layout()
	}
	return v.root.Key(v.context(nil), e)
}

// Refresh adds the bounds of e to the dirty region. Elements not in
// the tree are ignored.
func (v *View) Refresh(e layout.Element) {
	if !v.valid {
		v.Layout()
	}
	gtx := v.context(nil)
	if b, ok := find(&gtx, e); ok {
		v.RefreshRect(b)
	}
}

// RefreshRect adds r to the dirty region.
func (v *View) RefreshRect(r f32.Rectangle) {
	v.dirty = v.dirty.Union(r.Intersect(v.bounds))
}

// Dirty returns the region that needs redrawing.
func (v *View) Dirty() f32.Rectangle {
	return v.dirty
}

// ClearDirty empties the dirty region, typically after a redraw.
func (v *View) ClearDirty() {
	v.dirty = f32.Rectangle{}
}

func (v *View) invalidate() {
	v.valid = false
	v.RefreshRect(v.bounds)
}

func (v *View) basic() layout.BasicContext {
	return layout.BasicContext{
		View:   v,
		Metric: v.metric,
		Theme:  v.theme,
	}
}

func (v *View) context(c paint.Canvas) layout.Context {
	return layout.Context{
		BasicContext: v.basic(),
		Canvas:       c,
		Element:      v.root,
		Bounds:       v.bounds,
	}
}

// find returns the bounds of target in the tree rooted at gtx.
// Wrapped elements report the bounds of their wrapper.
func find(gtx *layout.Context, target layout.Element) (f32.Rectangle, bool) {
	if gtx.Element == target {
		return gtx.Bounds, true
	}
	switch e := gtx.Element.(type) {
	case layout.Composite:
		for i := 0; i < e.Len(); i++ {
			sub := gtx.Sub(e.At(i), e.BoundsOf(*gtx, i))
			if b, ok := find(&sub, target); ok {
				return b, true
			}
		}
	case layout.Wrapper:
		sub := gtx.Sub(e.Unwrap(), gtx.Bounds)
		return find(&sub, target)
	}
	return f32.Rectangle{}, false
}
