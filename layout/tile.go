// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"github.com/npillmayer/schuko/tracing"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
)

// tracer traces to key 'tilekit.layout'.
func tracer() tracing.Trace {
	return tracing.Select("tilekit.layout")
}

// Tile lays out its children next to each other along Axis. Every
// child spans the full cross axis; the main axis is divided among
// the children by Allocate, in child order.
type Tile struct {
	children

	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis

	// cross holds the start and end of the cross axis.
	cross [2]float32
	// tiles holds the start of every child along the main axis,
	// followed by the end of the last child. Only Layout writes it.
	tiles []float32
	spans []Span
}

var (
	_ Composite  = (*Tile)(nil)
	_ Clicker    = (*Tile)(nil)
	_ KeyHandler = (*Tile)(nil)
	_ Focusable  = (*Tile)(nil)
)

// VTile returns a tile stacking children top to bottom.
func VTile(elems ...Element) *Tile {
	t := &Tile{Axis: Vertical}
	t.Add(elems...)
	return t
}

// HTile returns a tile placing children left to right.
func HTile(elems ...Element) *Tile {
	t := &Tile{Axis: Horizontal}
	t.Add(elems...)
	return t
}

// Limits sums the children's limits along the main axis. Along the
// cross axis the tile is as large as its largest minimum and as small
// as its smallest maximum, but never smaller than its minimum.
func (t *Tile) Limits(gtx BasicContext) Limits {
	// In (main, cross) coordinates.
	var min f32.Point
	max := Size{X: Px(0), Y: Unbounded}
	for _, e := range t.elems {
		l := e.Limits(gtx)
		emin := t.Axis.Convert(l.Min)
		emax := l.Max.convert(t.Axis)
		min.X += emin.X
		max.X = max.X.Add(emax.X)
		f32.ClampMin(&min.Y, emin.Y)
		max.Y = MinLength(max.Y, emax.Y)
	}
	max.X = MaxLength(max.X, Px(min.X))
	max.Y = MaxLength(max.Y, Px(min.Y))
	return Limits{
		Min: t.Axis.Convert(min),
		Max: max.convert(t.Axis),
	}
}

func (t *Tile) Stretch() f32.Point {
	return f32.Point{X: 1, Y: 1}
}

// Layout divides gtx.Bounds among the children and lays them out.
func (t *Tile) Layout(gtx Context) {
	bmin, bmax := t.Axis.Convert(gtx.Bounds.Min), t.Axis.Convert(gtx.Bounds.Max)
	t.cross = [2]float32{bmin.Y, bmax.Y}
	n := len(t.elems)
	if cap(t.tiles) < n+1 {
		t.tiles = make([]float32, n+1)
		t.spans = make([]Span, n)
	}
	t.tiles = t.tiles[:n+1]
	t.spans = t.spans[:n]

	for i, e := range t.elems {
		l := e.Limits(gtx.BasicContext)
		stretch := t.Axis.Convert(e.Stretch()).X
		if stretch < 0 {
			stretch = 0
		}
		t.spans[i] = Span{
			Min:     float64(t.Axis.Convert(l.Min).X),
			Max:     float64(l.Max.convert(t.Axis).X.Px()),
			Stretch: float64(stretch),
		}
	}
	length := float64(bmax.X - bmin.X)
	rounds := Allocate(length, t.spans)

	curr := float64(bmin.X)
	for i, e := range t.elems {
		start := float32(curr)
		curr += t.spans[i].Alloc
		end := float32(curr)
		t.tiles[i] = start
		e.Layout(gtx.Sub(e, t.rect(start, end)))
	}
	t.tiles[n] = float32(curr)
	tracer().Debugf("tile %v: %d children in %.1fpx, %d rounds, slack %.2f",
		t.Axis, n, length, rounds, float64(bmax.X)-curr)
}

// Draw draws the children visible on the canvas.
func (t *Tile) Draw(gtx Context) {
	DrawChildren(gtx, t, false)
}

// BoundsOf returns the bounds of the ith child as of the last
// Layout. It returns the empty rectangle for an out of range i.
func (t *Tile) BoundsOf(_ Context, i int) f32.Rectangle {
	if i < 0 || i+1 >= len(t.tiles) {
		return f32.Rectangle{}
	}
	return t.rect(t.tiles[i], t.tiles[i+1])
}

// Click routes e to the child under the pointer.
func (t *Tile) Click(gtx Context, e pointer.Event) bool {
	return t.click(gtx, t, e)
}

// Key routes e to the focused child.
func (t *Tile) Key(gtx Context, e key.Event) bool {
	return t.key(gtx, t, e)
}

// rect returns the rectangle from start to end along the main axis
// spanning the cross axis.
func (t *Tile) rect(start, end float32) f32.Rectangle {
	return f32.Rectangle{
		Min: t.Axis.Convert(f32.Point{X: start, Y: t.cross[0]}),
		Max: t.Axis.Convert(f32.Point{X: end, Y: t.cross[1]}),
	}
}
