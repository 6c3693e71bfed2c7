// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image/color"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
)

// testElem is a leaf with configurable limits that records what the
// tree protocol did to it.
type testElem struct {
	lim     Limits
	stretch f32.Point

	bounds  f32.Rectangle
	layouts int
	draws   int
	depth   int
	parent  Element

	wantsFocus bool
	focused    bool
	clicks     int
	keys       []key.Event
}

func elem(minX, minY float32, maxX, maxY Length) *testElem {
	return &testElem{
		lim:     Limits{Min: f32.Pt(minX, minY), Max: Size{X: maxX, Y: maxY}},
		stretch: f32.Pt(1, 1),
	}
}

// flexible returns an element with the given minimum size that grows
// without limit.
func flexible(minX, minY float32) *testElem {
	return elem(minX, minY, Unbounded, Unbounded)
}

func (e *testElem) Limits(BasicContext) Limits { return e.lim }

func (e *testElem) Stretch() f32.Point { return e.stretch }

func (e *testElem) Layout(gtx Context) {
	e.bounds = gtx.Bounds
	e.layouts++
	e.depth = gtx.Depth()
	if gtx.Parent != nil {
		e.parent = gtx.Parent.Element
	}
}

func (e *testElem) Draw(gtx Context) {
	e.draws++
	gtx.Canvas.Fill(gtx.Bounds, testColor)
}

func (e *testElem) WantsFocus() bool { return e.wantsFocus }

func (e *testElem) Focus(focused bool) { e.focused = focused }

func (e *testElem) Click(gtx Context, ev pointer.Event) bool {
	e.clicks++
	return true
}

func (e *testElem) Key(gtx Context, ev key.Event) bool {
	e.keys = append(e.keys, ev)
	return true
}

var testColor = color.NRGBA{R: 0xff, A: 0xff}

// testView records refresh requests.
type testView struct {
	elems []Element
	rects []f32.Rectangle
}

func (v *testView) Refresh(e Element) { v.elems = append(v.elems, e) }

func (v *testView) RefreshRect(r f32.Rectangle) { v.rects = append(v.rects, r) }

func layoutRoot(root Element, bounds f32.Rectangle) Context {
	gtx := Context{
		BasicContext: BasicContext{View: new(testView)},
		Element:      root,
		Bounds:       bounds,
	}
	root.Layout(gtx)
	return gtx
}
