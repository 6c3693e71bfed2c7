// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"errors"
	"image/color"
	"testing"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/layout"
	"tilekit.org/op/paint"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

// testView records refresh requests.
type testView struct {
	rects []f32.Rectangle
}

func (v *testView) Refresh(e layout.Element) {}

func (v *testView) RefreshRect(r f32.Rectangle) { v.rects = append(v.rects, r) }

// run lays out and draws root in bounds and returns the root context
// and the recorded drawing.
func run(root layout.Element, bounds f32.Rectangle) (layout.Context, *paint.Recorder) {
	rec := new(paint.Recorder)
	gtx := layout.Context{
		BasicContext: layout.BasicContext{View: new(testView)},
		Canvas:       rec,
		Element:      root,
		Bounds:       bounds,
	}
	root.Layout(gtx)
	root.Draw(gtx)
	return gtx, rec
}

func TestMargin(t *testing.T) {
	box := &Box{Color: red}
	m := NewMargin(1, 2, 3, 4, FixedSize(10, 10, box))
	l := m.Limits(layout.BasicContext{})
	if got, want := l.Min, f32.Pt(16, 14); got != want {
		t.Errorf("min = %v, want %v", got, want)
	}
	if got, want := l.Max, layout.SizePt(f32.Pt(16, 14)); got != want {
		t.Errorf("max = %v, want %v", got, want)
	}
	_, rec := run(m, f32.Rect(0, 0, 16, 14))
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Kind != paint.OpFill {
		t.Fatalf("ops = %v, want a single fill", ops)
	}
	if got, want := ops[0].Rect, f32.Rect(4, 1, 14, 11); got != want {
		t.Errorf("fill = %v, want %v", got, want)
	}
}

func TestMarginUnbounded(t *testing.T) {
	l := UniformMargin(5, new(Box)).Limits(layout.BasicContext{})
	if !l.Max.X.IsUnbounded() || !l.Max.Y.IsUnbounded() {
		t.Errorf("max = %v, want unbounded", l.Max)
	}
	if got, want := l.Min, f32.Pt(10, 10); got != want {
		t.Errorf("min = %v, want %v", got, want)
	}
}

func TestFixed(t *testing.T) {
	l := HSize(30, new(Box)).Limits(layout.BasicContext{})
	if l.Min.X != 30 || l.Max.X != layout.Px(30) {
		t.Errorf("x limits = %v", l)
	}
	if l.Min.Y != 0 || !l.Max.Y.IsUnbounded() {
		t.Errorf("y limits = %v", l)
	}
	l = VSpace(7).Limits(layout.BasicContext{})
	if l.Min.Y != 7 || l.Max.Y != layout.Px(7) || !l.Max.X.IsUnbounded() {
		t.Errorf("vspace limits = %v", l)
	}
}

func TestLimit(t *testing.T) {
	want := layout.Limits{Min: f32.Pt(5, 5), Max: layout.Size{X: layout.Px(50), Y: layout.Px(20)}}
	lim, err := NewLimit(want, new(Box))
	if err != nil {
		t.Fatal(err)
	}
	if got := lim.Limits(layout.BasicContext{}); got != want {
		t.Errorf("limits = %v, want %v", got, want)
	}
	// The subject's minimum wins over a smaller maximum.
	lim, err = NewLimit(want, FixedSize(60, 10, new(Box)))
	if err != nil {
		t.Fatal(err)
	}
	got := lim.Limits(layout.BasicContext{})
	if got.Min.X != 60 || got.Max.X != layout.Px(60) {
		t.Errorf("limits = %v, want width 60", got)
	}
	_, err = NewLimit(layout.Limits{Min: f32.Pt(30, 0), Max: layout.Size{X: layout.Px(20), Y: layout.Unbounded}}, new(Box))
	if !errors.Is(err, layout.ErrInvertedLimits) {
		t.Errorf("err = %v, want %v", err, layout.ErrInvertedLimits)
	}
}

func TestStretchOverride(t *testing.T) {
	a, b := new(Box), new(Box)
	tile := layout.HTile(HStretch(0, a), b)
	gtx, _ := run(tile, f32.Rect(0, 0, 100, 10))
	if got, want := tile.BoundsOf(gtx, 0), f32.Rect(0, 0, 0, 10); got != want {
		t.Errorf("bounds of 0 = %v, want %v", got, want)
	}
	if got, want := tile.BoundsOf(gtx, 1), f32.Rect(0, 0, 100, 10); got != want {
		t.Errorf("bounds of 1 = %v, want %v", got, want)
	}
	if got, want := VStretch(3, a).Stretch(), f32.Pt(1, 3); got != want {
		t.Errorf("stretch = %v, want %v", got, want)
	}
}

func TestBasic(t *testing.T) {
	var drawn f32.Rectangle
	b := NewBasic(func(gtx layout.Context) {
		drawn = gtx.Bounds
	})
	run(b, f32.Rect(1, 2, 3, 4))
	if want := f32.Rect(1, 2, 3, 4); drawn != want {
		t.Errorf("drawn = %v, want %v", drawn, want)
	}
}

func TestKeyIntercept(t *testing.T) {
	r := NewRadioButton("a")
	var intercepted []key.Name
	k := NewKeyIntercept(r, func(e key.Event) bool {
		if e.Name == key.NameEscape {
			intercepted = append(intercepted, e.Name)
			return true
		}
		return false
	})
	gtx, _ := run(k, f32.Rect(0, 0, 100, 20))
	if !k.Key(gtx, key.Event{Name: key.NameEscape}) {
		t.Error("escape not consumed")
	}
	if r.Selected() {
		t.Error("escape reached the subject")
	}
	if !k.Key(gtx, key.Event{Name: key.NameSpace}) {
		t.Error("space not consumed")
	}
	if !r.Selected() {
		t.Error("space did not select the subject")
	}
	if len(intercepted) != 1 {
		t.Errorf("intercepted %v, want one escape", intercepted)
	}
	if k.Key(gtx, key.Event{Name: "A"}) {
		t.Error("unhandled key consumed")
	}
}

func TestFind(t *testing.T) {
	r := NewRadioButton("a")
	e := UniformMargin(2, HStretch(0, r))
	if got := Find(e, isRadioButton); got != r {
		t.Errorf("Find = %v, want %v", got, r)
	}
	if got := Find(new(Box), isRadioButton); got != nil {
		t.Errorf("Find = %v, want nil", got)
	}
}
