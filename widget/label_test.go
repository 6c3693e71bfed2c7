// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"
	"testing"

	"golang.org/x/exp/shiny/materialdesign/icons"

	"tilekit.org/f32"
	"tilekit.org/layout"
	"tilekit.org/op/paint"
	"tilekit.org/theme"
)

func TestLabelFallbackFace(t *testing.T) {
	l := NewLabel("Hello")
	// The fixed face is 7px wide and 11+2px tall.
	if got, want := l.Limits(layout.BasicContext{}), layout.FixedLimits(f32.Pt(35, 13)); got != want {
		t.Errorf("limits = %v, want %v", got, want)
	}
	l.Color = red
	_, rec := run(l, f32.Rect(10, 20, 45, 33))
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Kind != paint.OpText {
		t.Fatalf("ops = %v, want a single text", ops)
	}
	if got, want := ops[0].Dot, f32.Pt(10, 31); got != want {
		t.Errorf("dot = %v, want %v", got, want)
	}
	if ops[0].Text != "Hello" || ops[0].Color != red {
		t.Errorf("op = %v", ops[0])
	}
}

func TestLabelTheme(t *testing.T) {
	th := theme.New()
	gtx := layout.BasicContext{Theme: th}
	small := NewLabel("Hello").Limits(gtx)
	if small.Min.X <= 0 || small.Min.Y <= 0 {
		t.Fatalf("limits = %v, want a positive size", small)
	}
	if small.Max != layout.SizePt(small.Min) {
		t.Errorf("limits = %v, want fixed", small)
	}
	big := (&Label{Text: "Hello", Size: th.TextSize * 2}).Limits(gtx)
	if big.Min.X <= small.Min.X || big.Min.Y <= small.Min.Y {
		t.Errorf("limits %v not larger than %v", big, small)
	}
	_, rec := run(NewLabel("Hello"), f32.Rect(0, 0, 100, 20))
	if ops := rec.Ops(); len(ops) != 1 || ops[0].Color != (color.NRGBA{}) {
		t.Errorf("ops = %v, want one text without a theme color", ops)
	}
}

func TestIcon(t *testing.T) {
	ic, err := NewIcon(icons.ActionHome)
	if err != nil {
		t.Fatal(err)
	}
	gtx := layout.BasicContext{Theme: theme.New()}
	if got, want := ic.Limits(gtx), layout.FixedLimits(f32.Pt(18, 18)); got != want {
		t.Errorf("limits = %v, want %v", got, want)
	}
	rec := new(paint.Recorder)
	ic.Draw(layout.Context{BasicContext: gtx, Canvas: rec, Element: ic, Bounds: f32.Rect(0, 0, 38, 18)})
	ops := rec.Ops()
	if len(ops) != 1 || ops[0].Kind != paint.OpImage {
		t.Fatalf("ops = %v, want a single image", ops)
	}
	if got, want := ops[0].Rect, f32.Rect(10, 0, 28, 18); got != want {
		t.Errorf("image rect = %v, want %v", got, want)
	}
	if got := ops[0].Image.Bounds().Dx(); got != 18 {
		t.Errorf("image width = %d, want 18", got)
	}
	// The rasterized image is cached.
	rec.Reset()
	ic.Draw(layout.Context{BasicContext: gtx, Canvas: rec, Element: ic, Bounds: f32.Rect(0, 0, 18, 18)})
	if img := rec.Ops()[0].Image; img != ic.img {
		t.Error("image not cached")
	}
}

func TestIconInvalid(t *testing.T) {
	if _, err := NewIcon([]byte("not an icon")); err == nil {
		t.Error("no error for invalid data")
	}
}
