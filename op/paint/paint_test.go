// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font/basicfont"

	"tilekit.org/f32"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func TestRecorderReplay(t *testing.T) {
	var src Recorder
	src.Fill(f32.Rect(0, 0, 4, 4), red)
	src.Stroke(f32.Rect(1, 1, 3, 3), 1, red)
	src.Text(f32.Pt(0, 10), basicfont.Face7x13, "hi", red)

	var dst Recorder
	src.Replay(&dst)
	got, want := dst.Ops(), src.Ops()
	if len(got) != len(want) {
		t.Fatalf("replayed %d ops, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i].String() != want[i].String() {
			t.Errorf("op %d = %v, want %v", i, got[i], want[i])
		}
	}
	src.Reset()
	if n := len(src.Ops()); n != 0 {
		t.Errorf("after Reset: %d ops", n)
	}
}

func TestRecorderClip(t *testing.T) {
	var r Recorder
	if got := r.Clip(); got != Infinite {
		t.Errorf("zero Recorder clip = %v, want Infinite", got)
	}
	r.ClipRect = f32.Rect(0, 0, 10, 10)
	if got := r.Clip(); got != r.ClipRect {
		t.Errorf("clip = %v, want %v", got, r.ClipRect)
	}
}

func TestRasterFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r := NewRaster(img)
	r.Fill(f32.Rect(2, 2, 4, 4), red)
	if got := img.RGBAAt(3, 3); got != (color.RGBA{R: 0xff, A: 0xff}) {
		t.Errorf("inside pixel = %v, want red", got)
	}
	if got := img.RGBAAt(5, 5); got != (color.RGBA{}) {
		t.Errorf("outside pixel = %v, want transparent", got)
	}
}

func TestRasterClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	r := NewRaster(img)
	r.SetClip(f32.Rect(0, 0, 4, 8))
	r.Fill(f32.Rect(0, 0, 8, 8), red)
	if got := img.RGBAAt(6, 1); got != (color.RGBA{}) {
		t.Errorf("clipped pixel = %v, want transparent", got)
	}
	if got := img.RGBAAt(1, 1); got.R != 0xff {
		t.Errorf("visible pixel = %v, want red", got)
	}
}

func TestCellsStroke(t *testing.T) {
	c := NewCells(4, 3, f32.Pt(1, 1))
	c.Stroke(f32.Rect(0, 0, 4, 3), 1, red)
	want := "┌──┐\n│  │\n└──┘"
	if got := c.String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestCellsText(t *testing.T) {
	c := NewCells(6, 1, f32.Pt(1, 1))
	c.Text(f32.Pt(0, 1), nil, "a世b", red)
	if got, want := c.String(), "a世b"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := Width("a世b"); got != 4 {
		t.Errorf("Width = %d, want 4", got)
	}
}

func TestCellsFillShade(t *testing.T) {
	c := NewCells(2, 1, f32.Pt(1, 1))
	c.Fill(f32.Rect(0, 0, 1, 1), color.NRGBA{A: 0xff})
	c.Fill(f32.Rect(1, 0, 2, 1), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	if got, want := c.String(), "█"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCellsOverwriteWide(t *testing.T) {
	tests := []struct {
		at   float32
		text string
		want string
	}{
		// Over the leading half.
		{0, "a", "a 界b"},
		// Over the trailing half.
		{1, "a", " a界b"},
		// A wide rune straddling two wide runes.
		{1, "中", " 中 b"},
	}
	for _, tc := range tests {
		c := NewCells(6, 1, f32.Pt(1, 1))
		c.Text(f32.Pt(0, 1), nil, "世界b", red)
		c.Text(f32.Pt(tc.at, 1), nil, tc.text, red)
		if got := c.String(); got != tc.want {
			t.Errorf("%q at %v: got %q, want %q", tc.text, tc.at, got, tc.want)
		}
	}
	c := NewCells(4, 1, f32.Pt(1, 1))
	c.Text(f32.Pt(0, 1), nil, "世b", red)
	c.Fill(f32.Rect(1, 0, 2, 1), color.NRGBA{A: 0xff})
	if got, want := c.String(), " █b"; got != want {
		t.Errorf("fill over wide rune: got %q, want %q", got, want)
	}
}
