// SPDX-License-Identifier: Unlicense OR MIT

// Package theme holds the default colors, font and sizes used by
// widgets when they draw and measure themselves. Layout arithmetic
// never consults the theme directly.
package theme

import (
	"image/color"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"tilekit.org/unit"
)

// Theme is a set of drawing defaults.
//
// The faces returned by a theme reuse their rasterization buffers and
// must not be used from more than one goroutine. Give every goroutine
// its own theme with Clone.
type Theme struct {
	Background color.NRGBA
	Panel      color.NRGBA
	Frame      color.NRGBA
	Text       color.NRGBA
	Indicator  color.NRGBA
	Button     color.NRGBA

	// FrameWidth is the stroke width of frames and outlines.
	FrameWidth unit.Dp
	// TextSize is the default label size.
	TextSize unit.Sp
	// IconSize is the default icon edge length.
	IconSize unit.Dp
	// Padding is the default space around button content.
	Padding unit.Dp

	font  *opentype.Font
	faces map[float32]font.Face
}

// New returns a theme with the default dark palette and the Go
// regular font.
func New() *Theme {
	th := &Theme{
		Background: nrgba(colornames.Black),
		Panel:      color.NRGBA{R: 0x28, G: 0x28, B: 0x2a, A: 0xff},
		Frame:      nrgba(colornames.Dimgray),
		Text:       nrgba(colornames.Whitesmoke),
		Indicator:  nrgba(colornames.Dodgerblue),
		Button:     nrgba(colornames.Darkslategray),
		FrameWidth: 1,
		TextSize:   14,
		IconSize:   18,
		Padding:    4,
	}
	if f, err := opentype.Parse(goregular.TTF); err == nil {
		th.font = f
	}
	return th
}

// Face returns a font face for text of size px pixels. Faces are
// cached per size. When no scalable font is available the fixed
// 7x13 face is returned.
func (th *Theme) Face(px float32) font.Face {
	if th.font == nil || px <= 0 {
		return basicfont.Face7x13
	}
	if f, ok := th.faces[px]; ok {
		return f
	}
	f, err := opentype.NewFace(th.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	if th.faces == nil {
		th.faces = make(map[float32]font.Face)
	}
	th.faces[px] = f
	return f
}

// Clone returns a copy of th with its own face cache. The parsed
// font is shared; only faces hold per-use state.
func (th *Theme) Clone() *Theme {
	c := *th
	c.faces = nil
	return &c
}

// TextFace returns the face for the default text size under m.
func (th *Theme) TextFace(m unit.Metric) font.Face {
	return th.Face(m.Sp(th.TextSize))
}

func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
