// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"tilekit.org/f32"
	"tilekit.org/layout"
	"tilekit.org/unit"
)

// Icon is a square IconVG image.
type Icon struct {
	layout.Leaf
	// Size is the edge length. Zero means the theme's icon size.
	Size unit.Dp
	// Color replaces the first palette entry. The zero value means
	// the theme's text color.
	Color color.NRGBA

	src []byte
	// Cached values.
	img      *image.RGBA
	imgSize  int
	imgColor color.NRGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	if _, err := iconvg.DecodeMetadata(data); err != nil {
		return nil, fmt.Errorf("widget: icon: %w", err)
	}
	return &Icon{src: data}, nil
}

func (ic *Icon) Limits(gtx layout.BasicContext) layout.Limits {
	sz := float32(ic.px(gtx))
	return layout.FixedLimits(f32.Pt(sz, sz))
}

func (ic *Icon) Draw(gtx layout.Context) {
	c := ic.Color
	if c == (color.NRGBA{}) {
		c = color.NRGBA{A: 0xff}
		if gtx.Theme != nil {
			c = gtx.Theme.Text
		}
	}
	px := ic.px(gtx.BasicContext)
	if px <= 0 {
		return
	}
	img := ic.image(px, c)
	sz := f32.Pt(float32(img.Bounds().Dx()), float32(img.Bounds().Dy()))
	off := gtx.Bounds.Center().Sub(sz.Mul(.5))
	gtx.Canvas.Image(f32.Rectangle{Min: off, Max: off.Add(sz)}, img)
}

func (ic *Icon) px(gtx layout.BasicContext) int {
	size := ic.Size
	if size == 0 && gtx.Theme != nil {
		size = gtx.Theme.IconSize
	}
	return int(gtx.Dp(size) + .5)
}

func (ic *Icon) image(sz int, c color.NRGBA) *image.RGBA {
	if ic.img != nil && sz == ic.imgSize && c == ic.imgColor {
		return ic.img
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	r, g, b, a := c.RGBA()
	m.Palette[0] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.img = img
	ic.imgSize = sz
	ic.imgColor = c
	return img
}
