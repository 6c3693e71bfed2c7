// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"tilekit.org/f32"
)

// Raster is a Canvas drawing into an RGBA image.
type Raster struct {
	dst  *image.RGBA
	clip f32.Rectangle
}

var _ Canvas = (*Raster)(nil)

// NewRaster returns a Raster drawing into dst, clipped to
// dst's bounds.
func NewRaster(dst *image.RGBA) *Raster {
	return &Raster{dst: dst, clip: fRect(dst.Bounds())}
}

// SetClip narrows the visible area to r intersected with the
// image bounds.
func (r *Raster) SetClip(rect f32.Rectangle) {
	r.clip = rect.Intersect(fRect(r.dst.Bounds()))
}

// Target returns the image drawn into.
func (r *Raster) Target() *image.RGBA {
	return r.dst
}

func (r *Raster) Clip() f32.Rectangle {
	return r.clip
}

func (r *Raster) Fill(rect f32.Rectangle, c color.NRGBA) {
	ir := iRect(rect.Intersect(r.clip))
	if ir.Empty() {
		return
	}
	draw.Draw(r.dst, ir, image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) Stroke(rect f32.Rectangle, width float32, c color.NRGBA) {
	if width <= 0 || rect.Empty() {
		return
	}
	w := f32.Clamp(width, 0, rect.Dx()/2)
	h := f32.Clamp(width, 0, rect.Dy()/2)
	r.Fill(f32.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+h), c)
	r.Fill(f32.Rect(rect.Min.X, rect.Max.Y-h, rect.Max.X, rect.Max.Y), c)
	r.Fill(f32.Rect(rect.Min.X, rect.Min.Y+h, rect.Min.X+w, rect.Max.Y-h), c)
	r.Fill(f32.Rect(rect.Max.X-w, rect.Min.Y+h, rect.Max.X, rect.Max.Y-h), c)
}

func (r *Raster) Text(dot f32.Point, face font.Face, s string, c color.NRGBA) {
	if face == nil || s == "" {
		return
	}
	d := font.Drawer{
		Dst:  r.clipped(),
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(float64(dot.X) * 64)),
			Y: fixed.Int26_6(math.Round(float64(dot.Y) * 64)),
		},
	}
	d.DrawString(s)
}

func (r *Raster) Image(rect f32.Rectangle, img image.Image) {
	ir := iRect(rect)
	if img == nil || ir.Empty() {
		return
	}
	draw.ApproxBiLinear.Scale(r.clipped(), ir, img, img.Bounds(), draw.Over, nil)
}

// clipped returns the sub-image of dst covered by the clip.
func (r *Raster) clipped() *image.RGBA {
	return r.dst.SubImage(iRect(r.clip)).(*image.RGBA)
}

func iRect(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(math.Floor(float64(r.Min.X)+.5)),
		int(math.Floor(float64(r.Min.Y)+.5)),
		int(math.Floor(float64(r.Max.X)+.5)),
		int(math.Floor(float64(r.Max.Y)+.5)),
	)
}

func fRect(r image.Rectangle) f32.Rectangle {
	return f32.Rect(float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y))
}
