// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"

	"tilekit.org/f32"
)

// Canvas is the drawing surface used by elements in their draw pass.
// Coordinates are in view pixels.
type Canvas interface {
	// Fill paints r with a solid color.
	Fill(r f32.Rectangle, c color.NRGBA)
	// Stroke outlines r with a line of the given width,
	// drawn inside r.
	Stroke(r f32.Rectangle, width float32, c color.NRGBA)
	// Text draws s with its baseline origin at dot.
	Text(dot f32.Point, face font.Face, s string, c color.NRGBA)
	// Image draws img scaled into r.
	Image(r f32.Rectangle, img image.Image)
	// Clip returns the area that will be visible. Drawing
	// outside of it may be discarded.
	Clip() f32.Rectangle
}

// Infinite is the clip of a canvas that discards nothing.
var Infinite = f32.Rectangle{
	Min: f32.Point{X: -math.MaxFloat32, Y: -math.MaxFloat32},
	Max: f32.Point{X: math.MaxFloat32, Y: math.MaxFloat32},
}

// OpKind identifies a recorded operation.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpText
	OpImage
)

// Op is a single recorded drawing operation. Fields not used by
// the operation's kind are zero.
type Op struct {
	Kind  OpKind
	Rect  f32.Rectangle
	Color color.NRGBA
	Width float32
	Dot   f32.Point
	Face  font.Face
	Text  string
	Image image.Image
}

// Recorder is a Canvas that records operations. The zero value
// is ready to use and has no clip.
type Recorder struct {
	// ClipRect limits the visible area. The zero rectangle
	// means no limit.
	ClipRect f32.Rectangle

	ops []Op
}

var _ Canvas = (*Recorder)(nil)

func (r *Recorder) Fill(rect f32.Rectangle, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpFill, Rect: rect, Color: c})
}

func (r *Recorder) Stroke(rect f32.Rectangle, width float32, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Rect: rect, Width: width, Color: c})
}

func (r *Recorder) Text(dot f32.Point, face font.Face, s string, c color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, Dot: dot, Face: face, Text: s, Color: c})
}

func (r *Recorder) Image(rect f32.Rectangle, img image.Image) {
	r.ops = append(r.ops, Op{Kind: OpImage, Rect: rect, Image: img})
}

func (r *Recorder) Clip() f32.Rectangle {
	if r.ClipRect == (f32.Rectangle{}) {
		return Infinite
	}
	return r.ClipRect
}

// Ops returns the operations recorded since the last Reset.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Reset the Recorder, preparing it for re-use.
func (r *Recorder) Reset() {
	for i := range r.ops {
		r.ops[i] = Op{}
	}
	r.ops = r.ops[:0]
}

// Replay draws the recorded operations onto c in order.
func (r *Recorder) Replay(c Canvas) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpFill:
			c.Fill(op.Rect, op.Color)
		case OpStroke:
			c.Stroke(op.Rect, op.Width, op.Color)
		case OpText:
			c.Text(op.Dot, op.Face, op.Text, op.Color)
		case OpImage:
			c.Image(op.Rect, op.Image)
		}
	}
}

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "Fill"
	case OpStroke:
		return "Stroke"
	case OpText:
		return "Text"
	case OpImage:
		return "Image"
	default:
		panic("unknown OpKind")
	}
}

func (o Op) String() string {
	switch o.Kind {
	case OpText:
		return fmt.Sprintf("Text(%v, %q)", o.Dot, o.Text)
	default:
		return fmt.Sprintf("%v(%v)", o.Kind, o.Rect)
	}
}
