// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"tilekit.org/f32"
	"tilekit.org/layout"
	"tilekit.org/unit"
)

// Spacer is an invisible element that takes up whatever space it
// is given.
type Spacer struct {
	layout.Leaf
}

// Fixed overrides the size of its subject along one or both axes.
type Fixed struct {
	Proxy
	// width and height are negative for an axis left to the
	// subject.
	width, height unit.Dp
}

// HSize fixes the width of subject.
func HSize(width unit.Dp, subject layout.Element) *Fixed {
	if width < 0 {
		panic("widget: negative width")
	}
	return &Fixed{Proxy: Proxy{Subject: subject}, width: width, height: -1}
}

// VSize fixes the height of subject.
func VSize(height unit.Dp, subject layout.Element) *Fixed {
	if height < 0 {
		panic("widget: negative height")
	}
	return &Fixed{Proxy: Proxy{Subject: subject}, width: -1, height: height}
}

// FixedSize fixes both the width and the height of subject.
func FixedSize(width, height unit.Dp, subject layout.Element) *Fixed {
	if width < 0 || height < 0 {
		panic("widget: negative size")
	}
	return &Fixed{Proxy: Proxy{Subject: subject}, width: width, height: height}
}

// HSpace returns a spacer of the given width.
func HSpace(width unit.Dp) *Fixed {
	return HSize(width, new(Spacer))
}

// VSpace returns a spacer of the given height.
func VSpace(height unit.Dp) *Fixed {
	return VSize(height, new(Spacer))
}

func (f *Fixed) Limits(gtx layout.BasicContext) layout.Limits {
	l := f.Subject.Limits(gtx)
	if f.width >= 0 {
		w := gtx.Dp(f.width)
		l.Min.X, l.Max.X = w, layout.Px(w)
	}
	if f.height >= 0 {
		h := gtx.Dp(f.height)
		l.Min.Y, l.Max.Y = h, layout.Px(h)
	}
	return l
}

// Limit narrows the limits of its subject. The result is the
// intersection of both limits, widened where needed to keep the
// minimum below the maximum.
type Limit struct {
	Proxy
	lim layout.Limits
}

// NewLimit returns a Limit restricting subject to l. It returns an
// error if l is malformed.
func NewLimit(l layout.Limits, subject layout.Element) (*Limit, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &Limit{Proxy: Proxy{Subject: subject}, lim: l}, nil
}

func (l *Limit) Limits(gtx layout.BasicContext) layout.Limits {
	sl := l.Subject.Limits(gtx)
	r := layout.Limits{
		Min: f32.Point{
			X: max32(sl.Min.X, l.lim.Min.X),
			Y: max32(sl.Min.Y, l.lim.Min.Y),
		},
		Max: layout.Size{
			X: layout.MinLength(sl.Max.X, l.lim.Max.X),
			Y: layout.MinLength(sl.Max.Y, l.lim.Max.Y),
		},
	}
	return r.Clamp()
}

// Stretch overrides the stretch factors of its subject.
type Stretch struct {
	Proxy
	// x and y are negative for an axis left to the subject.
	x, y float32
}

// HStretch sets the horizontal stretch factor of subject.
func HStretch(x float32, subject layout.Element) *Stretch {
	if x < 0 {
		panic("widget: negative stretch")
	}
	return &Stretch{Proxy: Proxy{Subject: subject}, x: x, y: -1}
}

// VStretch sets the vertical stretch factor of subject.
func VStretch(y float32, subject layout.Element) *Stretch {
	if y < 0 {
		panic("widget: negative stretch")
	}
	return &Stretch{Proxy: Proxy{Subject: subject}, x: -1, y: y}
}

func (s *Stretch) Stretch() f32.Point {
	st := s.Subject.Stretch()
	if s.x >= 0 {
		st.X = s.x
	}
	if s.y >= 0 {
		st.Y = s.y
	}
	return st
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
