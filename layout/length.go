// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"math"

	"tilekit.org/f32"
)

// Length is a size along a single axis that is either a number of
// pixels or unbounded. The zero value is a bounded zero length.
type Length struct {
	px        float32
	unbounded bool
}

// Unbounded is the length larger than every bounded length. It is
// the maximum size of elements that grow without limit.
var Unbounded = Length{unbounded: true}

// Px returns the bounded length v. Positive infinity maps to
// Unbounded.
func Px(v float32) Length {
	if math.IsInf(float64(v), 1) {
		return Unbounded
	}
	return Length{px: v}
}

// IsUnbounded reports whether l is Unbounded.
func (l Length) IsUnbounded() bool {
	return l.unbounded
}

// Px returns l in pixels, or positive infinity for Unbounded.
func (l Length) Px() float32 {
	if l.unbounded {
		return float32(math.Inf(1))
	}
	return l.px
}

// Add returns l+m. The sum saturates at Unbounded when either
// operand is unbounded or the sum overflows.
func (l Length) Add(m Length) Length {
	if l.unbounded || m.unbounded {
		return Unbounded
	}
	return Px(l.px + m.px)
}

// Less reports whether l < m.
func (l Length) Less(m Length) bool {
	switch {
	case l.unbounded:
		return false
	case m.unbounded:
		return true
	}
	return l.px < m.px
}

// MinLength returns the smaller of a and b.
func MinLength(a, b Length) Length {
	if b.Less(a) {
		return b
	}
	return a
}

// MaxLength returns the larger of a and b.
func MaxLength(a, b Length) Length {
	if a.Less(b) {
		return b
	}
	return a
}

func (l Length) String() string {
	if l.unbounded {
		return "∞"
	}
	return fmt.Sprintf("%g", l.px)
}

// Size is a pair of lengths, one per axis.
type Size struct {
	X, Y Length
}

// Unbounded size in both directions.
var fullSize = Size{X: Unbounded, Y: Unbounded}

// SizePt returns the bounded size of p.
func SizePt(p f32.Point) Size {
	return Size{X: Px(p.X), Y: Px(p.Y)}
}

func (s Size) String() string {
	return "(" + s.X.String() + "," + s.Y.String() + ")"
}

// convert swaps the axes of s for Vertical, the same way
// Axis.Convert does for points.
func (s Size) convert(a Axis) Size {
	if a == Vertical {
		return Size{X: s.Y, Y: s.X}
	}
	return s
}
