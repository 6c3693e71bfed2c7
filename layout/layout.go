// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"

	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
)

// Element is a node of the user interface tree.
type Element interface {
	// Limits returns the minimum and maximum size of the element.
	// It must not have side effects.
	Limits(gtx BasicContext) Limits
	// Stretch returns the relative share of extra space the
	// element accepts along each axis. Zero means the element
	// never grows beyond its minimum.
	Stretch() f32.Point
	// Layout assigns the element its bounds, gtx.Bounds.
	Layout(gtx Context)
	// Draw paints the element inside gtx.Bounds.
	Draw(gtx Context)
}

// Composite is an element containing an ordered list of child
// elements.
type Composite interface {
	Element
	// Len returns the number of children.
	Len() int
	// At returns the ith child.
	At(i int) Element
	// BoundsOf returns the bounds given to the ith child by the
	// most recent Layout, or the empty rectangle if i is out of
	// range.
	BoundsOf(gtx Context, i int) f32.Rectangle
}

// Clicker is implemented by elements that handle pointer events.
type Clicker interface {
	// Click handles e and reports whether it was consumed.
	Click(gtx Context, e pointer.Event) bool
}

// KeyHandler is implemented by elements that handle key events.
type KeyHandler interface {
	// Key handles e and reports whether it was consumed.
	Key(gtx Context, e key.Event) bool
}

// Focusable is implemented by elements that can hold the
// keyboard focus.
type Focusable interface {
	WantsFocus() bool
	Focus(focused bool)
}

// Wrapper is implemented by elements decorating a single subject,
// such as margins and stretch overrides.
type Wrapper interface {
	Unwrap() Element
}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt f32.Point) f32.Point {
	if a == Horizontal {
		return pt
	}
	return f32.Point{X: pt.Y, Y: pt.X}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

var (
	// ErrNegativeMin is returned for limits with a negative minimum.
	ErrNegativeMin = errors.New("layout: negative minimum")
	// ErrInvertedLimits is returned for limits whose minimum exceeds
	// their maximum.
	ErrInvertedLimits = errors.New("layout: minimum exceeds maximum")
)

// Limits are the minimum and maximum sizes of an element.
// The minimum is always bounded.
type Limits struct {
	Min f32.Point
	Max Size
}

// FullLimits returns limits that accept any size.
func FullLimits() Limits {
	return Limits{Max: fullSize}
}

// FixedLimits returns limits that accept only sz.
func FixedLimits(sz f32.Point) Limits {
	return Limits{Min: sz, Max: SizePt(sz)}
}

// Validate reports whether l is well formed: non-negative minimums
// no larger than the maximums.
func (l Limits) Validate() error {
	check := func(axis string, min float32, max Length) error {
		if min < 0 || min != min {
			return fmt.Errorf("%w: %s %g", ErrNegativeMin, axis, min)
		}
		if max.Less(Px(min)) {
			return fmt.Errorf("%w: %s %g > %v", ErrInvertedLimits, axis, min, max)
		}
		return nil
	}
	if err := check("x", l.Min.X, l.Max.X); err != nil {
		return err
	}
	return check("y", l.Min.Y, l.Max.Y)
}

// Clamp raises maximums that are smaller than the corresponding
// minimums.
func (l Limits) Clamp() Limits {
	l.Max.X = MaxLength(l.Max.X, Px(l.Min.X))
	l.Max.Y = MaxLength(l.Max.Y, Px(l.Min.Y))
	return l
}

// Constrain a size to the limits.
func (l Limits) Constrain(sz f32.Point) f32.Point {
	return f32.Point{
		X: f32.Clamp(sz.X, l.Min.X, l.Max.X.Px()),
		Y: f32.Clamp(sz.Y, l.Min.Y, l.Max.Y.Px()),
	}
}

func (l Limits) String() string {
	return fmt.Sprintf("{%v %v}", l.Min, l.Max)
}

// Leaf provides the default element behavior: unconstrained
// limits, unit stretch, and nothing to lay out or draw. Embed it in
// elements that only override some of the methods.
type Leaf struct{}

func (Leaf) Limits(BasicContext) Limits { return FullLimits() }

func (Leaf) Stretch() f32.Point { return f32.Point{X: 1, Y: 1} }

func (Leaf) Layout(Context) {}

func (Leaf) Draw(Context) {}
