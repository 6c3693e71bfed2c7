// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
)

// children is the ordered child list shared by composites, together
// with the index of the child holding the focus.
type children struct {
	elems []Element
	// focus is the index of the focused child plus one; zero
	// means no child is focused.
	focus int
}

// Len returns the number of children.
func (c *children) Len() int {
	return len(c.elems)
}

// At returns the ith child.
func (c *children) At(i int) Element {
	return c.elems[i]
}

// Add appends elements to the end of the children.
func (c *children) Add(elems ...Element) {
	c.elems = append(c.elems, elems...)
}

// Insert inserts e before the ith child.
func (c *children) Insert(i int, e Element) {
	c.elems = append(c.elems, nil)
	copy(c.elems[i+1:], c.elems[i:])
	c.elems[i] = e
	if c.focus > i {
		c.focus++
	}
}

// Remove removes and returns the ith child.
func (c *children) Remove(i int) Element {
	e := c.elems[i]
	copy(c.elems[i:], c.elems[i+1:])
	c.elems[len(c.elems)-1] = nil
	c.elems = c.elems[:len(c.elems)-1]
	switch {
	case c.focus == i+1:
		c.focus = 0
	case c.focus > i+1:
		c.focus--
	}
	return e
}

// Focused returns the index of the focused child, or -1.
func (c *children) Focused() int {
	return c.focus - 1
}

// WantsFocus reports whether any child can take the focus.
func (c *children) WantsFocus() bool {
	for _, e := range c.elems {
		if f, ok := e.(Focusable); ok && f.WantsFocus() {
			return true
		}
	}
	return false
}

// Focus forwards focus changes to the focused child, picking the
// first child that wants the focus if none is focused yet.
func (c *children) Focus(focused bool) {
	if focused && c.focus == 0 {
		for i, e := range c.elems {
			if f, ok := e.(Focusable); ok && f.WantsFocus() {
				c.focus = i + 1
				break
			}
		}
	}
	if c.focus == 0 {
		return
	}
	if f, ok := c.elems[c.focus-1].(Focusable); ok {
		f.Focus(focused)
	}
}

// setFocus moves the focus to the ith child.
func (c *children) setFocus(i int) {
	if c.focus == i+1 {
		return
	}
	if c.focus != 0 {
		if f, ok := c.elems[c.focus-1].(Focusable); ok {
			f.Focus(false)
		}
	}
	c.focus = i + 1
	if f, ok := c.elems[i].(Focusable); ok {
		f.Focus(true)
	}
}

// DrawChildren draws the children of comp whose bounds overlap the
// clip of gtx. Children are drawn in index order, or in reverse
// index order if reverse is set.
func DrawChildren(gtx Context, comp Composite, reverse bool) {
	clip := gtx.Clip()
	n := comp.Len()
	for k := 0; k < n; k++ {
		i := k
		if reverse {
			i = n - 1 - k
		}
		b := comp.BoundsOf(gtx, i)
		if !b.Overlaps(clip) {
			continue
		}
		e := comp.At(i)
		e.Draw(gtx.Sub(e, b))
	}
}

// click routes e to the children of comp under the pointer, in index
// order, until one consumes it. A press moves the focus to the child
// under the pointer if it wants the focus.
func (c *children) click(gtx Context, comp Composite, e pointer.Event) bool {
	for i := 0; i < comp.Len(); i++ {
		b := comp.BoundsOf(gtx, i)
		if !e.Position.In(b) {
			continue
		}
		el := comp.At(i)
		if f, ok := el.(Focusable); ok && e.Kind == pointer.Press && f.WantsFocus() {
			c.setFocus(i)
		}
		if h, ok := el.(Clicker); ok && h.Click(gtx.Sub(el, b), e) {
			return true
		}
	}
	return false
}

// key routes e to the focused child of comp.
func (c *children) key(gtx Context, comp Composite, e key.Event) bool {
	i := c.Focused()
	if i < 0 || i >= comp.Len() {
		return false
	}
	el := comp.At(i)
	h, ok := el.(KeyHandler)
	if !ok {
		return false
	}
	return h.Key(gtx.Sub(el, comp.BoundsOf(gtx, i)), e)
}
