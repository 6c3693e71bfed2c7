// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"tilekit.org/f32"
	"tilekit.org/io/key"
	"tilekit.org/io/pointer"
	"tilekit.org/layout"
)

// Proxy forwards the element protocol to Subject. Wrappers embed
// it and override the methods they change.
type Proxy struct {
	Subject layout.Element
}

var (
	_ layout.Element    = (*Proxy)(nil)
	_ layout.Wrapper    = (*Proxy)(nil)
	_ layout.Clicker    = (*Proxy)(nil)
	_ layout.KeyHandler = (*Proxy)(nil)
	_ layout.Focusable  = (*Proxy)(nil)
)

func (p *Proxy) Unwrap() layout.Element {
	return p.Subject
}

func (p *Proxy) Limits(gtx layout.BasicContext) layout.Limits {
	return p.Subject.Limits(gtx)
}

func (p *Proxy) Stretch() f32.Point {
	return p.Subject.Stretch()
}

func (p *Proxy) Layout(gtx layout.Context) {
	p.Subject.Layout(gtx.Sub(p.Subject, gtx.Bounds))
}

func (p *Proxy) Draw(gtx layout.Context) {
	p.Subject.Draw(gtx.Sub(p.Subject, gtx.Bounds))
}

func (p *Proxy) Click(gtx layout.Context, e pointer.Event) bool {
	return click(gtx, p.Subject, gtx.Bounds, e)
}

func (p *Proxy) Key(gtx layout.Context, e key.Event) bool {
	return keyPress(gtx, p.Subject, gtx.Bounds, e)
}

func (p *Proxy) WantsFocus() bool {
	f, ok := p.Subject.(layout.Focusable)
	return ok && f.WantsFocus()
}

func (p *Proxy) Focus(focused bool) {
	if f, ok := p.Subject.(layout.Focusable); ok {
		f.Focus(focused)
	}
}

// click forwards e to subject laid out in bounds, if the subject
// handles pointer events and e falls inside bounds.
func click(gtx layout.Context, subject layout.Element, bounds f32.Rectangle, e pointer.Event) bool {
	c, ok := subject.(layout.Clicker)
	if !ok || !e.Position.In(bounds) {
		return false
	}
	return c.Click(gtx.Sub(subject, bounds), e)
}

// keyPress forwards e to subject laid out in bounds.
func keyPress(gtx layout.Context, subject layout.Element, bounds f32.Rectangle, e key.Event) bool {
	k, ok := subject.(layout.KeyHandler)
	if !ok {
		return false
	}
	return k.Key(gtx.Sub(subject, bounds), e)
}

// KeyIntercept offers key events to OnKey before its subject.
type KeyIntercept struct {
	Proxy
	// OnKey reports whether it consumed the event.
	OnKey func(e key.Event) bool
}

// NewKeyIntercept returns a KeyIntercept wrapping subject.
func NewKeyIntercept(subject layout.Element, onKey func(key.Event) bool) *KeyIntercept {
	return &KeyIntercept{Proxy: Proxy{Subject: subject}, OnKey: onKey}
}

func (k *KeyIntercept) Key(gtx layout.Context, e key.Event) bool {
	if k.OnKey != nil && k.OnKey(e) {
		return true
	}
	return k.Proxy.Key(gtx, e)
}

// WantsFocus reports true: a key intercept is a control even when
// its subject is not.
func (k *KeyIntercept) WantsFocus() bool {
	return true
}

// shortcut reports whether e is a shortcut: a key combined with a
// modifier other than shift. Controls leave shortcuts to their
// ancestors.
func shortcut(e key.Event) bool {
	for _, m := range []key.Modifiers{key.ModCtrl, key.ModCommand, key.ModAlt, key.ModSuper} {
		if e.Modifiers.Contain(m) {
			return true
		}
	}
	return false
}

// Find returns the first element in the wrapper chain starting at e
// for which match reports true, or nil.
func Find(e layout.Element, match func(layout.Element) bool) layout.Element {
	for e != nil {
		if match(e) {
			return e
		}
		w, ok := e.(layout.Wrapper)
		if !ok {
			return nil
		}
		e = w.Unwrap()
	}
	return nil
}
