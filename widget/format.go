// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"fmt"
	"strconv"

	"tilekit.org/layout"
	"tilekit.org/unit"
)

type formatState struct {
	current int
	orig    string
	expr    string
}

type formatError string

// Format builds an element tree according to a format string, similar
// to how fmt.Sprintf interpolates a string.
//
// The format string is an expression where composites and wrappers
// are similar to function calls, and the underscore denotes an element
// from the arguments. The ith _ is replaced by the ith element.
//
// If the format is invalid, Format returns an error where a cross,
// ✗, marks the error position.
//
// For example,
//
//	widget.Format("margin(8dp, _)", e)
//
// is equivalent to
//
//	widget.UniformMargin(8, e)
//
// Available forms:
//
//	vtile(children...) and htile(children...) place children in a
//	vertical or horizontal layout.Tile.
//
//	layer(children...) stacks children in a layout.Layer, the first
//	child on top.
//
//	margin(insets, element) wraps element in a Margin. Insets are
//	either: one value for uniform insets; two values for top/bottom
//	and right/left insets; three values for top, bottom and
//	right/left insets; or four values for top, right, bottom, left
//	insets.
//
//	hsize(<size>, element) and vsize(<size>, element) fix the width or
//	height of element.
//
//	hstretch(<factor>, element) and vstretch(<factor>, element)
//	override the stretch factors of element.
//
//	hspace(<size>) and vspace(<size>) are spacers of a fixed width or
//	height.
//
// Sizes are in dp, for example 12dp.
func Format(format string, elems ...layout.Element) (e layout.Element, err error) {
	state := formatState{
		orig: format,
		expr: format,
	}
	defer func() {
		if r := recover(); r != nil {
			ferr, ok := r.(formatError)
			if !ok {
				panic(r)
			}
			pos := len(state.orig) - len(state.expr)
			msg := state.orig[:pos] + "✗" + state.orig[pos:]
			e, err = nil, fmt.Errorf("widget: Format: %s:%d: %w", msg, pos, ferr)
		}
	}()
	e = formatExpr(&state, elems)
	skipWhitespace(&state)
	if state.expr != "" {
		errorf("unexpected %q", state.expr)
	}
	return e, nil
}

// MustFormat is like Format but panics if the format is invalid.
func MustFormat(format string, elems ...layout.Element) layout.Element {
	e, err := Format(format, elems...)
	if err != nil {
		panic(err)
	}
	return e
}

func formatExpr(state *formatState, elems []layout.Element) layout.Element {
	switch peek(state) {
	case '_':
		return formatElement(state, elems)
	default:
		return formatLayout(state, elems)
	}
}

func formatLayout(state *formatState, elems []layout.Element) layout.Element {
	name := parseName(state)
	if name == "" {
		errorf("missing layout name")
	}
	expect(state, "(")
	var e layout.Element
	switch name {
	case "vtile":
		e = layout.VTile(formatChildren(state, elems)...)
	case "htile":
		e = layout.HTile(formatChildren(state, elems)...)
	case "layer":
		e = layout.NewLayer(formatChildren(state, elems)...)
	case "margin":
		t, r, b, l := parseInsets(state)
		e = NewMargin(t, r, b, l, formatExpr(state, elems))
	case "hsize":
		w := parseValue(state)
		expect(state, ",")
		e = HSize(w, formatExpr(state, elems))
	case "vsize":
		h := parseValue(state)
		expect(state, ",")
		e = VSize(h, formatExpr(state, elems))
	case "hstretch":
		x := parseFloat(state)
		expect(state, ",")
		e = HStretch(x, formatExpr(state, elems))
	case "vstretch":
		y := parseFloat(state)
		expect(state, ",")
		e = VStretch(y, formatExpr(state, elems))
	case "hspace":
		e = HSpace(parseValue(state))
	case "vspace":
		e = VSpace(parseValue(state))
	default:
		errorf("invalid layout %q", name)
	}
	expect(state, ")")
	return e
}

// formatChildren parses a comma separated list of expressions up to,
// but not including, the closing parenthesis.
func formatChildren(state *formatState, elems []layout.Element) []layout.Element {
	var children []layout.Element
	for {
		switch peek(state) {
		case ')':
			return children
		case ',':
			if len(children) == 0 {
				errorf("missing child")
			}
			expect(state, ",")
			if c := peek(state); c == ')' || c == ',' {
				errorf("missing child")
			}
		default:
			children = append(children, formatExpr(state, elems))
			if c := peek(state); c != ',' && c != ')' {
				errorf("expected \",\" or \")\"")
			}
		}
	}
}

func formatElement(state *formatState, elems []layout.Element) layout.Element {
	expect(state, "_")
	if i, max := state.current, len(elems)-1; i > max {
		errorf("element index %d out of bounds [0;%d]", i, max)
	}
	e := elems[state.current]
	state.current++
	return e
}

func parseInsets(state *formatState) (top, right, bottom, left unit.Dp) {
	v1 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return v1, v1, v1, v1
	}
	v2 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return v1, v2, v1, v2
	}
	v3 := parseValue(state)
	if peek(state) == ',' {
		expect(state, ",")
		return v1, v2, v3, v2
	}
	v4 := parseValue(state)
	expect(state, ",")
	return v1, v2, v3, v4
}

func parseValue(state *formatState) unit.Dp {
	skipWhitespace(state)
	v := parseFloat(state)
	if len(state.expr) < 2 {
		errorf("missing unit")
	}
	if u := state.expr[:2]; u != "dp" {
		errorf("unknown unit %q", u)
	}
	state.expr = state.expr[2:]
	skipWhitespace(state)
	return unit.Dp(v)
}

func parseName(state *formatState) string {
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')':
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in layout name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("missing ( after layout function")
	return ""
}

func parseFloat(state *formatState) float32 {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 {
		switch state.expr[0] {
		case '\t', '\n', '\v', '\f', '\r', ' ':
			state.expr = state.expr[1:]
		default:
			return
		}
	}
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
