// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements the negotiation protocol between the
elements of a user interface tree.

Elements form a tree rooted at a view. Every frame walks the tree
three times, always top-down:

	Limits  asks an element for its minimum and maximum size. It is
	        free of side effects and may be called any number of times.
	Layout  hands an element its final bounds. Composites distribute
	        their bounds among their children and recurse.
	Draw    paints an element inside the bounds it was last laid
	        out with.

A Context travels with Layout and Draw. Each step down the tree
builds a fresh Context from its parent's with Sub, narrowing the
bounds and pointing back at the parent. A Context is only valid for
the duration of the call it was passed to; never store one.

Tiles distribute one axis among their children. The share of each
child is computed by Allocate from the children's minimum and
maximum sizes and their stretch factors.

The tree is not safe for concurrent use. Do not add or remove
children from within Layout or Draw; defer such changes to the next
frame.
*/
package layout
