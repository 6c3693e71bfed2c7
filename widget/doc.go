// SPDX-License-Identifier: Unlicense OR MIT

/*
Package widget implements leaf elements and wrappers around other
elements.

Leaves such as Box, Label and Icon draw themselves and report their
size limits. Wrappers embed Proxy and change one aspect of their
subject: Margin adds space around it, Limit, HSize, VSize and
FixedSize override its limits, HStretch and VStretch override its
stretch factors and KeyIntercept filters its key events.

Format builds element trees from a compact description:

	widget.Format("vtile(margin(8dp, _), htile(_, hstretch(2, _)))", a, b, c)
*/
package widget
