// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint provides the drawing surface handed to elements
during the draw pass.

A Canvas fills and strokes rectangles, draws text and images, and
reports the clip rectangle so composites can skip children that
would not be visible. Three canvases are provided: Recorder keeps
the list of operations for later inspection or replay, Raster draws
into an *image.RGBA, and Cells approximates the drawing on a grid
of terminal characters.
*/
package paint
