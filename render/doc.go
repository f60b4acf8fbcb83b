// Package render rasterizes edge lists onto a fixed-size RGBA screen and
// writes the result as an image file.
//
// The screen origin is the bottom-left corner: point (0, 0) lands on the last
// image row. Segments are clipped to the screen before rasterization, so any
// coordinates are safe to draw, including ones far off screen.
//
// Only the x and y rows of an edge list are read; z and w are ignored.
package render
