// Package raster implements the scan-conversion primitives the renderer is
// built from.
//
// Every routine writes single pixels through a [Plotter] and keeps no state:
//
//   - [Line]: digital differential line with rounded float steps
//   - [Circle]: midpoint circle outline using octant symmetry
//   - [Disk]: scanline filled disk
//
// Degenerate input never fails. A zero-length line plots one pixel, a zero
// radius plots the center and a negative radius plots nothing.
package raster
