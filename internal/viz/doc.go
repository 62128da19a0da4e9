// Package viz renders the solar system in a terminal.
//
// Pixels are mapped onto Unicode braille cells, two dots wide and four dots
// tall, so a W x H cell terminal exposes a 2W x 4H pixel canvas:
//
//   - [Canvas]: two braille pages implementing compositor.Canvas
//   - [Model]: Bubble Tea program that ticks the compositor
//
// # Key Bindings
//
//	Esc, Q, Ctrl+C - stop after the current frame
//
// Each cell takes the color of the last pixel written into it. Pixels written
// in the background color clear their dot instead of setting it, which is how
// planet outlines and erased frames show up.
package viz
