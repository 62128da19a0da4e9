// Package compositor drives the double-buffered render loop.
//
// Each [Compositor.Tick] draws a complete frame into the hidden page, paces
// the frame, swaps the page roles and presents the page just drawn. The
// visible page is therefore never a partially drawn frame.
//
// # Cancellation
//
// The escape key is polled once per tick, after the new frame has been
// presented. A frame in progress always completes before the loop exits.
//
// # Thread Safety
//
// A Compositor is driven from a single goroutine. Backends with their own
// event loop (Bubble Tea, Ebitengine) call Tick from that loop.
package compositor
