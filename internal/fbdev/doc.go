// Package fbdev presents the page canvas on the Linux framebuffer and reads
// the escape key straight from evdev, so it runs on a bare console without a
// window system.
package fbdev
