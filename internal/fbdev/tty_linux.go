//go:build linux

package fbdev

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

var ttyPaths = []string{"/dev/tty", "/dev/tty0"}

// setConsoleMode switches the active virtual terminal between text and
// graphics mode. Graphics mode hides the console cursor.
func setConsoleMode(mode int) error {
	var lastErr error
	for _, p := range ttyPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("KDSETMODE %d on %s: %w", mode, p, err)
			continue
		}
		return nil
	}
	return lastErr
}
