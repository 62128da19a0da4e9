//go:build linux

package fbdev

import (
	"encoding/binary"
	"path/filepath"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyEsc = 1
)

// eventLayout returns the input_event record size and the offset of its type
// field. input_event = timeval + u16 type + u16 code + s32 value.
func eventLayout() (size, tvSize int) {
	tvSize = binary.Size(unix.Timeval{})
	size = tvSize + 2 + 2 + 4
	if size <= 8 {
		return 24, 16
	}
	return size, tvSize
}

// escapePressed scans a buffer of input_event records for an escape key
// press. Trailing partial records are ignored.
func escapePressed(buf []byte, size, tvSize int) bool {
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if typ == evKey && code == keyEsc && value == 1 {
			return true
		}
	}
	return false
}

// Keyboard polls every evdev device without blocking.
type Keyboard struct {
	fds    []int
	buf    []byte
	size   int
	tvSize int
}

// OpenKeyboard opens /dev/input/event*. Devices that cannot be opened are
// skipped; with none open, Escape always reports false.
func OpenKeyboard() (*Keyboard, error) {
	size, tvSize := eventLayout()
	k := &Keyboard{buf: make([]byte, 64*size), size: size, tvSize: tvSize}
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return k, err
	}
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		k.fds = append(k.fds, fd)
	}
	return k, nil
}

// Devices reports how many input devices are being watched.
func (k *Keyboard) Devices() int { return len(k.fds) }

// Escape drains pending events and reports whether escape was pressed.
func (k *Keyboard) Escape() bool {
	if len(k.fds) == 0 {
		return false
	}
	pollFds := make([]unix.PollFd, len(k.fds))
	for i, fd := range k.fds {
		pollFds[i] = unix.PollFd{Fd: int32(fd), Events: unix.POLLIN}
	}
	if _, err := unix.Poll(pollFds, 0); err != nil {
		return false
	}
	hit := false
	for _, pfd := range pollFds {
		if pfd.Revents&unix.POLLIN == 0 {
			continue
		}
		for {
			n, err := unix.Read(int(pfd.Fd), k.buf)
			if err != nil || n <= 0 {
				break
			}
			if escapePressed(k.buf[:n], k.size, k.tvSize) {
				hit = true
			}
			if n < len(k.buf) {
				break
			}
		}
	}
	return hit
}

func (k *Keyboard) Close() error {
	var first error
	for _, fd := range k.fds {
		if err := unix.Close(fd); err != nil && first == nil {
			first = err
		}
	}
	k.fds = nil
	return first
}
