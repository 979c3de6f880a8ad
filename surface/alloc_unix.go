// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd || netbsd || openbsd

package surface

import "golang.org/x/sys/unix"

// allocNative maps anonymous memory for a device-independent buffer so
// large buffers stay outside the Go heap.
func allocNative(size int) ([]byte, func() error, error) {
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return b, func() error { return unix.Munmap(b) }, nil
}
