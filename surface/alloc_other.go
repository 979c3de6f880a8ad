// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package surface

func allocNative(size int) ([]byte, func() error, error) {
	return make([]byte, size), func() error { return nil }, nil
}
