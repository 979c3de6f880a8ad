//go:build !gdidebug

package gdi

const debugChecks = false
