//go:build gdidebug

package gdi

// debugChecks turns programmer errors into panics.
const debugChecks = true
