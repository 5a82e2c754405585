package crypto

import "runtime"

// Wipe zeroes b in place. Raw session keys are wiped once the envelope that
// used them is sealed.
//
//go:noinline
func Wipe(b []byte) {
	clear(b)
	// Keep b live until the clear has happened.
	runtime.KeepAlive(b)
}
