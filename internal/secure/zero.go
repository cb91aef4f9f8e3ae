// Package secure holds helpers for handling secret key material.
package secure

import "runtime"

// Zero securely zeroes the provided byte slice so that key material does not
// remain in memory after use. The KeepAlive call keeps the compiler from
// treating the stores as dead.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
