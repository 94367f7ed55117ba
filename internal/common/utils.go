package common

import (
	"crypto/rand"
)

// GenerateRandByteArray returns size bytes read from crypto/rand.
// It panics if the system random source fails, which only happens on a
// broken platform.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites the contents of the provided byte slice with zeros.
// It is used to drop raw key material once a cipher has been built from it.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
