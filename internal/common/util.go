package common

// WipeByteArray overwrites the buffer with zeros. Use it to scrub
// passwords from memory once they are no longer needed. Nil-safe.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
