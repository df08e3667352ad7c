package allocator

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed returns a random seed from crypto/rand for runs where the caller
// did not pick one.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}
