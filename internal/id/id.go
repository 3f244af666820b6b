package id

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/google/uuid"
)

// GenerateID creates a unique session identifier.
func GenerateID() string {
	return uuid.NewString()
}

// NewSeed returns a high-entropy seed for math/rand sources.
func NewSeed() int64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic("crypto/rand failed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}
