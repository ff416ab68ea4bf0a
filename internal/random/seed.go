// Package random provides seed generation and derivation for the simulator.
//
// A run is driven by one base seed. Independent streams (the host's and the
// candidate's) are derived from it with HKDF-SHA256 using the stream label as info,
// so a logged base seed is enough to replay the whole run.
package random

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"golang.org/x/crypto/hkdf"
)

// Stream labels used by the simulator.
const (
	StreamHost      = "host"
	StreamCandidate = "candidate"
)

// NewSeed generates a non-zero random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	for {
		if _, err := crand.Read(b[:]); err != nil {
			return 0, fmt.Errorf("read random seed: %w", err)
		}
		if seed := int64(binary.LittleEndian.Uint64(b[:])); seed != 0 {
			return seed, nil
		}
	}
}

// Derive returns a deterministic seed for the named stream: the first 8
// bytes of HKDF-SHA256 keyed by base with label as info.
func Derive(base int64, label string) int64 {
	r := hkdf.New(sha256.New, []byte(strconv.FormatInt(base, 10)), nil, []byte(label))
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		// HKDF-SHA256 only fails past 255*32 bytes of output.
		panic(fmt.Sprintf("derive seed: %v", err))
	}
	return int64(binary.BigEndian.Uint64(b[:]))
}

// New returns a generator seeded with seed.
// The result is not safe for concurrent use.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Stream returns the generator for label derived from base.
func Stream(base int64, label string) *rand.Rand {
	return New(Derive(base, label))
}
