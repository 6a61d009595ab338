package utils

import (
	"github.com/twmb/murmur3"
)

// HashString returns a stable 64-bit murmur3 fingerprint of s.
// Used to identify a transcript independently of task identifiers.
func HashString(s string) uint64 {
	hash := murmur3.New64()
	_, err := hash.Write([]byte(s))
	if err != nil {
		panic(err)
	}
	return hash.Sum64()
}

// RFC3339Micro matches the microsecond timestamp format used across the
// task documents and generated artifacts.
const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"
