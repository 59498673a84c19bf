package utils

import (
	"encoding/hex"
	"github.com/fernandosanchezjr/sha256-simd"
	"hash"
)

func NewDigest() hash.Hash {
	return sha256.New()
}

func Digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
