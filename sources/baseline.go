package sources

import (
	"crypto/rand"
	"encoding/binary"
	"gonum.org/v1/gonum/mathext/prng"
	mathrand "math/rand"
)

// MathRandSource mirrors a per-byte rand(0, 255) loop.
type MathRandSource struct {
	rng *mathrand.Rand
}

func NewMathRand(seed uint64) *MathRandSource {
	return &MathRandSource{rng: mathrand.New(mathrand.NewSource(int64(seed)))}
}

func (s *MathRandSource) Name() string {
	return MathRand
}

func (s *MathRandSource) Deterministic() bool {
	return true
}

func (s *MathRandSource) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = byte(s.rng.Intn(256))
	}
	return len(p), nil
}

type CryptoSource struct{}

func NewCrypto() *CryptoSource {
	return &CryptoSource{}
}

func (s *CryptoSource) Name() string {
	return Crypto
}

func (s *CryptoSource) Deterministic() bool {
	return false
}

func (s *CryptoSource) Read(p []byte) (int, error) {
	return rand.Read(p)
}

type uint64Source interface {
	Uint64() uint64
}

// fillLittleEndian splits 64-bit draws into bytes, dropping the tail of the last one.
func fillLittleEndian(src uint64Source, p []byte) {
	var word [8]byte
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, src.Uint64())
		p = p[8:]
	}
	if len(p) > 0 {
		binary.LittleEndian.PutUint64(word[:], src.Uint64())
		copy(p, word[:])
	}
}

type XoshiroSource struct {
	rng *prng.Xoshiro256starstar
}

func NewXoshiro(seed uint64) *XoshiroSource {
	return &XoshiroSource{rng: prng.NewXoshiro256starstar(seed)}
}

func (s *XoshiroSource) Name() string {
	return Xoshiro
}

func (s *XoshiroSource) Deterministic() bool {
	return true
}

func (s *XoshiroSource) Read(p []byte) (int, error) {
	fillLittleEndian(s.rng, p)
	return len(p), nil
}

type MT19937Source struct {
	rng *prng.MT19937_64
}

func NewMT19937(seed uint64) *MT19937Source {
	rng := prng.NewMT19937_64()
	rng.Seed(seed)
	return &MT19937Source{rng: rng}
}

func (s *MT19937Source) Name() string {
	return MT19937
}

func (s *MT19937Source) Deterministic() bool {
	return true
}

func (s *MT19937Source) Read(p []byte) (int, error) {
	fillLittleEndian(s.rng, p)
	return len(p), nil
}
