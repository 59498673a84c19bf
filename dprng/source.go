package dprng

import "math/rand"

var _ rand.Source64 = (*Source)(nil)

// Source feeds a Generator into math/rand and gonum distributions.
type Source struct {
	*Generator
}

func NewSource(seed uint64) *Source {
	return &Source{Generator: New(seed)}
}

func (s *Source) Uint64() uint64 {
	return s.Next()
}

func (s *Source) Int63() int64 {
	return int64(s.Next() >> 1)
}

// Seed satisfies rand.Source; the bits of seed are reused as an unsigned seed.
func (s *Source) Seed(seed int64) {
	s.Generator.Seed(uint64(seed))
}
