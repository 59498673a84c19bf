// Package sources names the byte streams that get written and compared: the
// deterministic generator and the baselines it is measured against.
package sources

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

const (
	DPRNG      = "dprng"
	DPRNGBytes = "dprng-bytes"
	MathRand   = "rand"
	Crypto     = "crypto"
	Xoshiro    = "xoshiro"
	MT19937    = "mt19937"
)

var ErrUnknownSource = errors.New("unknown source")

type Source interface {
	io.Reader
	Name() string
	// Deterministic reports whether the stream is a function of the seed.
	Deterministic() bool
}

type factory func(seed uint64) Source

var registry = map[string]factory{
	DPRNG:      func(seed uint64) Source { return NewDPRNG(seed) },
	DPRNGBytes: func(seed uint64) Source { return NewDPRNGBytes(seed) },
	MathRand:   func(seed uint64) Source { return NewMathRand(seed) },
	Crypto:     func(uint64) Source { return NewCrypto() },
	Xoshiro:    func(seed uint64) Source { return NewXoshiro(seed) },
	MT19937:    func(seed uint64) Source { return NewMT19937(seed) },
}

func New(name string, seed uint64) (Source, error) {
	f, found := registry[name]
	if !found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
	return f(seed), nil
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Known(name string) bool {
	_, found := registry[name]
	return found
}
