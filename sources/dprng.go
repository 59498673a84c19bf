package sources

import "github.com/fernandosanchezjr/godprng/dprng"

// IntSource draws one NextInt(0, 255) per byte.
type IntSource struct {
	g *dprng.Generator
}

func NewDPRNG(seed uint64) *IntSource {
	return &IntSource{g: dprng.New(seed)}
}

func (s *IntSource) Name() string {
	return DPRNG
}

func (s *IntSource) Deterministic() bool {
	return true
}

func (s *IntSource) Read(p []byte) (int, error) {
	for i := range p {
		v, err := s.g.NextInt(0, 255)
		if err != nil {
			return i, err
		}
		p[i] = byte(v)
	}
	return len(p), nil
}

type BytesSource struct {
	*dprng.Reader
}

func NewDPRNGBytes(seed uint64) *BytesSource {
	return &BytesSource{Reader: dprng.NewReader(dprng.New(seed))}
}

func (s *BytesSource) Name() string {
	return DPRNGBytes
}

func (s *BytesSource) Deterministic() bool {
	return true
}
