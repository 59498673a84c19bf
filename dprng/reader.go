package dprng

import "io"

var _ io.Reader = (*Reader)(nil)

// Reader streams bytes from a Generator. Each Read fills p exactly as
// NextBytes(len(p)) would, so the split of reads affects the stream.
type Reader struct {
	g *Generator
}

func NewReader(g *Generator) *Reader {
	return &Reader{g: g}
}

func (r *Reader) Read(p []byte) (int, error) {
	r.g.fill(p)
	return len(p), nil
}
