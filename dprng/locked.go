package dprng

import "sync"

// Locked serializes access to a single Generator.
type Locked struct {
	mtx sync.Mutex
	g   *Generator
}

func NewLocked(seed uint64) *Locked {
	return &Locked{g: New(seed)}
}

func (l *Locked) Next() uint64 {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.g.Next()
}

func (l *Locked) NextInt(min, max int64) (int64, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.g.NextInt(min, max)
}

func (l *Locked) NextDouble(min, max float64) (float64, error) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.g.NextDouble(min, max)
}

func (l *Locked) NextBytes(count int) []byte {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	return l.g.NextBytes(count)
}

func (l *Locked) Seed(seed uint64) {
	l.mtx.Lock()
	defer l.mtx.Unlock()
	l.g.Seed(seed)
}
