package dprng

import (
	"bytes"
	"math/rand"
	"sync"
	"testing"
)

func TestSource_MatchesGenerator(t *testing.T) {
	src := NewSource(42)
	g := New(42)
	for i := 0; i < 100; i++ {
		if a, b := src.Uint64(), g.Next(); a != b {
			t.Fatalf("draw %d: %016x != %016x", i, a, b)
		}
	}
	if v := src.Int63(); v < 0 {
		t.Fatalf("negative Int63: %d", v)
	}
}

func TestSource_MathRand(t *testing.T) {
	a := rand.New(NewSource(3))
	b := rand.New(NewSource(3))
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	src := NewSource(0)
	src.Seed(42)
	if src.Uint64() != New(42).Next() {
		t.Fatal("Seed did not reset the stream")
	}
}

func TestReader(t *testing.T) {
	r := NewReader(New(42))
	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if err != nil || n != 16 {
		t.Fatalf("read %d, %v", n, err)
	}
	if !bytes.Equal(buf, New(42).NextBytes(16)) {
		t.Fatal("reader differs from NextBytes")
	}
}

func TestLocked_Concurrent(t *testing.T) {
	const workers, draws = 8, 1000
	l := NewLocked(42)
	results := make(chan uint64, workers*draws)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < draws; i++ {
				results <- l.Next()
			}
		}()
	}
	wg.Wait()
	close(results)
	seen := map[uint64]bool{}
	for v := range results {
		seen[v] = true
	}
	g := New(42)
	for i := 0; i < workers*draws; i++ {
		if v := g.Next(); !seen[v] {
			t.Fatalf("draw %d (%016x) missing from the shared stream", i, v)
		}
	}
	if _, err := l.NextInt(3, 1); err == nil {
		t.Fatal("expected invalid range")
	}
}
