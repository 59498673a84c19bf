package sink

import (
	"bytes"
	"errors"
	"github.com/fernandosanchezjr/godprng/dprng"
	"github.com/fernandosanchezjr/godprng/sources"
	"github.com/fernandosanchezjr/godprng/utils"
	"io/ioutil"
	"path"
	"testing"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	const count = ChunkSize*2 + 17
	result, err := Write(&buf, sources.NewDPRNGBytes(42), count)
	if err != nil {
		t.Fatal(err)
	}
	if result.Count != count || int64(buf.Len()) != count || result.Source != sources.DPRNGBytes {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Digest != utils.Digest(buf.Bytes()) {
		t.Fatal("digest mismatch")
	}
	// chunks are multiples of eight, so the stream equals one NextBytes call
	if !bytes.Equal(buf.Bytes(), dprng.New(42).NextBytes(count)) {
		t.Fatal("stream differs from NextBytes")
	}
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	result, err := Write(&buf, sources.NewDPRNG(1), 0)
	if err != nil || result.Count != 0 || buf.Len() != 0 {
		t.Fatalf("%+v, %v", result, err)
	}
	if _, err := Write(&buf, sources.NewDPRNG(1), -1); !errors.Is(err, ErrNegativeCount) {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
	if _, err := Write(failingWriter{}, sources.NewDPRNG(1), 8); err == nil {
		t.Fatal("writer error swallowed")
	}
}

func TestWriteFile(t *testing.T) {
	var folder = t.TempDir()
	result, err := WriteFile(folder, sources.NewDPRNG(42), 25600)
	if err != nil {
		t.Fatal(err)
	}
	if result.Path != path.Join(folder, "out-dprng.bin") {
		t.Fatalf("unexpected path %s", result.Path)
	}
	data, err := ioutil.ReadFile(result.Path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 25600 || !bytes.Equal(data[:5], []byte{49, 144, 124, 69, 205}) {
		t.Fatalf("unexpected file head %v", data[:5])
	}
	if _, err := WriteFile(path.Join(folder, "missing"), sources.NewDPRNG(42), 1); err == nil {
		t.Fatal("expected error for missing folder")
	}
}
