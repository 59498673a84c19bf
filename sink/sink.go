// Package sink appends bytes drawn from a source to a stream or file.
package sink

import (
	"encoding/hex"
	"errors"
	"fmt"
	"github.com/fernandosanchezjr/godprng/sources"
	"github.com/fernandosanchezjr/godprng/utils"
	"io"
	"os"
	"path"
	"time"
)

const ChunkSize = 4096

var ErrNegativeCount = errors.New("negative byte count")

type Result struct {
	Source  string
	Path    string
	Count   int64
	Digest  string
	Elapsed time.Duration
}

func FileName(source string) string {
	return fmt.Sprintf("out-%s.bin", source)
}

// Write copies count bytes from src to w in ChunkSize reads, hashing as it goes.
func Write(w io.Writer, src sources.Source, count int64) (*Result, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	start := time.Now()
	digest := utils.NewDigest()
	buf := make([]byte, ChunkSize)
	var written int64
	for written < count {
		chunk := buf
		if remaining := count - written; remaining < int64(len(chunk)) {
			chunk = chunk[:remaining]
		}
		n, err := io.ReadFull(src, chunk)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src.Name(), err)
		}
		if _, err := w.Write(chunk[:n]); err != nil {
			return nil, err
		}
		_, _ = digest.Write(chunk[:n])
		written += int64(n)
	}
	return &Result{
		Source:  src.Name(),
		Count:   written,
		Digest:  hex.EncodeToString(digest.Sum(nil)),
		Elapsed: time.Since(start),
	}, nil
}

func WriteFile(folder string, src sources.Source, count int64) (result *Result, err error) {
	filePath := path.Join(folder, FileName(src.Name()))
	f, err := os.OpenFile(filePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			result, err = nil, closeErr
		}
	}()
	if result, err = Write(f, src, count); err != nil {
		return nil, err
	}
	result.Path = filePath
	return result, nil
}
