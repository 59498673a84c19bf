package utils

import (
	"github.com/dustin/go-humanize"
	"strconv"
)

const MaxRawByteCount = 1024

type ByteCount int64

func (b ByteCount) String() string {
	if b < MaxRawByteCount {
		return strconv.FormatInt(int64(b), 10) + " B"
	} else {
		return humanize.IBytes(uint64(b))
	}
}

// Rate formats throughput for a transfer of b bytes over seconds.
func (b ByteCount) Rate(seconds float64) string {
	if seconds <= 0 {
		return "-"
	}
	return humanize.IBytes(uint64(float64(b)/seconds)) + "/s"
}
