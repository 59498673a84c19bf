package utils

import (
	"os"
	"time"
)

// EntropySeed joins the current time with the process id.
func EntropySeed() uint64 {
	return uint64(time.Now().UnixNano())<<16 ^ uint64(os.Getpid())
}
