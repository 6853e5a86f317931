//go:build deadlock

package syncutil

import (
	"os"
	"time"

	deadlock "github.com/sasha-s/go-deadlock"
)

const DeadlockEnabled = true

type (
	Mutex   = deadlock.Mutex
	RWMutex = deadlock.RWMutex
)

// detectorTimeout sits well above the default hold delay plus lock timeout, so
// only a lock that is never released gets reported.
const detectorTimeout = 15 * time.Second

func init() {
	deadlock.Opts.DeadlockTimeout = detectorTimeout
	deadlock.Opts.LogBuf = os.Stderr
}
