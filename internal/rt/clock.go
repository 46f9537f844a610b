package rt

import (
	"math"
	"sync"
	"time"

	"fortio.org/safecast"
)

// Clock supplies time and blocking behavior for timers.
type Clock interface {
	NowMs() uint64
	SleepMs(ms uint64)
}

// RealClock blocks the calling goroutine for the requested duration.
type RealClock struct{}

// NowMs returns wall-clock milliseconds since the Unix epoch.
func (RealClock) NowMs() uint64 {
	ms := time.Now().UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// SleepMs sleeps for ms milliseconds, splitting the delay into whole
// seconds plus a nanosecond remainder.
func (RealClock) SleepMs(ms uint64) {
	maxMs := uint64(math.MaxInt64 / int64(time.Millisecond))
	if ms > maxMs {
		ms = maxMs
	}
	delay, err := safecast.Conv[int64](ms)
	if err != nil {
		return
	}
	sec := delay / 1000
	nsec := (delay % 1000) * int64(time.Millisecond)
	time.Sleep(time.Duration(sec)*time.Second + time.Duration(nsec))
}

// VirtualClock advances a counter instead of blocking; timer tests use it
// to avoid real delays.
type VirtualClock struct {
	mu    sync.Mutex
	nowMs uint64
}

// NowMs returns the virtual time in milliseconds.
func (c *VirtualClock) NowMs() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowMs
}

// SleepMs advances virtual time by ms without blocking.
func (c *VirtualClock) SleepMs(ms uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nowMs += ms
}
