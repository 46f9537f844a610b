package rt

import (
	"sync"

	"smashrt/internal/config"
)

// Runtime owns the scheduler and clock behind the asynchronous entry
// points. The main call path stays synchronous; timers and fetches run on
// the runtime's bounded worker pool and settle their promises from there.
type Runtime struct {
	cfg   config.Config
	sched *Scheduler
	clock Clock
}

// New constructs a runtime from cfg.
func New(cfg config.Config) *Runtime {
	var clock Clock = RealClock{}
	if cfg.Timer.Clock == config.ClockVirtual {
		clock = &VirtualClock{}
	}
	return &Runtime{
		cfg:   cfg,
		sched: NewScheduler(cfg.Scheduler.MaxWorkers),
		clock: clock,
	}
}

// Close stops accepting async work and waits for in-flight tasks.
func (r *Runtime) Close() error {
	return r.sched.Close()
}

var (
	defaultOnce    sync.Once
	defaultRuntime *Runtime
)

// Default returns the shared runtime used by the package-level async entry
// points that transpiler-generated call sites target.
func Default() *Runtime {
	defaultOnce.Do(func() {
		defaultRuntime = New(config.Default())
	})
	return defaultRuntime
}

// SetTimeout schedules callback on the default runtime.
func SetTimeout(callback Func, delayMs uint64, args []Value) *Promise {
	return Default().SetTimeout(callback, delayMs, args)
}

// Sleep delays on the default runtime.
func Sleep(ms uint64) *Promise {
	return Default().Sleep(ms)
}

// Fetch performs a mock request on the default runtime.
func Fetch(url string, options Value) *Promise {
	return Default().Fetch(url, options)
}
