package rt

// SetTimeout returns a promise settled by a pooled worker after delayMs
// milliseconds. The worker invokes callback with deep clones of args, or
// with a single number argument equal to the delay when no args are given,
// and resolves the promise with the callback's return value. A nil
// callback resolves with null after the delay. The caller never blocks.
func (r *Runtime) SetTimeout(callback Func, delayMs uint64, args []Value) *Promise {
	p := NewPromise()

	// The task owns private clones of its inputs; nothing mutable is
	// shared with the caller's goroutine.
	owned := make([]Value, len(args))
	for i, a := range args {
		owned[i] = Clone(a)
	}

	err := r.sched.Go(func() {
		r.clock.SleepMs(delayMs)
		if callback == nil {
			p.Resolve(MakeNull())
			return
		}
		callArgs := owned
		if len(callArgs) == 0 {
			callArgs = []Value{MakeNumber(float64(delayMs))}
		}
		p.Resolve(callback(MakeUndefined(), callArgs))
	})
	if err != nil {
		p.Reject(errorObject("failed to schedule timer: " + err.Error()))
	}
	return p
}

// Sleep returns a promise resolved with null roughly ms milliseconds from
// now, wired through SetTimeout. The caller is never blocked.
func (r *Runtime) Sleep(ms uint64) *Promise {
	resolver := func(this Value, args []Value) Value {
		return MakeNull()
	}
	return r.SetTimeout(resolver, ms, nil)
}

// errorObject builds the {message: ...} object carried by rejected
// promises for recoverable async failures.
func errorObject(msg string) Value {
	obj := MakeObject()
	ObjectSet(obj, "message", MakeString(msg))
	return obj
}
