package rt

import (
	"fmt"
	"sync"
)

// PromiseState is one of the three promise lifecycle states. Pending is the
// only non-terminal state.
type PromiseState uint8

const (
	// PromisePending means the promise has not settled yet.
	PromisePending PromiseState = iota
	// PromiseFulfilled means the promise settled with a result.
	PromiseFulfilled
	// PromiseRejected means the promise settled with a rejection reason.
	PromiseRejected
)

// String returns a human-readable name for the state.
func (s PromiseState) String() string {
	switch s {
	case PromisePending:
		return "pending"
	case PromiseFulfilled:
		return "fulfilled"
	case PromiseRejected:
		return "rejected"
	default:
		return fmt.Sprintf("PromiseState(%d)", s)
	}
}

// continuation is one registered Then pair plus the promise it settles.
type continuation struct {
	onFulfilled Func
	onRejected  Func
	next        *Promise
}

// Promise is a single-assignment asynchronous result cell. It is settled
// exactly once; resolve and reject calls after the first settlement are
// silent no-ops. Continuations are kept in a list, so every Then registered
// while the promise is still pending fires at settlement.
//
// The mutex guards the state machine only; values crossing the settlement
// boundary are always deep clones, never shared.
type Promise struct {
	mu     sync.Mutex
	state  PromiseState
	result Value
	conts  []continuation
	done   chan struct{}
}

// NewPromise creates a pending promise.
func NewPromise() *Promise {
	return &Promise{done: make(chan struct{})}
}

// State reports the current state without blocking.
func (p *Promise) State() PromiseState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Result returns a clone of the settled payload and the current state. A
// pending promise yields undefined.
func (p *Promise) Result() (Value, PromiseState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PromisePending {
		return MakeUndefined(), PromisePending
	}
	return Clone(p.result), p.state
}

// Wait blocks until settlement and returns a clone of the payload.
func (p *Promise) Wait() (Value, PromiseState) {
	<-p.done
	return p.Result()
}

// Resolve fulfills the promise with a clone of v. First settlement wins.
func (p *Promise) Resolve(v Value) {
	p.settle(PromiseFulfilled, v)
}

// Reject rejects the promise with a clone of reason. First settlement wins.
func (p *Promise) Reject(reason Value) {
	p.settle(PromiseRejected, reason)
}

func (p *Promise) settle(state PromiseState, payload Value) {
	p.mu.Lock()
	if p.state != PromisePending {
		p.mu.Unlock()
		return
	}
	p.state = state
	p.result = Clone(payload)
	conts := p.conts
	p.conts = nil
	close(p.done)
	result := p.result
	p.mu.Unlock()

	for _, c := range conts {
		c.run(state, Clone(result))
	}
}

// Then returns a new pending promise settled by the matching handler's
// return value once the source settles: a missing fulfill handler passes
// the payload through, a missing reject handler propagates the rejection.
// If the source is already settled the handler runs synchronously on the
// caller's goroutine before Then returns.
func (p *Promise) Then(onFulfilled, onRejected Func) *Promise {
	c := continuation{
		onFulfilled: onFulfilled,
		onRejected:  onRejected,
		next:        NewPromise(),
	}
	p.mu.Lock()
	if p.state == PromisePending {
		p.conts = append(p.conts, c)
		p.mu.Unlock()
		return c.next
	}
	state := p.state
	payload := Clone(p.result)
	p.mu.Unlock()

	c.run(state, payload)
	return c.next
}

// Catch is sugar for Then(nil, onRejected).
func (p *Promise) Catch(onRejected Func) *Promise {
	return p.Then(nil, onRejected)
}

func (c continuation) run(state PromiseState, payload Value) {
	switch state {
	case PromiseFulfilled:
		if c.onFulfilled != nil {
			c.next.Resolve(c.onFulfilled(MakeUndefined(), []Value{payload}))
			return
		}
		c.next.Resolve(payload)
	case PromiseRejected:
		if c.onRejected != nil {
			c.next.Resolve(c.onRejected(MakeUndefined(), []Value{payload}))
			return
		}
		c.next.Reject(payload)
	}
}
