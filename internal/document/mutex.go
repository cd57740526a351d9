package document

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// This file defines the per-document locking primitive: each document is
// locked independently, so concurrent operations on the *same* document
// are serialized. Grounded on buflsp/mutex.go's mutexPool/mutex pair,
// which solves exactly this problem for buflsp's own per-file state: a
// reentrancy-checking mutex keyed by a request-scoped context value, so a
// handler that (accidentally) tries to lock the same document's engine
// twice within one request panics instead of deadlocking.

const poisoned = ^uint64(0)

var nextRequestID atomic.Uint64

// withRequestID tags ctx with a fresh, process-unique request identity.
// Every lock taken with a context tagged this way shares the id, so
// mutexPool can detect a handler re-entering a lock it already holds.
// Nothing in internal/lsp calls it, so handler locks currently carry id 0
// and take the plain mutual-exclusion path in check.
func withRequestID(ctx context.Context) context.Context {
	id := nextRequestID.Add(1)
	return context.WithValue(ctx, &nextRequestID, id)
}

func requestID(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, ok := ctx.Value(&nextRequestID).(uint64)
	if !ok {
		return 0
	}
	return id
}

// mutexPool tracks which request id currently holds which of its mutexes,
// so that locking two distinct documents' mutexes from the same request is
// fine but locking the same one twice panics. A zero mutexPool is ready to
// use.
type mutexPool struct {
	mu   sync.Mutex
	held map[uint64]*reentrantMutex
}

func (p *mutexPool) newMutex() reentrantMutex {
	return reentrantMutex{pool: p}
}

func (p *mutexPool) check(id uint64, m *reentrantMutex, isUnlock bool) {
	if p == nil || id == 0 {
		// id == 0 means the caller locked with a context withRequestID never
		// tagged (tests, background maintenance work): fall back to plain
		// mutual exclusion with no cross-call reentrancy tracking, rather
		// than serializing every untagged caller through one shared slot.
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.held == nil {
		p.held = make(map[uint64]*reentrantMutex)
	}
	if isUnlock {
		if held := p.held[id]; held != m {
			panic(fmt.Sprintf("document: attempted to unlock a lock this request does not hold: %p -> %p", held, m))
		}
		delete(p.held, id)
		return
	}
	if held := p.held[id]; held != nil {
		panic(fmt.Sprintf("document: attempted to lock two document engines at once within one request: %p -> %p", m, held))
	}
	p.held[id] = m
}

// reentrantMutex guards one DocumentEngine's state. Lock takes a Context
// produced by withRequestID; two Lock calls made with the same context id
// (i.e. from within one inbound request) panic on the second call rather
// than deadlocking — a programmer error should fail fast, not hang.
type reentrantMutex struct {
	lock sync.Mutex
	who  atomic.Uint64
	pool *mutexPool
}

// Lock acquires the mutex, blocking if necessary, and returns an idempotent
// unlocker — usable as defer m.Lock(ctx)().
func (m *reentrantMutex) Lock(ctx context.Context) (unlock func()) {
	var unlocked bool
	unlock = func() {
		if unlocked {
			return
		}
		m.Unlock(ctx)
		unlocked = true
	}

	id := requestID(ctx)
	if id > 0 && m.who.Load() == id {
		m.who.Store(poisoned)
		panic("document: document engine locked twice by the same request")
	}
	m.pool.check(id, m, false)

	m.lock.Lock()
	m.storeWho(id)
	return unlock
}

// Unlock releases the mutex. It must be called with the same context that
// locked it.
func (m *reentrantMutex) Unlock(ctx context.Context) {
	id := requestID(ctx)
	if m.who.Load() != id {
		panic("document: document engine unlocked by a different request than locked it")
	}
	m.storeWho(0)
	m.pool.check(id, m, true)
	m.lock.Unlock()
}

func (m *reentrantMutex) storeWho(id uint64) {
	for {
		old := m.who.Load()
		if old == poisoned {
			panic("document: document engine locked twice by the same request")
		}
		if m.who.CompareAndSwap(old, id) {
			return
		}
	}
}
