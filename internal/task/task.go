// Package task tracks the single in-flight unit of background work whose
// result the UI still wants. Starting a new task cancels the previous one.
package task

import (
	"context"
	"sync"
)

// ID identifies a started task. Zero is never issued.
type ID uint64

// Handle controls one started task.
type Handle struct {
	id     ID
	ctx    context.Context
	cancel context.CancelFunc
}

// ID returns the task identifier.
func (h *Handle) ID() ID {
	if h == nil {
		return 0
	}
	return h.id
}

// Cancel stops the task. Safe to call more than once.
func (h *Handle) Cancel() {
	if h != nil && h.cancel != nil {
		h.cancel()
	}
}

// Done is closed once the task has been cancelled. A nil handle is never done.
func (h *Handle) Done() <-chan struct{} {
	if h == nil || h.ctx == nil {
		return nil
	}
	return h.ctx.Done()
}

// Latest keeps only the most recently started task alive.
type Latest struct {
	mu      sync.Mutex
	next    ID
	current *Handle
}

// Start cancels the current task, if any, and begins a new one derived from parent.
func (l *Latest) Start(parent context.Context) (context.Context, *Handle) {
	ctx, cancel := context.WithCancel(parent)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Cancel()
	}
	l.next++
	h := &Handle{id: l.next, ctx: ctx, cancel: cancel}
	l.current = h
	return ctx, h
}

// IsCurrent reports whether id belongs to the most recently started task
// and that task has not been finished or cancelled through l. Cancelling the
// Handle directly does not release it.
func (l *Latest) IsCurrent(id ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil && l.current.id == id
}

// Finish releases the task if it is still current. It reports whether it was.
func (l *Latest) Finish(id ID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current == nil || l.current.id != id {
		return false
	}
	l.current.Cancel()
	l.current = nil
	return true
}

// Cancel stops the current task without starting a new one.
func (l *Latest) Cancel() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.current != nil {
		l.current.Cancel()
		l.current = nil
	}
}

// Running reports whether a task is in flight.
func (l *Latest) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.current != nil
}
