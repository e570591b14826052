package task

import (
	"context"
	"testing"
	"time"
)

func TestLatestStartCancelsPrevious(t *testing.T) {
	var l Latest
	first, h1 := l.Start(context.Background())
	_, h2 := l.Start(context.Background())

	select {
	case <-first.Done():
	case <-time.After(time.Second):
		t.Fatal("first task was not cancelled")
	}
	if l.IsCurrent(h1.ID()) {
		t.Fatal("first task still reported as current")
	}
	if !l.IsCurrent(h2.ID()) {
		t.Fatal("second task should be current")
	}
	if h2.ID() <= h1.ID() {
		t.Fatalf("ids not increasing: %d then %d", h1.ID(), h2.ID())
	}
}

func TestLatestFinishOnlyCurrent(t *testing.T) {
	var l Latest
	_, h1 := l.Start(context.Background())
	_, h2 := l.Start(context.Background())

	if l.Finish(h1.ID()) {
		t.Fatal("finishing a superseded task should report false")
	}
	if !l.Finish(h2.ID()) {
		t.Fatal("finishing the current task should report true")
	}
	if l.Running() {
		t.Fatal("no task should be running after finish")
	}
	select {
	case <-h2.Done():
	default:
		t.Fatal("finished task context should be released")
	}
}

func TestLatestCancel(t *testing.T) {
	var l Latest
	ctx, h := l.Start(context.Background())
	l.Cancel()
	if ctx.Err() == nil {
		t.Fatal("expected context to be cancelled")
	}
	if l.IsCurrent(h.ID()) {
		t.Fatal("cancelled task should not be current")
	}
	l.Cancel()
}

func TestNilHandle(t *testing.T) {
	var h *Handle
	if h.ID() != 0 {
		t.Fatalf("nil handle id = %d, want 0", h.ID())
	}
	h.Cancel()
	if h.Done() != nil {
		t.Fatalf("nil handle Done should be nil")
	}
}

func TestHandleCancelKeepsTaskCurrent(t *testing.T) {
	var l Latest
	_, h := l.Start(context.Background())
	h.Cancel()
	select {
	case <-h.Done():
	default:
		t.Fatalf("expected cancelled handle to be done")
	}
	if !l.IsCurrent(h.ID()) {
		t.Fatalf("handle cancel should not release the task")
	}
	if !l.Finish(h.ID()) || l.IsCurrent(h.ID()) {
		t.Fatalf("finish should release the task")
	}
}
