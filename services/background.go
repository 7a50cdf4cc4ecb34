package services

import (
	"context"
	"sync"
	"time"
)

var background sync.WaitGroup

// runBackground runs fn detached from the request with its own timeout.
// WaitBackground blocks until every such task has returned.
func runBackground(fn func(ctx context.Context)) {
	background.Add(1)
	go func() {
		defer background.Done()
		ctx, cancel := context.WithTimeout(context.Background(), defaultBackgroundTimeout)
		defer cancel()
		fn(ctx)
	}()
}

// WaitBackground waits for pending notifications, events, emails and media cleanup.
// It reports false when timeout elapses first.
func WaitBackground(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		background.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
