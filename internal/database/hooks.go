package database

import (
	"context"
	"sync"
)

// AfterCommit collects side effects that must only happen once the
// surrounding transaction is committed.
type AfterCommit struct {
	mu    sync.Mutex
	hooks []func()
}

type afterCommitKey struct{}

// WithAfterCommit returns a context carrying a fresh hook list.
func WithAfterCommit(ctx context.Context) (context.Context, *AfterCommit) {
	ac := &AfterCommit{}
	return context.WithValue(ctx, afterCommitKey{}, ac), ac
}

// OnCommit defers fn until the transaction bound to ctx commits.
// Without such a transaction fn runs immediately.
func OnCommit(ctx context.Context, fn func()) {
	ac, ok := ctx.Value(afterCommitKey{}).(*AfterCommit)
	if !ok {
		fn()
		return
	}
	ac.mu.Lock()
	ac.hooks = append(ac.hooks, fn)
	ac.mu.Unlock()
}

// Run executes the collected hooks in registration order and empties the list.
func (ac *AfterCommit) Run() {
	ac.mu.Lock()
	hooks := ac.hooks
	ac.hooks = nil
	ac.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// Discard drops the collected hooks, for a rolled back transaction.
func (ac *AfterCommit) Discard() {
	ac.mu.Lock()
	ac.hooks = nil
	ac.mu.Unlock()
}
