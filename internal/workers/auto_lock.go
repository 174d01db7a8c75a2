// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/service"
)

// maxCheckInterval caps how often the idle timer is checked.
const maxCheckInterval = time.Second

// AutoLockWorker locks the session after a period without user activity.
// The UI reports activity through Touch.
type AutoLockWorker struct {
	session Session
	timeout time.Duration
	onLock  func()

	mu           sync.Mutex
	lastActivity time.Time
	now          func() time.Time

	logger *logger.Logger
}

// NewAutoLockWorker returns a worker locking session after timeout of
// inactivity. onLock, if not nil, runs after every automatic lock. A zero
// timeout disables the worker.
func NewAutoLockWorker(session Session, timeout time.Duration, onLock func(), logger *logger.Logger) *AutoLockWorker {
	return &AutoLockWorker{
		session:      session,
		timeout:      timeout,
		onLock:       onLock,
		lastActivity: time.Now(),
		now:          time.Now,
		logger:       logger,
	}
}

// Touch records user activity.
func (w *AutoLockWorker) Touch() {
	w.mu.Lock()
	w.lastActivity = w.now()
	w.mu.Unlock()
}

// Run checks the idle timer until ctx is done.
func (w *AutoLockWorker) Run(ctx context.Context) {
	if w.timeout <= 0 {
		return
	}

	ticker := time.NewTicker(min(w.timeout/4, maxCheckInterval))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check locks an unlocked session whose idle time reached the timeout.
func (w *AutoLockWorker) check() bool {
	if w.session.State() == service.StateLocked {
		return false
	}

	w.mu.Lock()
	idle := w.now().Sub(w.lastActivity)
	w.mu.Unlock()

	if idle < w.timeout {
		return false
	}

	w.session.Lock()
	w.logger.Info().Dur("idle", idle).Msg("vault auto-locked")

	if w.onLock != nil {
		w.onLock()
	}
	return true
}
