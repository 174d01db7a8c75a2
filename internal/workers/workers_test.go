// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// countingWorker counts Run calls and blocks until ctx is done.
type countingWorker struct {
	started  atomic.Int32
	finished atomic.Int32
}

func (c *countingWorker) Run(ctx context.Context) {
	c.started.Add(1)
	<-ctx.Done()
	c.finished.Add(1)
}

func TestWorkers_StartStop(t *testing.T) {
	w1, w2 := &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2)

	ws.Start(context.Background())
	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	ws.Stop()

	assert.Equal(t, int32(1), w1.finished.Load())
	assert.Equal(t, int32(1), w2.finished.Load())
}

func TestWorkers_StartTwiceRunsOnce(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int32(1), w.started.Load())
}

func TestWorkers_ParentContextCancels(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return w.finished.Load() == 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	ws.Start(context.Background())
	ws.Stop()
	ws.Stop()
}
