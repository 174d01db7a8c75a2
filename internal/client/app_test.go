package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/tui"
	"github.com/klaus-0-0/vault/internal/workers"
	"github.com/klaus-0-0/vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f *fakeUI) Run(ctx context.Context) error { return f.run(ctx) }

type countingSession struct{ locks int }

func (s *countingSession) Lock() { s.locks++ }

type countingClipboard struct{ clears int }

func (c *countingClipboard) Clear() { c.clears++ }

type blockingWorker struct {
	started chan struct{}
	stopped chan struct{}
}

func (w *blockingWorker) Run(ctx context.Context) {
	close(w.started)
	<-ctx.Done()
	close(w.stopped)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "normal exit", uiErr: nil},
		{name: "user quit", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("terminal lost"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := &countingSession{}
			clipboard := &countingClipboard{}
			ui := &fakeUI{run: func(context.Context) error { return tt.uiErr }}

			app := newApp(session, clipboard, ui, workers.NewWorkers(), logger.Nop())
			err := app.Run(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, session.locks)
			assert.Equal(t, 1, clipboard.clears)
		})
	}
}

func TestApp_RunStopsWorkers(t *testing.T) {
	worker := &blockingWorker{started: make(chan struct{}), stopped: make(chan struct{})}
	ui := &fakeUI{run: func(context.Context) error {
		select {
		case <-worker.started:
		case <-time.After(time.Second):
			return errors.New("worker did not start")
		}
		return tui.ErrUserQuit
	}}

	app := newApp(&countingSession{}, &countingClipboard{}, ui, workers.NewWorkers(worker), logger.Nop())
	require.NoError(t, app.Run(context.Background()))

	select {
	case <-worker.stopped:
	default:
		t.Fatal("worker still running after Run returned")
	}
}

func TestApp_RunCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ui := &fakeUI{run: func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return errors.New("program was killed: context canceled")
	}}

	app := newApp(&countingSession{}, &countingClipboard{}, ui, workers.NewWorkers(), logger.Nop())

	assert.NoError(t, app.Run(ctx))
}

func TestNewApp(t *testing.T) {
	t.Run("nil services", func(t *testing.T) {
		_, err := NewApp(nil, config.ClientWorkers{AutoLockTimeout: time.Minute, ClipboardTimeout: 30 * time.Second}, models.AppBuildInfo{}, logger.Nop())
		assert.ErrorIs(t, err, ErrNilServices)
	})

	t.Run("wires session", func(t *testing.T) {
		services := &service.ClientServices{
			Session: service.NewVaultSession(nil, nil, nil, nil, logger.Nop()),
		}

		app, err := NewApp(services, config.ClientWorkers{AutoLockTimeout: time.Minute, ClipboardTimeout: 30 * time.Second}, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
		require.NoError(t, err)
		assert.Same(t, services.Session, app.session)
		assert.NotNil(t, app.ui)
		assert.NotNil(t, app.workers)
	})
}
