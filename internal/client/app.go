package client

import (
	"context"
	"errors"

	"github.com/klaus-0-0/vault/internal/config"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/platform"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/internal/tui"
	"github.com/klaus-0-0/vault/internal/workers"
	"github.com/klaus-0-0/vault/models"
)

type App struct {
	session   Session
	clipboard Clipboard
	ui        UI
	workers   *workers.Workers

	logger *logger.Logger
}

// NewApp wires the clipboard, the auto-lock worker and the TUI around
// services. An automatic lock wipes the clipboard and returns the UI to the
// unlock screen.
func NewApp(services *service.ClientServices, cfg config.ClientWorkers, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	if services == nil || services.Session == nil {
		return nil, ErrNilServices
	}

	clipboard := platform.NewClipboard(cfg.ClipboardTimeout, logger)

	var ui *tui.TUI
	autoLock := workers.NewAutoLockWorker(services.Session, cfg.AutoLockTimeout, func() {
		clipboard.Clear()
		ui.NotifyLocked()
	}, logger)

	ui = tui.New(services, clipboard, autoLock, buildInfo, logger)

	return newApp(services.Session, clipboard, ui, workers.NewWorkers(autoLock), logger), nil
}

func newApp(session Session, clipboard Clipboard, ui UI, w *workers.Workers, logger *logger.Logger) *App {
	return &App{
		session:   session,
		clipboard: clipboard,
		ui:        ui,
		workers:   w,
		logger:    logger,
	}
}

// Run starts the background workers and shows the UI until the user quits
// or ctx is done. On the way out the vault is locked and the clipboard
// wiped.
func (a *App) Run(ctx context.Context) error {
	a.workers.Start(ctx)

	defer func() {
		a.workers.Stop()
		a.session.Lock()
		a.clipboard.Clear()
		a.logger.Info().Msg("client stopped")
	}()

	a.logger.Info().Msg("client started")

	err := a.ui.Run(ctx)
	if err == nil || errors.Is(err, tui.ErrUserQuit) || ctx.Err() != nil {
		return nil
	}

	a.logger.Err(err).Msg("ui stopped with error")
	return err
}
