// Package tui is the terminal interface of the vault client, built on
// bubbletea. A [RootModel] routes between the pages: menu, login, sign up,
// unlock, item list, item detail, new item and delete confirmation.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/logger"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

type TUI struct {
	services  *service.ClientServices
	clipboard Clipboard
	activity  ActivityTracker
	buildInfo models.AppBuildInfo

	mu      sync.Mutex
	program *tea.Program

	logger *logger.Logger
}

func New(services *service.ClientServices, clipboard Clipboard, activity ActivityTracker, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		clipboard: clipboard,
		activity:  activity,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits. It returns ErrUserQuit on ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))
	t.mu.Lock()
	t.program = program
	t.mu.Unlock()

	defer func() {
		t.mu.Lock()
		t.program = nil
		t.mu.Unlock()
	}()

	finalModel, err := program.Run()
	if err != nil {
		return err
	}

	if result, ok := finalModel.(RootModel); ok && result.Quit() {
		return ErrUserQuit
	}
	return nil
}

// NotifyLocked tells a running UI that the session was locked from outside.
func (t *TUI) NotifyLocked() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(VaultLockedMsg{})
	}
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	session := t.services.Session

	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageLogin:  NewLoginModel(ctx, t.services.AuthService),
		pageSignup: NewSignupModel(ctx, t.services.AuthService),
		pageUnlock: NewUnlockModel(ctx, session),
		pageList:   NewListModel(ctx, session),
		pageDetail: NewDetailModel(session, t.clipboard),
		pageCreate: NewCreateModel(ctx, session, t.services.Generator),
		pageDelete: NewDeleteModel(ctx, session),
	}

	return NewRootModel(pages, pageMenu, session, t.clipboard, t.activity, t.buildInfo)
}
