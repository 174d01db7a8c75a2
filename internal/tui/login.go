// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

// LoginModel is the login screen: account e-mail and account password. On
// success an [authDoneMsg] carries the account to [RootModel], which opens
// the unlock screen.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newInput("e-mail", 254, false),
			newInput("account password", 256, true),
		),
	}
}

// Init resets the form every time the page is opened.
func (m *LoginModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	return nil
}

// Update handles:
//   - [authDoneMsg]: clears submitting state and shows the error, if any.
//   - esc: back to the menu.
//   - tab / shift+tab: field focus.
//   - enter: validates and dispatches the login command.
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(authDoneMsg); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.err)
		if result.err == nil {
			m.form.reset()
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.form.value(0))
			password := m.form.value(1)
			if email == "" || password == "" {
				m.errMsg = "E-mail and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("E-mail    [")
	b.WriteString(m.form.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password  [")
	b.WriteString(m.form.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Logging in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		account, err := auth.Login(ctx, models.LoginRequest{Email: email, Password: password})
		return authDoneMsg{account: account, err: err}
	}
}
