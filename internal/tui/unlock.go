package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/models"
)

// UnlockModel asks for the master password of the signed-in account. The
// input is emptied as soon as it has been handed to the session.
type UnlockModel struct {
	ctx     context.Context
	session Session

	account    models.Account
	input      textinput.Model
	submitting bool
	status     string
	errMsg     string
}

func NewUnlockModel(ctx context.Context, session Session) *UnlockModel {
	input := newInput("master password", 1024, true)
	input.Focus()

	return &UnlockModel{
		ctx:     ctx,
		session: session,
		input:   input,
	}
}

func (m *UnlockModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.input.Reset()
	return nil
}

func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockPromptMsg:
		m.account = msg.account
		m.status = msg.status
		return m, nil

	case unlockDoneMsg:
		// only failures reach this page; success is routed to the list
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.status = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			password := m.input.Value()
			m.input.Reset()
			if password == "" {
				m.errMsg = "Master password is required"
				return m, nil
			}

			m.errMsg = ""
			m.status = ""
			m.submitting = true
			return m, m.cmdUnlock(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *UnlockModel) View() string {
	var b strings.Builder
	b.WriteString("Account          ")
	b.WriteString(valueOrDash(m.account.AccountID))
	b.WriteString("\n")
	b.WriteString("Master password  [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), "enter: unlock │ esc: back to menu")
}

func (m *UnlockModel) cmdUnlock(password string) tea.Cmd {
	ctx := m.ctx
	session := m.session
	accountID := m.account.AccountID

	return func() tea.Msg {
		result, err := session.Unlock(ctx, password, accountID)
		return unlockDoneMsg{result: result, err: err}
	}
}
