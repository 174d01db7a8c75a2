package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

const (
	signupUsername = iota
	signupEmail
	signupPassword
	signupRepeat
)

// SignupModel is the registration screen. The account password only
// authenticates against the server; the master password is asked for on the
// unlock screen and never leaves the client.
type SignupModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       form
	submitting bool
	errMsg     string
}

func NewSignupModel(ctx context.Context, auth service.ClientAuthService) *SignupModel {
	return &SignupModel{
		ctx:  ctx,
		auth: auth,
		form: newForm(
			newInput("username", 64, false),
			newInput("e-mail", 254, false),
			newInput("account password", 256, true),
			newInput("repeat account password", 256, true),
		),
	}
}

// Init resets the form every time the page is opened.
func (m *SignupModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	return nil
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

			req := models.SignupRequest{
				Username: strings.TrimSpace(m.form.value(signupUsername)),
				Email:    strings.TrimSpace(m.form.value(signupEmail)),
				Password: m.form.value(signupPassword),
			}
			if req.Username == "" || req.Email == "" || req.Password == "" {
				m.errMsg = "All fields are required"
				return m, nil
			}
			if req.Password != m.form.value(signupRepeat) {
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignup(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *SignupModel) View() string {
	labels := []string{"Username", "E-mail", "Password", "Repeat"}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("[")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Signing up...]\n")
	} else {
		b.WriteString("\n[Sign up]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("SIGN UP", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *SignupModel) cmdSignup(req models.SignupRequest) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		account, err := auth.Signup(ctx, req)
		return authDoneMsg{account: account, err: err}
	}
}
