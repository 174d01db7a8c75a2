package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/crypto"
	"github.com/klaus-0-0/vault/models"
)

const (
	fieldTitle = iota
	fieldUsername
	fieldPassword
	fieldURL
	fieldNotes
)

// Passphrase shape produced by ctrl+p.
const (
	passphraseWords     = 6
	passphraseSeparator = "-"
)

var itemFieldLabels = []string{"Title", "Username", "Password", "URL", "Notes"}

// CreateModel is the new-item form. ctrl+g fills the password with a random
// password, ctrl+p with a diceware passphrase.
type CreateModel struct {
	ctx       context.Context
	session   Session
	generator crypto.PasswordGenerator

	form       form
	submitting bool
	errMsg     string
}

func NewCreateModel(ctx context.Context, session Session, generator crypto.PasswordGenerator) *CreateModel {
	return &CreateModel{
		ctx:       ctx,
		session:   session,
		generator: generator,
		form: newForm(
			newInput("e.g. Bank", 128, false),
			newInput("login on the site", 256, false),
			newInput("password", 1024, true),
			newInput("https://example.com", 2048, false),
			newInput("optional", 4096, false),
		),
	}
}

func (m *CreateModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	m.form.reset()
	return nil
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(itemSavedMsg); ok {
		m.submitting = false
		switch {
		case result.err == nil:
			return m, navigate(pageList, listStatusMsg{status: "Item saved"})
		case result.id != "":
			// stored, but the reload failed
			return m, navigate(pageList, listStatusMsg{status: "Item saved", err: result.err})
		default:
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.form.update(msg)
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageList, nil)
	case key.Matches(keyMsg, keys.tab):
		m.form.focusNext()
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.form.focusPrev()
		return m, nil
	case key.Matches(keyMsg, keys.generate):
		m.fillPassword(m.generator.Generate(models.DefaultGeneratorPolicy()))
		return m, nil
	case key.Matches(keyMsg, keys.passphrase):
		m.fillPassword(m.generator.GeneratePassphrase(passphraseWords, passphraseSeparator))
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.errMsg = ""
		m.submitting = true
		return m, m.cmdSave(m.item())
	}

	return m, m.form.update(msg)
}

func (m *CreateModel) View() string {
	var b strings.Builder
	for i, label := range itemFieldLabels {
		b.WriteString(label)
		b.WriteString(strings.Repeat(" ", 10-len(label)))
		b.WriteString("[")
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage("NEW ITEM", strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+g: generate password │ ctrl+p: passphrase │ enter: save │ esc: cancel")
}

func (m *CreateModel) item() models.VaultItem {
	return models.VaultItem{
		Title:    strings.TrimSpace(m.form.value(fieldTitle)),
		Username: strings.TrimSpace(m.form.value(fieldUsername)),
		Password: m.form.value(fieldPassword),
		URL:      strings.TrimSpace(m.form.value(fieldURL)),
		Notes:    m.form.value(fieldNotes),
	}
}

func (m *CreateModel) fillPassword(password string, err error) {
	if err != nil {
		m.errMsg = humanizeError(err)
		return
	}
	m.errMsg = ""
	m.form.setValue(fieldPassword, password)
}

func (m *CreateModel) cmdSave(item models.VaultItem) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		id, err := session.CreateItem(ctx, item)
		return itemSavedMsg{id: id, err: err}
	}
}
