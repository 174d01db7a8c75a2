package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/models"
)

const maskedPassword = "••••••••"

// DetailModel shows one item. The password stays masked until revealed and
// is masked again whenever the page is reopened.
type DetailModel struct {
	session   Session
	clipboard Clipboard

	id       string
	item     models.DecryptedItem
	found    bool
	revealed bool
	status   string
	errMsg   string
}

func NewDetailModel(session Session, clipboard Clipboard) *DetailModel {
	return &DetailModel{
		session:   session,
		clipboard: clipboard,
	}
}

func (m *DetailModel) Init() tea.Cmd {
	m.revealed = false
	m.status = ""
	m.errMsg = ""
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case showItemMsg:
		m.id = msg.id
		m.item, m.found = m.session.Item(msg.id)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageList, nil)
		case key.Matches(msg, keys.reveal):
			m.revealed = !m.revealed
		case key.Matches(msg, keys.copy):
			m.copy("Password", m.item.Item.Password)
		case key.Matches(msg, keys.copyUser):
			m.copy("Username", m.item.Item.Username)
		case key.Matches(msg, keys.delete):
			if m.found {
				return m, navigate(pageDelete, confirmDeleteMsg{id: m.id, title: m.item.Item.Title})
			}
		case key.Matches(msg, keys.lock):
			return m, func() tea.Msg { return lockRequestMsg{} }
		}
	}

	return m, nil
}

func (m *DetailModel) View() string {
	if !m.found {
		return renderPage("ITEM", "Item not found", "esc: back")
	}

	password := maskedPassword
	if m.revealed {
		password = m.item.Item.Password
	}

	var b strings.Builder
	rows := [][2]string{
		{"Title", m.item.Item.Title},
		{"Username", m.item.Item.Username},
		{"Password", password},
		{"URL", valueOrDash(m.item.Item.URL)},
		{"Notes", valueOrDash(m.item.Item.Notes)},
		{"Updated", m.item.UpdatedAt.Local().Format(time.DateTime)},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-9s │ %s\n", row[0], row[1]))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(renderError(m.errMsg))

	return renderPage(strings.ToUpper(m.item.Item.Title), strings.TrimRight(b.String(), "\n"),
		"p: reveal │ c: copy password │ u: copy username │ d: delete │ L: lock │ esc: back")
}

func (m *DetailModel) copy(what, value string) {
	m.status = ""
	m.errMsg = ""

	if m.clipboard == nil {
		m.errMsg = "Clipboard is not available"
		return
	}
	if err := m.clipboard.Copy(value); err != nil {
		m.errMsg = humanizeError(err)
		return
	}

	m.status = what + " copied"
	if ttl := m.clipboard.TTL(); ttl > 0 {
		m.status += fmt.Sprintf(", clears in %s", ttl)
	}
}
