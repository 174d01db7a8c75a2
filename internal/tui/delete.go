package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DeleteModel asks for confirmation before an item is deleted.
type DeleteModel struct {
	ctx     context.Context
	session Session

	id         string
	title      string
	submitting bool
	errMsg     string
}

func NewDeleteModel(ctx context.Context, session Session) *DeleteModel {
	return &DeleteModel{ctx: ctx, session: session}
}

func (m *DeleteModel) Init() tea.Cmd {
	m.submitting = false
	m.errMsg = ""
	return nil
}

func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case confirmDeleteMsg:
		m.id = msg.id
		m.title = msg.title
		return m, nil

	case itemDeletedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		return m, navigate(pageList, listStatusMsg{status: "Deleted \"" + m.title + "\""})

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.yes):
			m.submitting = true
			m.errMsg = ""
			return m, m.cmdDelete()
		case key.Matches(msg, keys.no):
			return m, navigate(pageList, nil)
		}
	}

	return m, nil
}

func (m *DeleteModel) View() string {
	content := "Delete \"" + m.title + "\"?\n\ny: yes    n: no"
	if m.submitting {
		content += "\n\nDeleting..."
	}

	return renderPage("DELETE ITEM", overlayBoxStyle.Render(content)+renderError(m.errMsg), "y: delete │ n / esc: cancel")
}

func (m *DeleteModel) cmdDelete() tea.Cmd {
	ctx := m.ctx
	session := m.session
	id := m.id

	return func() tea.Msg {
		return itemDeletedMsg{err: session.DeleteItem(ctx, id)}
	}
}
