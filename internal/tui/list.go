package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/models"
)

const listTitleWidth = 32

// ListModel shows the decrypted items, filtered by the search query, and a
// banner when some records could not be decrypted.
type ListModel struct {
	ctx     context.Context
	session Session

	search    textinput.Model
	searching bool

	items   []models.DecryptedItem
	failed  int
	idx     int
	loading bool
	status  string
	errMsg  string
}

func NewListModel(ctx context.Context, session Session) *ListModel {
	search := newInput("search", 128, false)

	return &ListModel{
		ctx:     ctx,
		session: session,
		search:  search,
	}
}

// Init reloads the view from the session cache.
func (m *ListModel) Init() tea.Cmd {
	m.status = ""
	m.errMsg = ""
	m.reload()
	return nil
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listStatusMsg:
		m.status = msg.status
		m.errMsg = humanizeError(msg.err)
		m.reload()
		return m, nil

	case itemsLoadedMsg:
		m.loading = false
		m.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			m.status = fmt.Sprintf("Loaded %d item(s)", len(msg.result.Items))
		}
		m.reload()
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.search.Reset()
		m.stopSearch()
		return m, nil
	case key.Matches(msg, keys.enter):
		m.stopSearch()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.idx = 0
	m.reload()
	return m, cmd
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		return m, m.search.Focus()
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.Reset()
			m.reload()
		}
	case key.Matches(msg, keys.enter):
		if item, ok := m.current(); ok {
			return m, navigate(pageDetail, showItemMsg{id: item.ID})
		}
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageCreate, nil)
	case key.Matches(msg, keys.delete):
		if item, ok := m.current(); ok {
			return m, navigate(pageDelete, confirmDeleteMsg{id: item.ID, title: item.Item.Title})
		}
	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.status = ""
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.lock):
		return m, func() tea.Msg { return lockRequestMsg{} }
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if m.failed > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("! %d item(s) could not be decrypted", m.failed)))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0 && m.search.Value() != "":
		b.WriteString("Nothing matches the search\n")
	case len(m.items) == 0:
		b.WriteString("The vault is empty. Press n to add an item.\n")
	default:
		for i, item := range m.items {
			cursor := " "
			if i == m.idx {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %-*s  %s\n",
				cursor, listTitleWidth, fitText(item.Item.Title, listTitleWidth), fitText(item.Item.Username, 24)))
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(renderError(m.errMsg))

	hotKeys := "enter: open │ n: new │ d: delete │ /: search │ r: refresh │ L: lock │ q: quit"
	if m.searching {
		hotKeys = "enter: done │ esc: clear search"
	}

	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

// reload re-reads the filtered items and failure count from the session.
func (m *ListModel) reload() {
	m.items = m.session.Search(m.search.Value())
	m.failed = len(m.session.Failed())
	if m.idx >= len(m.items) {
		m.idx = max(len(m.items)-1, 0)
	}
}

func (m *ListModel) stopSearch() {
	m.searching = false
	m.search.Blur()
	m.idx = 0
	m.reload()
}

func (m *ListModel) current() (models.DecryptedItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DecryptedItem{}, false
	}
	return m.items[m.idx], true
}

func (m *ListModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		result, err := session.Refresh(ctx)
		return itemsLoadedMsg{result: result, err: err}
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
