package tui

import (
	"context"
	"reflect"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

// fakeSession is an in-memory Session.
type fakeSession struct {
	mu sync.Mutex

	state  service.SessionState
	items  []models.DecryptedItem
	failed []models.FailedItem

	unlockResult models.LoadResult
	unlockErr    error
	refreshErr   error
	createID     string
	createErr    error
	deleteErr    error

	unlockCalls  [][2]string
	created      []models.VaultItem
	deleted      []string
	refreshCalls int
	lockCalls    int
}

func (f *fakeSession) Unlock(_ context.Context, masterPassword, accountID string) (models.LoadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.unlockCalls = append(f.unlockCalls, [2]string{masterPassword, accountID})
	if f.unlockErr != nil {
		return models.LoadResult{}, f.unlockErr
	}
	f.state = service.StateUnlocked
	f.items = f.unlockResult.Items
	f.failed = f.unlockResult.Failed
	return f.unlockResult, nil
}

func (f *fakeSession) Refresh(context.Context) (models.LoadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.refreshCalls++
	if f.refreshErr != nil {
		return models.LoadResult{}, f.refreshErr
	}
	return models.LoadResult{Items: f.items, Failed: f.failed}, nil
}

func (f *fakeSession) CreateItem(_ context.Context, item models.VaultItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.created = append(f.created, item)
	if f.createErr == nil {
		f.items = append(f.items, models.DecryptedItem{ID: f.createID, Item: item})
	}
	return f.createID, f.createErr
}

func (f *fakeSession) DeleteItem(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deleted = append(f.deleted, id)
	return f.deleteErr
}

func (f *fakeSession) Lock() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.lockCalls++
	f.state = service.StateLocked
	f.items = nil
	f.failed = nil
}

func (f *fakeSession) State() service.SessionState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *fakeSession) Failed() []models.FailedItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed
}

func (f *fakeSession) Search(query string) []models.DecryptedItem {
	f.mu.Lock()
	defer f.mu.Unlock()

	var found []models.DecryptedItem
	for _, item := range f.items {
		if item.Item.Matches(query) {
			found = append(found, item)
		}
	}
	return found
}

func (f *fakeSession) Item(id string) (models.DecryptedItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.items {
		if item.ID == id {
			return item, true
		}
	}
	return models.DecryptedItem{}, false
}

type fakeClipboard struct {
	copied  []string
	clears  int
	copyErr error
	ttl     time.Duration
}

func (f *fakeClipboard) Copy(value string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	f.copied = append(f.copied, value)
	return nil
}

func (f *fakeClipboard) Clear() { f.clears++ }

func (f *fakeClipboard) TTL() time.Duration { return f.ttl }

type fakeActivity struct{ touches int }

func (f *fakeActivity) Touch() { f.touches++ }

func sampleItems() []models.DecryptedItem {
	return []models.DecryptedItem{
		{ID: "1", Item: models.VaultItem{Title: "Bank", Username: "alice", Password: "hunter2", URL: "bank.example"}},
		{ID: "2", Item: models.VaultItem{Title: "Mail", Username: "alice@example.com", Password: "s3cret"}},
	}
}

// keyPress builds the tea.KeyMsg for a key name or literal text.
func keyPress(s string) tea.KeyMsg {
	special := map[string]tea.KeyType{
		"enter":     tea.KeyEnter,
		"esc":       tea.KeyEsc,
		"tab":       tea.KeyTab,
		"shift+tab": tea.KeyShiftTab,
		"up":        tea.KeyUp,
		"down":      tea.KeyDown,
		"ctrl+c":    tea.KeyCtrlC,
		"ctrl+g":    tea.KeyCtrlG,
		"ctrl+p":    tea.KeyCtrlP,
	}
	if t, ok := special[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var tuiPkgPath = reflect.TypeOf(NavigateTo{}).PkgPath()

// collect runs cmd and returns the messages it yields. Commands that do not
// finish quickly, such as cursor blinking, are dropped.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// send delivers msg to m and keeps feeding the resulting package messages
// back until nothing is left. quit reports whether tea.Quit was returned.
func send(m tea.Model, msg tea.Msg) (model tea.Model, quit bool) {
	m, cmd := m.Update(msg)
	queue := collect(cmd)

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if _, ok := next.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		if reflect.TypeOf(next).PkgPath() != tuiPkgPath {
			continue
		}

		m, cmd = m.Update(next)
		queue = append(queue, collect(cmd)...)
	}

	return m, quit
}

// press sends each key in turn.
func press(m tea.Model, names ...string) tea.Model {
	for _, k := range names {
		m, _ = send(m, keyPress(k))
	}
	return m
}
