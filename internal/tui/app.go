package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/klaus-0-0/vault/internal/service"
	"github.com/klaus-0-0/vault/models"
)

// vaultPages need an unlocked session; they are left when the vault locks.
var vaultPages = map[string]bool{
	pageList:   true,
	pageDetail: true,
	pageCreate: true,
	pageDelete: true,
}

// RootModel is the TUI router:
//  1. keeps the active page
//  2. handles global ctrl+c and the build info window
//  3. handles NavigateTo messages
//  4. finishes login, unlock and lock transitions
//  5. delegates everything else to the active page
type RootModel struct {
	pages       map[string]tea.Model
	current     tea.Model
	currentName string

	session   Session
	clipboard Clipboard
	activity  ActivityTracker

	account   models.Account
	buildInfo models.AppBuildInfo

	showBuildInfo bool
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, session Session, clipboard Clipboard, activity ActivityTracker, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:       pages,
		current:     pages[startPage],
		currentName: startPage,
		session:     session,
		clipboard:   clipboard,
		activity:    activity,
		buildInfo:   buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if r.activity != nil {
			r.activity.Touch()
		}

		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			r.lock()
			return r, tea.Quit
		case key.Matches(keyMsg, keys.version) && r.currentName == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch m := msg.(type) {
	case NavigateTo:
		return r.navigate(m.Page, m.Payload)

	case authDoneMsg:
		if m.err == nil {
			r.account = m.account
			return r.navigate(pageUnlock, unlockPromptMsg{account: m.account})
		}

	case unlockDoneMsg:
		if r.session.State() == service.StateUnlocked {
			return r.navigate(pageList, unlockStatus(m))
		}

	case lockRequestMsg:
		r.lock()
		return r.navigate(pageUnlock, unlockPromptMsg{account: r.account, status: "Vault locked"})

	case VaultLockedMsg:
		if r.clipboard != nil {
			r.clipboard.Clear()
		}
		if vaultPages[r.currentName] {
			return r.navigate(pageUnlock, unlockPromptMsg{account: r.account, status: "Vault locked after inactivity"})
		}
		return r, nil
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentName] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("VAULT", "", "")
	}
	return r.current.View()
}

// Quit reports whether the user asked to leave.
func (r RootModel) Quit() bool {
	return r.quitByUser
}

// Page returns the name of the active page.
func (r RootModel) Page() string {
	return r.currentName
}

func (r RootModel) navigate(page string, payload any) (tea.Model, tea.Cmd) {
	next, exists := r.pages[page]
	if !exists {
		return r, nil
	}

	r.showBuildInfo = false
	r.current = next
	r.currentName = page

	cmds := []tea.Cmd{r.current.Init()}
	if payload != nil {
		cmds = append(cmds, func() tea.Msg { return payload })
	}
	return r, tea.Batch(cmds...)
}

// lock drops the key and the decrypted items and wipes a copied secret.
func (r RootModel) lock() {
	if r.session != nil {
		r.session.Lock()
	}
	if r.clipboard != nil {
		r.clipboard.Clear()
	}
}

// unlockStatus turns the outcome of an unlock into the list banner.
func unlockStatus(m unlockDoneMsg) listStatusMsg {
	switch {
	case m.err != nil:
		return listStatusMsg{err: m.err}
	case m.result.AllFailed():
		return listStatusMsg{status: "No item could be decrypted. Wrong master password? Press L and try again."}
	default:
		return listStatusMsg{status: "Vault unlocked"}
	}
}
