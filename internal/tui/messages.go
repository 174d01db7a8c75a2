package tui

import (
	"github.com/klaus-0-0/vault/models"
)

// NavigateTo switches the active page. Payload, if set, is delivered to the
// new page right after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Page names.
const (
	pageMenu   = "menu"
	pageLogin  = "login"
	pageSignup = "signup"
	pageUnlock = "unlock"
	pageList   = "list"
	pageDetail = "detail"
	pageCreate = "create"
	pageDelete = "delete"
)

// authDoneMsg ends a login or signup round trip.
type authDoneMsg struct {
	account models.Account
	err     error
}

// unlockPromptMsg tells the unlock page which account to unlock and why.
type unlockPromptMsg struct {
	account models.Account
	status  string
}

// unlockDoneMsg ends an Unlock round trip.
type unlockDoneMsg struct {
	result models.LoadResult
	err    error
}

// listStatusMsg is shown once on the list page.
type listStatusMsg struct {
	status string
	err    error
}

// itemsLoadedMsg ends a Refresh round trip.
type itemsLoadedMsg struct {
	result models.LoadResult
	err    error
}

// showItemMsg opens the detail page on item id.
type showItemMsg struct {
	id string
}

// confirmDeleteMsg opens the delete confirmation for an item.
type confirmDeleteMsg struct {
	id    string
	title string
}

type itemSavedMsg struct {
	id  string
	err error
}

type itemDeletedMsg struct {
	err error
}

// lockRequestMsg asks the root model to lock the vault now.
type lockRequestMsg struct{}

// VaultLockedMsg is sent from outside the program when the auto-lock worker
// locked the session.
type VaultLockedMsg struct{}
