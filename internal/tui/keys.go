package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	lock       key.Binding
	search     key.Binding
	refresh    key.Binding
	newItem    key.Binding
	delete     key.Binding
	reveal     key.Binding
	copy       key.Binding
	copyUser   key.Binding
	generate   key.Binding
	passphrase key.Binding
	yes        key.Binding
	no         key.Binding
	version    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	lock:       key.NewBinding(key.WithKeys("L")),
	search:     key.NewBinding(key.WithKeys("/")),
	refresh:    key.NewBinding(key.WithKeys("r")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	delete:     key.NewBinding(key.WithKeys("d")),
	reveal:     key.NewBinding(key.WithKeys("p")),
	copy:       key.NewBinding(key.WithKeys("c")),
	copyUser:   key.NewBinding(key.WithKeys("u")),
	generate:   key.NewBinding(key.WithKeys("ctrl+g")),
	passphrase: key.NewBinding(key.WithKeys("ctrl+p")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
	version:    key.NewBinding(key.WithKeys("v")),
}
