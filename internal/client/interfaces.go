// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

// Session is the part of the vault session App locks on exit.
type Session interface {
	Lock()
}

// Clipboard is wiped on exit.
type Clipboard interface {
	Clear()
}
