// Package workers runs the client's background jobs. It defines the Worker
// interface and a Workers aggregate that starts every worker with a shared
// context and waits for them on Stop.
package workers

import (
	"context"

	"github.com/klaus-0-0/vault/internal/service"
)

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Session is the part of the vault session the auto-lock worker drives.
type Session interface {
	State() service.SessionState
	Lock()
}
