// Package platform wraps operating-system facilities the client needs
// outside the terminal, currently the system clipboard.
package platform

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
	"github.com/klaus-0-0/vault/internal/logger"
)

// ErrNothingToCopy is returned by Copy for an empty value.
var ErrNothingToCopy = errors.New("nothing to copy")

// Clipboard copies secrets to the system clipboard and wipes them after a
// timeout. A wipe only happens while the clipboard still holds the copied
// secret, so anything the user copied in the meantime survives.
type Clipboard struct {
	mu     sync.Mutex
	ttl    time.Duration
	timer  *time.Timer
	secret string

	read  func() (string, error)
	write func(string) error

	logger *logger.Logger
}

// NewClipboard returns a Clipboard over the system clipboard. A zero ttl
// disables the automatic wipe.
func NewClipboard(ttl time.Duration, logger *logger.Logger) *Clipboard {
	return newClipboard(ttl, clipboard.ReadAll, clipboard.WriteAll, logger)
}

func newClipboard(ttl time.Duration, read func() (string, error), write func(string) error, logger *logger.Logger) *Clipboard {
	return &Clipboard{
		ttl:    ttl,
		read:   read,
		write:  write,
		logger: logger,
	}
}

// TTL returns how long a copied secret stays on the clipboard.
func (c *Clipboard) TTL() time.Duration {
	return c.ttl
}

// Copy puts value on the clipboard and schedules its wipe, replacing any
// wipe scheduled by an earlier Copy.
func (c *Clipboard) Copy(value string) error {
	if value == "" {
		return ErrNothingToCopy
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.write(value); err != nil {
		return fmt.Errorf("clipboard write: %w", err)
	}

	c.stopTimerLocked()
	c.secret = value
	if c.ttl > 0 {
		c.timer = time.AfterFunc(c.ttl, c.Clear)
	}

	return nil
}

// Clear wipes the clipboard now if it still holds the last copied secret.
// It is called on lock and by the wipe timer.
func (c *Clipboard) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()
	if c.secret == "" {
		return
	}
	secret := c.secret
	c.secret = ""

	current, err := c.read()
	if err != nil {
		c.logger.Warn().Err(err).Msg("clipboard read failed, not clearing")
		return
	}
	if current != secret {
		return
	}

	if err = c.write(""); err != nil {
		c.logger.Warn().Err(err).Msg("clipboard clear failed")
		return
	}
	c.logger.Debug().Msg("clipboard cleared")
}

func (c *Clipboard) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
