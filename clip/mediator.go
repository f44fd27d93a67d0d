// Package clip implements the clipboard side of the pipeline: a scoped
// transient-clipboard mediator plus the selection capturer and response
// injector built on top of it.
package clip

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/VincentGefflaut/ShortChat/platform"
)

// Mediator guards transient clipboard mutation. The clipboard is the one
// shared mutable resource outside the process; every mutation goes through
// WithTransient so its prior content is restored on every exit path.
type Mediator struct {
	clipboard platform.Clipboard
	settle    time.Duration
}

// NewMediator creates a mediator with the given settle delay, applied after
// clipboard writes to tolerate asynchronous clipboard propagation.
func NewMediator(clipboard platform.Clipboard, settle time.Duration) *Mediator {
	return &Mediator{
		clipboard: clipboard,
		settle:    settle,
	}
}

// WithTransient captures the current clipboard content, writes content, waits
// for the settle delay, runs action, and restores the captured content whether
// or not action fails. A restore failure is logged but never propagated, so it
// cannot mask action's error.
func (m *Mediator) WithTransient(content string, action func() error) error {
	original, err := m.clipboard.Get()
	if err != nil {
		slog.Warn("Failed to read clipboard before transient write, will restore empty", "error", err)
		original = ""
	}

	if err := m.clipboard.Set(content); err != nil {
		return fmt.Errorf("failed to set clipboard: %w", err)
	}

	defer func() {
		if err := m.clipboard.Set(original); err != nil {
			slog.Warn("Failed to restore clipboard", "error", err)
		}
	}()

	m.Settle()
	return action()
}

// Settle blocks for the configured settle delay. Actions issue it between a
// clipboard write or key injection and the OS operation that depends on it.
func (m *Mediator) Settle() {
	time.Sleep(m.settle)
}
