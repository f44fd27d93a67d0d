package clip

import (
	"fmt"

	"github.com/VincentGefflaut/ShortChat/platform"
)

// Injector writes result text at the cursor, replacing the selection.
type Injector struct {
	mediator *Mediator
	keys     platform.Keys
}

// NewInjector creates a response injector
func NewInjector(mediator *Mediator, keys platform.Keys) *Injector {
	return &Injector{
		mediator: mediator,
		keys:     keys,
	}
}

// Inject places text on the clipboard and injects a paste keypress. The prior
// clipboard content is restored by the mediator even when the paste fails.
// No retry: a failed injection is the caller's to log.
func (i *Injector) Inject(text string) error {
	return i.mediator.WithTransient(text, func() error {
		if err := i.keys.Paste(); err != nil {
			return fmt.Errorf("paste injection failed: %w", err)
		}
		// Let the paste land before the clipboard is restored
		i.mediator.Settle()
		return nil
	})
}
