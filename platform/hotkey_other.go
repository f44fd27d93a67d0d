//go:build !windows

package platform

import (
	"context"

	hook "github.com/robotn/gohook"
)

// hookHotkey watches named keys through a gohook global keyboard listener.
type hookHotkey struct{}

func newHotkey() Hotkey {
	return &hookHotkey{}
}

// Listen registers each named key with the global hook and starts the event
// loop. The hook runs until ctx is cancelled; only one listener may be active
// per process.
func (h *hookHotkey) Listen(ctx context.Context, names []string) (<-chan string, error) {
	events := make(chan string, 10)

	for _, name := range names {
		name := name
		hook.Register(hook.KeyDown, []string{name}, func(e hook.Event) {
			select {
			case events <- name:
			default:
			}
		})
	}

	go func() {
		s := hook.Start()
		<-hook.Process(s)
	}()

	go func() {
		<-ctx.Done()
		hook.End()
	}()

	return events, nil
}
