package platform

import (
	"context"
)

// Hotkey provides global hotkey detection. Listen delivers the identifier of
// each pressed hotkey on the returned channel until ctx is cancelled.
type Hotkey interface {
	Listen(ctx context.Context, names []string) (<-chan string, error)
}

// Clipboard provides clipboard access
type Clipboard interface {
	Get() (string, error)
	Set(text string) error
}

// Keys simulates copy and paste key combinations in the foreground application
type Keys interface {
	Copy() error
	Paste() error
}

// NewHotkey creates the platform hotkey listener
func NewHotkey() Hotkey {
	return newHotkey()
}

// NewClipboard creates the platform clipboard
func NewClipboard() Clipboard {
	return newClipboard()
}

// NewKeys creates the platform key injector
func NewKeys() Keys {
	return newKeys()
}
