package clip

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/VincentGefflaut/ShortChat/platform"
)

// CaptureResult carries the captured selection. OK is false when nothing was
// selected or the capture itself failed; the two cases differ only in logs.
type CaptureResult struct {
	Text string
	OK   bool
}

// Capturer obtains the text selected in the foreground application.
type Capturer struct {
	mediator  *Mediator
	clipboard platform.Clipboard
	keys      platform.Keys
}

// NewCapturer creates a selection capturer
func NewCapturer(mediator *Mediator, clipboard platform.Clipboard, keys platform.Keys) *Capturer {
	return &Capturer{
		mediator:  mediator,
		clipboard: clipboard,
		keys:      keys,
	}
}

// Capture seeds the clipboard with an empty sentinel, injects a copy
// keypress, and reads back whatever the foreground application copied. The
// prior clipboard content is restored by the mediator on every path. A read
// that is empty or whitespace-only after trimming means nothing was selected.
func (c *Capturer) Capture() CaptureResult {
	var text string

	err := c.mediator.WithTransient("", func() error {
		if err := c.keys.Copy(); err != nil {
			return fmt.Errorf("copy injection failed: %w", err)
		}
		c.mediator.Settle()

		read, err := c.clipboard.Get()
		if err != nil {
			return fmt.Errorf("clipboard read failed: %w", err)
		}
		text = strings.TrimSpace(read)
		return nil
	})
	if err != nil {
		slog.Error("Selection capture failed", "error", err)
		return CaptureResult{}
	}

	if text == "" {
		return CaptureResult{}
	}
	return CaptureResult{Text: text, OK: true}
}
