//go:build linux

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// xClipboard shells out to xclip for the X11 CLIPBOARD selection.
type xClipboard struct{}

func newClipboard() Clipboard {
	return &xClipboard{}
}

func (c *xClipboard) Get() (string, error) {
	out, err := exec.Command("xclip", "-selection", "clipboard", "-o").Output()
	if err != nil {
		// xclip exits non-zero when the selection is empty
		return "", nil
	}
	return string(out), nil
}

func (c *xClipboard) Set(text string) error {
	cmd := exec.Command("xclip", "-selection", "clipboard")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("xclip not available: %w", err)
	}
	return nil
}
