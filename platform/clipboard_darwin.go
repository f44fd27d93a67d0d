//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

// pbClipboard shells out to the pbpaste/pbcopy pasteboard tools.
type pbClipboard struct{}

func newClipboard() Clipboard {
	return &pbClipboard{}
}

func (c *pbClipboard) Get() (string, error) {
	out, err := exec.Command("pbpaste").Output()
	if err != nil {
		return "", fmt.Errorf("pbpaste failed: %w", err)
	}
	return string(out), nil
}

func (c *pbClipboard) Set(text string) error {
	cmd := exec.Command("pbcopy")
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pbcopy failed: %w", err)
	}
	return nil
}
