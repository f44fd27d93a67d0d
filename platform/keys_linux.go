//go:build linux

package platform

import (
	"fmt"
	"os/exec"
)

// xdoKeys synthesizes ctrl+c/ctrl+v keypresses via xdotool.
type xdoKeys struct{}

func newKeys() Keys {
	return &xdoKeys{}
}

func (k *xdoKeys) Copy() error {
	return k.key("ctrl+c")
}

func (k *xdoKeys) Paste() error {
	return k.key("ctrl+v")
}

func (k *xdoKeys) key(combo string) error {
	if err := exec.Command("xdotool", "key", "--clearmodifiers", combo).Run(); err != nil {
		return fmt.Errorf("xdotool key %s failed: %w", combo, err)
	}
	return nil
}
