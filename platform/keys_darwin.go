//go:build darwin

package platform

import (
	"fmt"
	"os/exec"
)

// osaKeys injects cmd+c/cmd+v through System Events, which requires the
// accessibility permission grant in System Settings.
type osaKeys struct{}

func newKeys() Keys {
	return &osaKeys{}
}

func (k *osaKeys) Copy() error {
	return k.keystroke("c")
}

func (k *osaKeys) Paste() error {
	return k.keystroke("v")
}

func (k *osaKeys) keystroke(key string) error {
	script := fmt.Sprintf(`tell application "System Events" to keystroke %q using command down`, key)
	if err := exec.Command("osascript", "-e", script).Run(); err != nil {
		return fmt.Errorf("osascript keystroke %s failed: %w", key, err)
	}
	return nil
}
