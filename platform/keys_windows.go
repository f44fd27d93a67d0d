//go:build windows

package platform

import (
	"fmt"
	"time"
	"unsafe"
)

var (
	sendInput      = user32.NewProc("SendInput")
	mapVirtualKeyW = user32.NewProc("MapVirtualKeyW")
)

const (
	inputKeyboard  = 1
	keyeventfKeyup = 0x0002
	mapvkVkToVsc   = 0
	vkControl      = 0x11
	vkC            = 0x43
	vkV            = 0x56
)

type keyboardInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

type input struct {
	inputType uint32
	ki        keyboardInput
	padding   [8]byte // Padding to match C struct size
}

// winKeys injects key combinations via SendInput.
type winKeys struct{}

func newKeys() Keys {
	return &winKeys{}
}

// Copy simulates Ctrl+C
func (k *winKeys) Copy() error {
	return k.sendCombo(vkControl, vkC)
}

// Paste simulates Ctrl+V
func (k *winKeys) Paste() error {
	return k.sendCombo(vkControl, vkV)
}

// sendCombo presses modifier+key and releases in reverse order, using scan
// codes for better compatibility with elevated applications.
func (k *winKeys) sendCombo(modifier, key uint16) error {
	modScan, _, _ := mapVirtualKeyW.Call(uintptr(modifier), mapvkVkToVsc)
	keyScan, _, _ := mapVirtualKeyW.Call(uintptr(key), mapvkVkToVsc)

	inputs := []input{
		keyEvent(modifier, uint16(modScan), 0),
		keyEvent(key, uint16(keyScan), 0),
		keyEvent(key, uint16(keyScan), keyeventfKeyup),
		keyEvent(modifier, uint16(modScan), keyeventfKeyup),
	}

	// Send all inputs at once for better atomicity
	ret, _, err := sendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if ret == 0 {
		return fmt.Errorf("SendInput failed: %w", err)
	}

	// Small delay to ensure input is processed
	time.Sleep(20 * time.Millisecond)

	return nil
}

func keyEvent(vk, scan uint16, flags uint32) input {
	return input{
		inputType: inputKeyboard,
		ki: keyboardInput{
			wVk:     vk,
			wScan:   scan,
			dwFlags: flags,
		},
	}
}
