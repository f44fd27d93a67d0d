//go:build windows

package platform

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	user32           = windows.NewLazySystemDLL("user32.dll")
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	openClipboard    = user32.NewProc("OpenClipboard")
	closeClipboard   = user32.NewProc("CloseClipboard")
	emptyClipboard   = user32.NewProc("EmptyClipboard")
	getClipboardData = user32.NewProc("GetClipboardData")
	setClipboardData = user32.NewProc("SetClipboardData")
	globalAlloc      = kernel32.NewProc("GlobalAlloc")
	globalLock       = kernel32.NewProc("GlobalLock")
	globalUnlock     = kernel32.NewProc("GlobalUnlock")
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002

	clipboardOpenRetries = 10
	clipboardOpenBackoff = 10 * time.Millisecond
)

// winClipboard accesses the system clipboard through user32/kernel32.
type winClipboard struct{}

func newClipboard() Clipboard {
	return &winClipboard{}
}

// Get retrieves text from the clipboard. An empty clipboard or non-text
// content yields an empty string, not an error.
func (c *winClipboard) Get() (string, error) {
	var text string
	err := c.withOpen(func() error {
		h, _, callErr := getClipboardData.Call(cfUnicodeText)
		if h == 0 {
			if callErr != nil && callErr != syscall.Errno(0) {
				return fmt.Errorf("GetClipboardData failed: %w", callErr)
			}
			return nil
		}

		l, _, callErr := globalLock.Call(h)
		if l == 0 {
			return fmt.Errorf("GlobalLock failed: %w", callErr)
		}
		defer globalUnlock.Call(h)

		text = windows.UTF16PtrToString((*uint16)(unsafe.Pointer(l)))
		return nil
	})
	return text, err
}

// Set sets text to the clipboard
func (c *winClipboard) Set(text string) error {
	utf16, err := windows.UTF16FromString(text)
	if err != nil {
		return fmt.Errorf("UTF16 conversion failed: %w", err)
	}

	return c.withOpen(func() error {
		emptyClipboard.Call()

		size := len(utf16) * 2 // 2 bytes per UTF-16 code unit
		h, _, callErr := globalAlloc.Call(gmemMoveable, uintptr(size))
		if h == 0 {
			return fmt.Errorf("GlobalAlloc failed: %w", callErr)
		}

		l, _, callErr := globalLock.Call(h)
		if l == 0 {
			return fmt.Errorf("GlobalLock failed: %w", callErr)
		}
		dest := unsafe.Slice((*uint16)(unsafe.Pointer(l)), len(utf16))
		copy(dest, utf16)
		globalUnlock.Call(h)

		if r, _, callErr := setClipboardData.Call(cfUnicodeText, h); r == 0 {
			return fmt.Errorf("SetClipboardData failed: %w", callErr)
		}
		return nil
	})
}

// withOpen runs fn with the clipboard held open. Another process may hold the
// clipboard briefly, so opening retries with a short backoff.
func (c *winClipboard) withOpen(fn func() error) error {
	opened := false
	for i := 0; i < clipboardOpenRetries; i++ {
		if r, _, _ := openClipboard.Call(0); r != 0 {
			opened = true
			break
		}
		time.Sleep(clipboardOpenBackoff)
	}
	if !opened {
		return fmt.Errorf("failed to open clipboard after %d retries", clipboardOpenRetries)
	}
	defer closeClipboard.Call()

	return fn()
}
