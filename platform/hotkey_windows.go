//go:build windows

package platform

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	setWindowsHookEx    = user32.NewProc("SetWindowsHookExW")
	callNextHookEx      = user32.NewProc("CallNextHookEx")
	unhookWindowsHookEx = user32.NewProc("UnhookWindowsHookEx")
	peekMessage         = user32.NewProc("PeekMessageW")
)

const (
	whKeyboardLL = 13
	wmKeydown    = 0x0100
	wmKeyup      = 0x0101
	wmSyskeydown = 0x0104
	wmSyskeyup   = 0x0105
	pmRemove     = 0x0001
)

type kbdllhookstruct struct {
	vkCode      uint32
	scanCode    uint32
	flags       uint32
	time        uint32
	dwExtraInfo uintptr
}

type msg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      struct{ x, y int32 }
}

// winHotkey watches a set of named keys through a low-level keyboard hook
// and emits the key's identifier on each press.
type winHotkey struct {
	mu     sync.Mutex
	names  map[uint32]string // vk code → hotkey identifier
	held   map[uint32]bool   // suppresses auto-repeat until keyup
	events chan string
	hook   uintptr
	done   chan struct{}
}

func newHotkey() Hotkey {
	return &winHotkey{}
}

// Listen starts listening for the named keys
func (h *winHotkey) Listen(ctx context.Context, names []string) (<-chan string, error) {
	byVk := make(map[uint32]string, len(names))
	for _, name := range names {
		vk, err := vkCode(name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve hotkey %q: %w", name, err)
		}
		byVk[uint32(vk)] = name
	}

	h.mu.Lock()
	h.names = byVk
	h.held = make(map[uint32]bool)
	h.events = make(chan string, 10)
	h.done = make(chan struct{})
	h.mu.Unlock()

	// Start hook in a goroutine
	errCh := make(chan error, 1)
	go h.runHook(errCh)

	// Wait for hook to be installed or error
	select {
	case err := <-errCh:
		if err != nil {
			return nil, err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Monitor context cancellation
	go func() {
		<-ctx.Done()
		close(h.done)
		if h.hook != 0 {
			unhookWindowsHookEx.Call(h.hook)
		}
	}()

	return h.events, nil
}

func (h *winHotkey) runHook(errCh chan<- error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	hookProc := func(nCode int32, wParam uintptr, lParam uintptr) uintptr {
		if nCode >= 0 {
			kbInfo := (*kbdllhookstruct)(unsafe.Pointer(lParam))
			h.handleKeyEvent(wParam, kbInfo)
		}
		r, _, _ := callNextHookEx.Call(0, uintptr(nCode), wParam, lParam)
		return r
	}

	hook, _, err := setWindowsHookEx.Call(
		whKeyboardLL,
		windows.NewCallback(hookProc),
		0,
		0,
	)
	if hook == 0 {
		errCh <- fmt.Errorf("SetWindowsHookEx failed: %w", err)
		return
	}

	h.mu.Lock()
	h.hook = hook
	h.mu.Unlock()

	errCh <- nil

	// Message loop keeps the hook alive on this thread
	var m msg
	for {
		select {
		case <-h.done:
			return
		default:
			r, _, _ := peekMessage.Call(
				uintptr(unsafe.Pointer(&m)),
				0,
				0,
				0,
				pmRemove,
			)
			if r != 0 {
				continue
			}
			runtime.Gosched()
		}
	}
}

func (h *winHotkey) handleKeyEvent(wParam uintptr, kbInfo *kbdllhookstruct) {
	h.mu.Lock()
	name, watched := h.names[kbInfo.vkCode]
	if !watched {
		h.mu.Unlock()
		return
	}

	switch wParam {
	case wmKeydown, wmSyskeydown:
		if h.held[kbInfo.vkCode] {
			h.mu.Unlock()
			return
		}
		h.held[kbInfo.vkCode] = true
		events := h.events
		h.mu.Unlock()
		select {
		case events <- name:
		default:
		}
	case wmKeyup, wmSyskeyup:
		delete(h.held, kbInfo.vkCode)
		h.mu.Unlock()
	default:
		h.mu.Unlock()
	}
}

// vkCode returns the Windows virtual key code for a key name
func vkCode(key string) (int, error) {
	codes := map[string]int{
		"a": 0x41, "b": 0x42, "c": 0x43, "d": 0x44, "e": 0x45,
		"f": 0x46, "g": 0x47, "h": 0x48, "i": 0x49, "j": 0x4A,
		"k": 0x4B, "l": 0x4C, "m": 0x4D, "n": 0x4E, "o": 0x4F,
		"p": 0x50, "q": 0x51, "r": 0x52, "s": 0x53, "t": 0x54,
		"u": 0x55, "v": 0x56, "w": 0x57, "x": 0x58, "y": 0x59, "z": 0x5A,
		"0": 0x30, "1": 0x31, "2": 0x32, "3": 0x33, "4": 0x34,
		"5": 0x35, "6": 0x36, "7": 0x37, "8": 0x38, "9": 0x39,
		"f1": 0x70, "f2": 0x71, "f3": 0x72, "f4": 0x73,
		"f5": 0x74, "f6": 0x75, "f7": 0x76, "f8": 0x77,
		"f9": 0x78, "f10": 0x79, "f11": 0x7A, "f12": 0x7B,
		"space": 0x20, "enter": 0x0D, "esc": 0x1B,
		"tab": 0x09, "backspace": 0x08,
	}

	if code, ok := codes[key]; ok {
		return code, nil
	}

	return 0, fmt.Errorf("unknown key: %s", key)
}
