package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/VincentGefflaut/ShortChat/clip"
	"github.com/VincentGefflaut/ShortChat/completion"
	"github.com/VincentGefflaut/ShortChat/config"
	"github.com/VincentGefflaut/ShortChat/storage"
)

// completionErrorMessage is pasted in place of the model's answer when the
// gateway fails, so a successful capture always produces a visible outcome.
const completionErrorMessage = "Error: Failed to get AI response. Check logs for details."

type dispatchState int

const (
	stateIdle dispatchState = iota
	stateCapturing
	stateRequesting
	stateInjecting
)

func (s dispatchState) String() string {
	switch s {
	case stateCapturing:
		return "capturing"
	case stateRequesting:
		return "requesting"
	case stateInjecting:
		return "injecting"
	default:
		return "idle"
	}
}

type capturer interface {
	Capture() clip.CaptureResult
}

type injector interface {
	Inject(text string) error
}

// Dispatcher serializes hotkey events onto one pipeline: capture the
// selection, request a completion, inject the result. One event is processed
// to completion before the next is read, so no two transient clipboard scopes
// are ever open at once.
type Dispatcher struct {
	table    *config.Table
	capturer capturer
	gateway  completion.Gateway
	injector injector
	db       *storage.DB // nil when history storage is unavailable
	model    string

	debounce     time.Duration
	state        dispatchState
	lastDispatch time.Time
	now          func() time.Time
}

// NewDispatcher creates a dispatcher. db may be nil.
func NewDispatcher(table *config.Table, capt capturer, gw completion.Gateway, inj injector, db *storage.DB, model string, debounce time.Duration) *Dispatcher {
	return &Dispatcher{
		table:    table,
		capturer: capt,
		gateway:  gw,
		injector: inj,
		db:       db,
		model:    model,
		debounce: debounce,
		now:      time.Now,
	}
}

// Run processes hotkey events until ctx is cancelled
func (d *Dispatcher) Run(ctx context.Context, events <-chan string) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case hotkey := <-events:
			d.handle(ctx, hotkey)
		}
	}
}

// handle drives one event through the state machine and back to idle
func (d *Dispatcher) handle(ctx context.Context, hotkey string) {
	shortcut, ok := d.table.Lookup(hotkey)
	if !ok {
		slog.Debug("Ignoring unbound key", "hotkey", hotkey)
		return
	}

	start := d.now()
	if start.Sub(d.lastDispatch) < d.debounce {
		slog.Debug("Dropped within debounce window", "hotkey", hotkey)
		return
	}
	// The window is measured from dispatch start, not completion
	d.lastDispatch = start

	defer func() { d.state = stateIdle }()

	d.state = stateCapturing
	result := d.capturer.Capture()
	if !result.OK {
		slog.Warn("No text selected", "hotkey", hotkey)
		return
	}

	d.state = stateRequesting
	prompt := shortcut.Render(result.Text)
	slog.Info("Requesting completion", "hotkey", hotkey, "provider", d.gateway.Name(), "selection_chars", len(result.Text))

	requestStart := d.now()
	text, err := d.gateway.Complete(ctx, prompt)
	latency := d.now().Sub(requestStart)

	errorMessage := ""
	if err != nil {
		slog.Error("Completion request failed", "hotkey", hotkey, "error", err)
		errorMessage = err.Error()
		text = completionErrorMessage
	} else {
		slog.Info("Received completion", "hotkey", hotkey, "latency", latency, "response_chars", len(text))
	}

	d.state = stateInjecting
	if injErr := d.injector.Inject(text); injErr != nil {
		slog.Error("Failed to inject response", "hotkey", hotkey, "error", injErr)
	}

	d.record(hotkey, result.Text, text, latency, err == nil, errorMessage)
}

// record persists the dispatch outcome; storage failures never touch the pipeline
func (d *Dispatcher) record(hotkey, selection, response string, latency time.Duration, success bool, errorMessage string) {
	if d.db == nil {
		return
	}

	dispatch := &storage.Dispatch{
		Hotkey:           hotkey,
		Provider:         d.gateway.Name(),
		Model:            d.model,
		SelectionChars:   len(selection),
		ResponseChars:    len(response),
		RequestLatencyMs: latency.Milliseconds(),
		Success:          success,
		ErrorMessage:     errorMessage,
	}
	if err := d.db.SaveDispatch(dispatch); err != nil {
		slog.Warn("Failed to record dispatch", "error", err)
	}
}
