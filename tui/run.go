package tui

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type TUIConfig struct {
	Title string
	Seed  uint64
}

var (
	mu      sync.RWMutex
	program *tea.Program
)

// Start initializes and starts the TUI.
// Returns an error if the TUI cannot run (non-TTY, TERM=dumb, etc.); the
// caller falls back to plain console progress lines.
func Start(ctx context.Context, cfg TUIConfig) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("TUI disabled (not a TTY)")
	}
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("TUI disabled (TERM=dumb)")
	}

	m := NewModel()
	m.snapshot.Title = cfg.Title
	m.snapshot.Seed = cfg.Seed

	p := tea.NewProgram(m, tea.WithContext(ctx))

	mu.Lock()
	program = p
	mu.Unlock()

	// Run in background until the context is cancelled or the user quits
	go func() {
		_, _ = p.Run()
	}()

	return nil
}

// Stop gracefully shuts down the TUI
func Stop() {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p == nil {
		return
	}
	p.Send(MsgShutdown{})
	p.Wait()

	mu.Lock()
	program = nil
	mu.Unlock()
}

// Publish sends a state snapshot to the TUI; no-op when the TUI is off.
func Publish(s StateSnapshot) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p == nil {
		return
	}
	p.Send(MsgStateSnapshot(s))
}

// PublishEvent appends one line to the TUI event log; no-op when off.
func PublishEvent(severity, format string, args ...any) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p == nil {
		return
	}
	p.Send(MsgEvent(Event{
		Timestamp: time.Now(),
		Severity:  severity,
		Message:   fmt.Sprintf(format, args...),
	}))
}

// Running reports whether the TUI owns the terminal.
func Running() bool {
	mu.RLock()
	defer mu.RUnlock()
	return program != nil
}
