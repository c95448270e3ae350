package logx

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	reset   = "\x1b[0m"
	bold    = "\x1b[1m"
	gray    = "\x1b[90m"
	cyan    = "\x1b[36m"
	blue    = "\x1b[34m"
	yellow  = "\x1b[33m"
	green   = "\x1b[32m"
	red     = "\x1b[31m"
)

var enableColor = true

func init() {
	// Disable color if NO_COLOR is set or stdout is not a terminal
	if os.Getenv("NO_COLOR") != "" {
		enableColor = false
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		enableColor = false
	}
}

// C returns a color-coded string (or plain string if color disabled)
func C(color, s string) string {
	if !enableColor {
		return s
	}
	return color + s + reset
}

// Cf returns a color-coded formatted string
func Cf(color, format string, args ...any) string {
	return C(color, fmt.Sprintf(format, args...))
}

// Channel returns a consistently-padded colored channel tag.
// Pass 4-char channel names: "RUN ", "EXP ", "GEN ", "WARN".
func Channel(ch string) string {
	color := map[string]string{
		"RUN ": cyan,
		"EXP ": blue,
		"GEN ": green,
		"WARN": yellow,
	}[ch]
	return C(color, fmt.Sprintf("[%-4s]", ch))
}

// TS returns a gray UTC timestamp for the current time
func TS() string {
	return C(gray, time.Now().UTC().Format("15:04:05Z"))
}

// Success returns a green message (for ✓, PASS, etc.)
func Success(s string) string {
	return C(green, s)
}

// Warn returns a yellow message
func Warn(s string) string {
	return C(yellow, s)
}

// Error returns a red message
func Error(s string) string {
	return C(red, s)
}

// Bold returns a bold message
func Bold(s string) string {
	return C(bold, s)
}

// Gray returns a dimmed message
func Gray(s string) string {
	return C(gray, s)
}

// Value color-codes an estimate by its relative error against the target:
// green within 0.5%, yellow within 2%, red beyond.
func Value(estimate, target float64, format string) string {
	s := fmt.Sprintf(format, estimate)
	if target == 0 {
		return s
	}
	relErr := (estimate - target) / target
	if relErr < 0 {
		relErr = -relErr
	}
	switch {
	case relErr < 0.005:
		return C(green, s)
	case relErr < 0.02:
		return C(yellow, s)
	default:
		return C(red, s)
	}
}
