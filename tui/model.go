package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StateSnapshot represents the complete run state at a point in time
type StateSnapshot struct {
	Title     string
	Seed      uint64
	StartTime time.Time

	Experiment string
	Generator  string

	DoneTrials  uint64
	TotalTrials uint64
	RatePerSec  float64
	ETA         time.Duration
}

// Event is one significant run event (experiment started, anomaly, ...)
type Event struct {
	Timestamp time.Time
	Severity  string // "info", "warning"
	Message   string
}

type (
	MsgStateSnapshot StateSnapshot
	MsgEvent         Event
	MsgShutdown      struct{}
	MsgTick          time.Time
)

type Model struct {
	snapshot StateSnapshot
	events   []Event // ring buffer, max 200

	width  int
	height int
	ready  bool

	progress progress.Model // NOT a pointer
	viewport viewport.Model // NOT a pointer
}

func NewModel() Model {
	return Model{
		snapshot: StateSnapshot{StartTime: time.Now()},
		events:   make([]Event, 0, 200),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		viewport: viewport.New(0, 8),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = max(4, msg.Height-12)
		m.ready = true

	case MsgStateSnapshot:
		// Keep the original start time; snapshots are deltas on top of it
		start := m.snapshot.StartTime
		m.snapshot = StateSnapshot(msg)
		if m.snapshot.StartTime.IsZero() {
			m.snapshot.StartTime = start
		}

	case MsgEvent:
		m.events = append(m.events, Event(msg))
		if len(m.events) > 200 {
			m.events = m.events[len(m.events)-200:]
		}
		m.viewport.SetContent(m.renderEvents())
		m.viewport.GotoBottom()

	case MsgShutdown:
		return m, tea.Quit

	case MsgTick:
		return m, tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
			return MsgTick(t)
		})
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) renderEvents() string {
	out := ""
	for _, e := range m.events {
		marker := "•"
		if e.Severity == "warning" {
			marker = "!"
		}
		out += fmt.Sprintf("%s %s %s\n", e.Timestamp.Format("15:04:05"), marker, e.Message)
	}
	return out
}
