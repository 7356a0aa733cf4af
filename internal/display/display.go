// Package display provides the `--debug` overlay: a read-only Bubble Tea
// view of the supervisor's live actor registry, the current
// SmartSpeakerState, and a scrolling feed of recently routed message
// types. It never mutates core state — everything it shows comes from
// polling a Source snapshot once per tick.
package display

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/noxowl/smartspeaker/internal/message"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	brandStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b")).
			Bold(true)

	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	actorOnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	stateIdleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a")).
			Italic(true)

	stateAttentionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#fde68a"))

	stateWaitingStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bae6fd"))

	logLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	sepLineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3f3f46"))
)

// ── Source ───────────────────────────────────────────────────────

// Source is the read-only view the overlay polls. *actor.Supervisor
// satisfies this implicitly; the overlay package never imports
// internal/actor so it stays the ambient leaf package it was in the
// teacher.
type Source interface {
	RegisteredActors() []message.ActorId
	State() (message.SmartSpeakerState, bool)
	RecentLog() []string
}

// ── Overlay ──────────────────────────────────────────────────────

// Overlay is the `--debug` terminal view. Call Run (blocking) from its
// own goroutine; the rest of the program never talks to it beyond
// construction.
type Overlay struct {
	program *tea.Program
	source  Source
	quitCh  chan struct{}
}

// NewOverlay builds a debug overlay reading from source. Call Run to start.
func NewOverlay(source Source) *Overlay {
	return &Overlay{source: source, quitCh: make(chan struct{})}
}

// Run starts the Bubble Tea event loop. Blocks until quit.
func (o *Overlay) Run() error {
	o.program = tea.NewProgram(model{source: o.source}, tea.WithAltScreen())
	_, err := o.program.Run()
	close(o.quitCh)
	return err
}

// Quit tells Bubble Tea to exit.
func (o *Overlay) Quit() {
	if o.program != nil {
		o.program.Quit()
	}
}

// QuitChan is closed when Run returns.
func (o *Overlay) QuitChan() <-chan struct{} { return o.quitCh }

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	source Source

	actors    []message.ActorId
	state     message.SmartSpeakerState
	haveState bool
	log       []string

	width, height int
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd {
	return tickCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.actors = m.source.RegisteredActors()
		m.state, m.haveState = m.source.State()
		m.log = m.source.RecentLog()
		return m, tickCmd()
	}
	return m, nil
}

func (m model) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	h := m.height
	if h <= 0 {
		h = 24
	}

	var top []string
	top = append(top, brandStyle.Render("  smartspeaker — debug"))
	top = append(top, "  "+labelStyle.Render("actors: ")+m.renderActors())
	top = append(top, "  "+labelStyle.Render("state:  ")+m.renderState())
	top = append(top, sepLineStyle.Render("  "+strings.Repeat("╌", w-2)))

	logLines := m.renderLog(h - len(top))

	out := append([]string{}, top...)
	out = append(out, logLines...)
	return strings.Join(out, "\n")
}

func (m model) renderActors() string {
	if len(m.actors) == 0 {
		return labelStyle.Render("(none)")
	}
	names := make([]string, 0, len(m.actors))
	for _, a := range m.actors {
		names = append(names, actorOnStyle.Render(a.String()))
	}
	return strings.Join(names, "  ")
}

func (m model) renderState() string {
	if !m.haveState {
		return labelStyle.Render("(unknown)")
	}
	switch m.state.Kind {
	case message.StateIdle:
		return stateIdleStyle.Render("idle")
	case message.StateAttention:
		return stateAttentionStyle.Render("attention")
	case message.StateWaitingForInteraction:
		return stateWaitingStyle.Render("waiting: " + waitingKindString(m.state.Waiting.Kind))
	default:
		return labelStyle.Render("(unknown)")
	}
}

func waitingKindString(k message.WaitingKind) string {
	switch k {
	case message.WaitingSpeak:
		return "speak"
	case message.WaitingVision:
		return "vision"
	case message.WaitingSkip:
		return "skip"
	case message.WaitingExit:
		return "exit"
	default:
		return "unknown"
	}
}

// renderLog returns exactly `height` lines from the tail of the message
// log, newest at the bottom, padding with blanks at top when the feed is
// shorter than the available space.
func (m model) renderLog(height int) []string {
	if height <= 0 {
		return nil
	}
	start := len(m.log) - height
	if start < 0 {
		start = 0
	}
	visible := m.log[start:]

	lines := make([]string, 0, height)
	for len(lines) < height-len(visible) {
		lines = append(lines, "")
	}
	for i, l := range visible {
		lines = append(lines, "  "+logLineStyle.Render(fmt.Sprintf("%3d ", start+i))+l)
	}
	return lines
}
