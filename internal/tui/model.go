// Package tui is the interactive step player: it shows one rendered frame
// at a time and lets the user step, seek and auto-play through a trace.
package tui

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/structviz/playback"
)

// Frame is one screen: the command that produced it and the rendered step.
type Frame struct {
	Title string
	Body  string
}

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	First key.Binding
	Last  key.Binding
	Play  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Play, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last},
		{k.Play, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Next:  key.NewBinding(key.WithKeys("right", "l", "n"), key.WithHelp("→/l", "next")),
	Prev:  key.NewBinding(key.WithKeys("left", "h", "p"), key.WithHelp("←/h", "prev")),
	First: key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first")),
	Last:  key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last")),
	Play:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

type tickMsg struct{ seq int }

// Model is the bubbletea model of the player.
type Model struct {
	cursor   *playback.Cursor[Frame]
	interval time.Duration
	playing  bool
	seq      int
	help     help.Model
	title    lipgloss.Style
	status   lipgloss.Style
}

// New returns a player over frames advancing every interval while playing.
func New(frames []Frame, interval time.Duration) Model {
	return Model{
		cursor:   playback.NewCursor(frames),
		interval: interval,
		help:     help.New(),
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		status:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Index returns the position of the frame on screen.
func (m Model) Index() int { return m.cursor.Index() }

// Playing reports whether auto-play is on.
func (m Model) Playing() bool { return m.playing }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick() tea.Cmd {
	seq := m.seq
	return tea.Tick(m.interval, func(time.Time) tea.Msg { return tickMsg{seq: seq} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tickMsg:
		// a pause or manual seek bumps seq and orphans pending ticks
		if !m.playing || msg.seq != m.seq {
			return m, nil
		}
		if !m.cursor.Next() {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Next):
			m.stop()
			m.cursor.Next()
		case key.Matches(msg, keys.Prev):
			m.stop()
			m.cursor.Prev()
		case key.Matches(msg, keys.First):
			m.stop()
			m.cursor.Reset()
		case key.Matches(msg, keys.Last):
			m.stop()
			m.cursor.Seek(m.cursor.Len() - 1)
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Play):
			if m.playing {
				m.stop()
				return m, nil
			}
			if m.cursor.Done() {
				m.cursor.Reset()
			}
			m.playing = true
			m.seq++
			return m, m.tick()
		}
	}
	return m, nil
}

func (m *Model) stop() {
	m.playing = false
	m.seq++
}

func (m Model) View() string {
	var b strings.Builder
	f, ok := m.cursor.Current()
	if !ok {
		b.WriteString("nothing to show\n")
	} else {
		b.WriteString(m.title.Render(f.Title))
		b.WriteString("\n\n")
		b.WriteString(f.Body)
		b.WriteString("\n\n")
	}
	state := "paused"
	if m.playing {
		state = "playing"
	}
	b.WriteString(m.status.Render(fmt.Sprintf("step %d/%d · %s", m.cursor.Index()+1, m.cursor.Len(), state)))
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

// Run shows frames until the user quits or ctx ends.
func Run(ctx context.Context, in io.Reader, out io.Writer, frames []Frame, interval time.Duration) error {
	if len(frames) == 0 {
		return playback.ErrNoSteps
	}
	p := tea.NewProgram(New(frames, interval),
		tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "tui")
	}
	return nil
}
