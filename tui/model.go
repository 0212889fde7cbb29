package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"go-midiwire/config"
	"go-midiwire/debug"
	"go-midiwire/midi"
	"go-midiwire/notation"
	"go-midiwire/theme"
	"go-midiwire/widgets"
)

var ErrNoOutput = errors.New("no output configured")

// SendFunc delivers messages to the configured output
type SendFunc func(msgs ...midi.Encoder) error

type Model struct {
	Config   *config.Config
	Theme    *theme.Theme
	input    textinput.Model
	msgs     []midi.Message
	cursor   int
	send     SendFunc
	target   string
	status   string
	err      error
	quitting bool
}

// SentMsg reports the result of sending a message
type SentMsg struct {
	Msg midi.Message
	Err error
}

// NewModel builds the explorer. The remembered lines in cfg are parsed into
// the message list; send may be nil when no output is configured.
func NewModel(cfg *config.Config, th *theme.Theme, send SendFunc, target string) Model {
	ti := textinput.New()
	ti.Placeholder = "noteon 1 60 100"
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	m := Model{
		Config: cfg,
		Theme:  th,
		input:  ti,
		send:   send,
		target: target,
	}
	for _, line := range cfg.UI.LastLines {
		msg, err := notation.Parse(line)
		if err != nil {
			debug.Log("tui", "skipping remembered line %q: %v", line, err)
			continue
		}
		m.msgs = append(m.msgs, msg)
	}
	return m
}

// Messages returns the entered messages in list order
func (m Model) Messages() []midi.Message {
	return m.msgs
}

// Selected returns the message under the cursor, or nil for an empty list
func (m Model) Selected() midi.Message {
	if m.cursor < 0 || m.cursor >= len(m.msgs) {
		return nil
	}
	return m.msgs[m.cursor]
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			m.addLine(m.input.Value())
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.msgs)-1 {
				m.cursor++
			}
			return m, nil

		case "ctrl+s":
			selected := m.Selected()
			midi.Sort(m.msgs)
			m.cursor = indexOf(m.msgs, selected)
			m.status = "sorted by priority"
			m.err = nil
			return m, nil

		case "ctrl+d":
			if sel := m.Selected(); sel != nil {
				m.msgs = append(m.msgs[:m.cursor:m.cursor], m.msgs[m.cursor+1:]...)
				if m.cursor >= len(m.msgs) && m.cursor > 0 {
					m.cursor--
				}
				m.status = fmt.Sprintf("removed %v", sel)
				m.err = nil
			}
			return m, nil

		case "ctrl+o":
			return m, m.sendSelected()
		}

	case SentMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.status = ""
		} else {
			m.err = nil
			m.status = fmt.Sprintf("sent %v to %s", msg.Msg, m.target)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) addLine(line string) {
	line = strings.TrimSpace(line)
	msg, err := notation.Parse(line)
	if err != nil {
		m.err = err
		m.status = ""
		return
	}
	m.msgs = append(m.msgs, msg)
	m.cursor = len(m.msgs) - 1
	m.Config.AddLine(notation.Format(msg))
	m.input.Reset()
	m.err = nil
	m.status = fmt.Sprintf("added %v", msg)
}

func (m Model) sendSelected() tea.Cmd {
	sel := m.Selected()
	if sel == nil {
		return nil
	}
	send := m.send
	if send == nil {
		return func() tea.Msg {
			return SentMsg{Msg: sel, Err: ErrNoOutput}
		}
	}
	return func() tea.Msg {
		return SentMsg{Msg: sel, Err: send(sel)}
	}
}

func indexOf(msgs []midi.Message, target midi.Message) int {
	for i, m := range msgs {
		if m != nil && target != nil && midi.Compare(m, target) == 0 {
			return i
		}
	}
	return 0
}

var keyHelp = []widgets.KeySection{
	{Keys: []widgets.KeyBinding{
		{Key: "enter", Desc: "add line"},
		{Key: "up/down", Desc: "select"},
		{Key: "ctrl+s", Desc: "sort by priority"},
		{Key: "ctrl+o", Desc: "send selected"},
		{Key: "ctrl+d", Desc: "remove selected"},
		{Key: "esc", Desc: "quit"},
	}},
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	cursorStyle := lipgloss.NewStyle().Foreground(m.Theme.Cursor()).Bold(true)
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.Error())

	target := m.target
	if target == "" {
		target = "no output"
	}
	header := headerStyle.Render(fmt.Sprintf("go-midiwire  %d messages  %s %s", len(m.msgs), string(m.Theme.Symbols.Arrow), target))

	var list strings.Builder
	for i, msg := range m.msgs {
		if i == m.cursor {
			list.WriteString(cursorStyle.Render(fmt.Sprintf("%c %v", m.Theme.Symbols.Cursor, msg)))
		} else {
			list.WriteString(dimStyle.Render(fmt.Sprintf("%c ", m.Theme.Symbols.Bullet)))
			list.WriteString(msg.String())
		}
		list.WriteString("\n")
	}
	if len(m.msgs) == 0 {
		list.WriteString(dimStyle.Render("type a line below, e.g. noteon 1 60 100"))
		list.WriteString("\n")
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(list.String())

	if sel := m.Selected(); sel != nil {
		block := sel.ToRawMessages()
		out.WriteString("\n")
		out.WriteString(widgets.RenderBlock(m.Theme, block))
		out.WriteString("\n")
		out.WriteString(widgets.RenderShapes(m.Theme, block))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(m.input.View())
	out.WriteString("\n")

	switch {
	case m.err != nil:
		out.WriteString(errStyle.Render(m.err.Error()))
		out.WriteString("\n")
	case m.status != "":
		out.WriteString(dimStyle.Render(m.status))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(dimStyle.Render(widgets.RenderKeyHelp(keyHelp)))

	return out.String()
}
