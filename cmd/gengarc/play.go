package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gengar/pkg/compiler"
)

var (
	accentColor = lipgloss.Color("#3B82F6")
	errorColor  = lipgloss.Color("#EF4444")
	mutedColor  = lipgloss.Color("#6B7280")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(accentColor)

	errStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

type playKeyMap struct {
	Save key.Binding
	Quit key.Binding
}

var playKeys = playKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "write playground.js"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "esc"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

type playModel struct {
	editor textarea.Model
	output string
	status string
	failed bool
	width  int
	height int
}

func newPlayModel() playModel {
	ta := textarea.New()
	ta.SetValue(demoSource)
	ta.Focus()
	ta.CharLimit = 0

	m := playModel{editor: ta}
	m.recompile()
	return m
}

func (m playModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *playModel) recompile() {
	out, err := compiler.Compile(m.editor.Value(), "playground.gengar", compiler.Options{})
	if err != nil {
		m.output = err.Error()
		m.failed = true
		return
	}
	m.output = out.Code
	m.failed = false
}

func (m *playModel) save() {
	out, err := compiler.Compile(m.editor.Value(), "playground.gengar", compiler.Options{})
	if err != nil {
		m.status = "not saved: fix the error first"
		return
	}
	code := out.Code + "\n//# sourceMappingURL=playground.js.map"
	if err := os.WriteFile("playground.js", []byte(code), 0o644); err != nil {
		m.status = err.Error()
		return
	}
	if err := os.WriteFile("playground.js.map", out.SourceMap, 0o644); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "wrote playground.js and playground.js.map"
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		paneWidth := m.width/2 - 4
		if paneWidth < 20 {
			paneWidth = 20
		}
		m.editor.SetWidth(paneWidth)
		m.editor.SetHeight(m.height - 6)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, playKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, playKeys.Save):
			m.save()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if _, ok := msg.(tea.KeyMsg); ok {
		m.status = ""
		m.recompile()
	}
	return m, cmd
}

func (m playModel) View() string {
	header := headerStyle.Render("gengar playground")

	paneWidth := m.width/2 - 4
	if paneWidth < 20 {
		paneWidth = 20
	}
	paneHeight := m.height - 6
	if paneHeight < 3 {
		paneHeight = 3
	}

	left := focusedPaneStyle.Width(paneWidth).Height(paneHeight).Render(m.editor.View())

	out := m.output
	if m.failed {
		out = errStyle.Render(out)
	}
	right := paneStyle.Width(paneWidth).Height(paneHeight).Render(clipLines(out, paneHeight))

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := strings.Join([]string{
		helpKeyStyle.Render("ctrl+s") + helpDescStyle.Render(" save"),
		helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render(" quit"),
	}, "  ")
	if m.status != "" {
		help = helpDescStyle.Render(m.status)
	}

	return header + "\n" + panes + "\n" + help
}

// clipLines keeps the view inside the pane height.
func clipLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n")
}

func playCommand(args []string) error {
	_ = args
	p := tea.NewProgram(newPlayModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("playground error: %w", err)
	}
	return nil
}
