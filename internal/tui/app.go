// Package tui provides the interactive terminal UI for the pet store agent.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fentz26/petstore-agent/internal/agent"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	promptLineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fgColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// App is the interactive prompt session model.
type App struct {
	agent      *agent.Agent
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	width      int
	height     int
	processing bool
	ready      bool
}

// New creates a new TUI application around an agent.
func New(a *agent.Agent) *App {
	ti := textinput.New()
	ti.Placeholder = `Ask about pets: "Show me all pets", "Find me pet with ID 1", ...`
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 80

	vp := viewport.New(80, 20)

	return &App{
		agent:    a,
		input:    ti,
		viewport: vp,
	}
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// responseMsg carries a processed prompt back into the update loop.
type responseMsg struct {
	prompt   string
	response string
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit

		case "enter":
			prompt := strings.TrimSpace(a.input.Value())
			if prompt == "" || a.processing {
				return a, nil
			}
			a.input.SetValue("")
			a.processing = true
			return a, a.process(prompt)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 6
		a.input.Width = msg.Width - 6
		a.ready = true
		a.refresh()

	case responseMsg:
		a.transcript = append(a.transcript,
			promptLineStyle.Render("You: "+msg.prompt),
			"",
			msg.response,
			"",
		)
		a.processing = false
		a.refresh()
		a.viewport.GotoBottom()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)

	// Keystrokes belong to the input; forwarding them to the viewport would
	// scroll the transcript while typing.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		a.viewport, cmd = a.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

// process runs the prompt through the agent off the update loop.
func (a *App) process(prompt string) tea.Cmd {
	return func() tea.Msg {
		response := a.agent.Process(context.Background(), prompt)
		return responseMsg{prompt: prompt, response: response}
	}
}

// refresh rebuilds the viewport content from the transcript.
func (a *App) refresh() {
	if len(a.transcript) == 0 {
		a.viewport.SetContent(helpStyle.Render("Type a question about the pet store and press enter."))
		return
	}
	a.viewport.SetContent(strings.Join(a.transcript, "\n"))
}

// View implements tea.Model
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	title := titleStyle.Render("🏪 Pet Store Agent")

	status := ""
	if a.processing {
		status = helpStyle.Render(" thinking...")
	}

	help := helpStyle.Render("enter: ask • esc: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title+status,
		a.viewport.View(),
		inputBoxStyle.Render(a.input.View()),
		help,
	)
}
