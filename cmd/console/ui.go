package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/emberhall/mystery-engine/internal/handlers"
	"github.com/emberhall/mystery-engine/pkg/state"
)

const placeHolderText = "go to library / inspect shimmer / talk to draco ..."

// ConsoleUI is the BubbleTea model that runs the UI.
type ConsoleUI struct {
	config       *ConsoleConfig
	client       *http.Client
	sessionID    string
	gameState    state.StateView
	chatViewport viewport.Model
	textarea     textarea.Model
	ready        bool
	width        int
	height       int
	err          error
	loading      bool
	statusLine   string
}

type actionResponseMsg struct {
	response *handlers.ActionResponse
	err      error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	speakerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	narratorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	evidenceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("178"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client, start *handlers.StartResponse) ConsoleUI {
	ta := textarea.New()
	ta.Placeholder = placeHolderText
	ta.Focus()
	ta.Prompt = promptStyle.Render(":: ")
	ta.CharLimit = 500
	ta.SetWidth(50)
	ta.SetHeight(2)
	ta.ShowLineNumbers = false

	vp := viewport.New(50, 20)
	vp.MouseWheelEnabled = true

	return ConsoleUI{
		config:       cfg,
		client:       client,
		sessionID:    start.SessionID,
		gameState:    start.State,
		chatViewport: vp,
		textarea:     ta,
	}
}

func (ui ConsoleUI) Init() tea.Cmd {
	return textarea.Blink
}

func (ui ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		taCmd tea.Cmd
		vpCmd tea.Cmd
	)

	ui.textarea, taCmd = ui.textarea.Update(msg)
	ui.chatViewport, vpCmd = ui.chatViewport.Update(msg)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		ui.chatViewport.Width = msg.Width - 4
		ui.chatViewport.Height = msg.Height - 8
		ui.textarea.SetWidth(msg.Width - 4)
		ui.ready = true
		ui.refreshTimeline()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return ui, tea.Quit

		case tea.KeyCtrlY:
			if err := clipboard.WriteAll(ui.sessionID); err != nil {
				ui.statusLine = "clipboard unavailable"
			} else {
				ui.statusLine = "session id copied"
			}

		case tea.KeyEnter:
			text := strings.TrimSpace(ui.textarea.Value())
			if text == "" || ui.loading {
				break
			}
			ui.textarea.Reset()
			ui.loading = true
			ui.err = nil
			return ui, tea.Batch(taCmd, vpCmd, ui.sendActionCmd(text))
		}

	case actionResponseMsg:
		ui.loading = false
		if msg.err != nil {
			ui.err = msg.err
			break
		}
		ui.gameState = msg.response.State
		ui.refreshTimeline()
	}

	return ui, tea.Batch(taCmd, vpCmd)
}

func (ui *ConsoleUI) sendActionCmd(text string) tea.Cmd {
	return func() tea.Msg {
		resp, err := sendAction(ui.client, ui.config.APIBaseURL, ui.sessionID, text)
		return actionResponseMsg{response: resp, err: err}
	}
}

func (ui *ConsoleUI) refreshTimeline() {
	var b strings.Builder
	for _, msg := range ui.gameState.Timeline {
		b.WriteString(renderMessage(msg, ui.chatViewport.Width))
		b.WriteString("\n\n")
	}
	ui.chatViewport.SetContent(b.String())
	ui.chatViewport.GotoBottom()
}

func renderMessage(msg state.Message, width int) string {
	var bodyStyle lipgloss.Style
	switch msg.AvatarType {
	case state.AvatarPlayer:
		bodyStyle = userStyle
	case state.AvatarSystem:
		bodyStyle = errorStyle
	default:
		bodyStyle = narratorStyle
	}

	wrapped := wordwrap.String(msg.Text, max(20, width-2))
	return speakerStyle.Render(msg.Speaker) + "\n" + bodyStyle.Render(wrapped)
}

func (ui ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	header := titleStyle.Render("Hogwarts Mystery") +
		promptStyle.Render(fmt.Sprintf("  %s | clues: %d", ui.gameState.Location, ui.gameState.CluesFound))

	evidence := ""
	if len(ui.gameState.Evidence) > 0 {
		evidence = evidenceStyle.Render("Evidence: "+strings.Join(ui.gameState.Evidence, " | ")) + "\n"
	}

	status := promptStyle.Render("enter: send | ctrl+y: copy session id | esc: quit")
	if ui.loading {
		status = loadingStyle.Render("Thinking...")
	}
	if ui.err != nil {
		status = errorStyle.Render(ui.err.Error())
	}
	if ui.statusLine != "" && ui.err == nil && !ui.loading {
		status = promptStyle.Render(ui.statusLine)
	}

	return fmt.Sprintf("%s\n%s%s\n%s\n%s",
		header,
		evidence,
		ui.chatViewport.View(),
		ui.textarea.View(),
		status)
}
