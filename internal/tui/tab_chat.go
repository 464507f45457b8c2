package tui

import (
	"strings"
	"time"

	"github.com/theirongolddev/whatif/internal/chat"
	"github.com/theirongolddev/whatif/internal/tui/components"
	"github.com/theirongolddev/whatif/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// chatReplyMsg delivers a delayed agent reply.
type chatReplyMsg struct {
	msg chat.Message
}

// chatState is the chat tab: transcript, input and the count of replies
// still on their way.
type chatState struct {
	log     *chat.Log
	agent   chat.Agent
	input   textinput.Model
	spinner spinner.Model
	pending int
}

func newChatState(agent chat.Agent) chatState {
	ti := textinput.New()
	ti.Placeholder = "Ask about this scenario..."
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return chatState{
		log:     chat.NewLog(agent.Reply),
		agent:   agent,
		input:   ti,
		spinner: sp,
	}
}

// focus puts the cursor in the chat input.
func (c *chatState) focus() tea.Cmd {
	c.input.Focus()
	return c.input.Cursor.BlinkCmd()
}

// replyCmd waits out the agent delay and then delivers its reply.
func replyCmd(agent chat.Agent) tea.Cmd {
	return tea.Tick(agent.Delay, func(time.Time) tea.Msg {
		return chatReplyMsg{msg: agent.Message()}
	})
}

// updateChatKey handles keys while the chat tab is active. handled is false
// for keys the global handler should see (tab switching, quit, help).
func (a App) updateChatKey(msg tea.KeyMsg) (m tea.Model, cmd tea.Cmd, handled bool) {
	switch msg.String() {
	case "tab", "shift+tab", "esc":
		a.chat.input.Blur()
		if msg.String() == "esc" {
			return a, nil, true
		}
		return a, nil, false
	case "enter":
		if !a.chat.input.Focused() {
			return a, a.chat.focus(), true
		}
		a, cmd = a.submitChat()
		return a, cmd, true
	}

	if !a.chat.input.Focused() {
		return a, nil, false
	}
	a.chat.input, cmd = a.chat.input.Update(msg)
	return a, cmd, true
}

// submitChat appends the typed message and schedules one reply for it.
// Blank input is dropped.
func (a App) submitChat() (App, tea.Cmd) {
	_, ok := a.chat.log.Submit(a.chat.input.Value())
	a.chat.input.Reset()
	if !ok {
		return a, nil
	}

	a.chat.pending++
	cmds := []tea.Cmd{replyCmd(a.chat.agent)}
	if a.chat.pending == 1 {
		cmds = append(cmds, a.chat.spinner.Tick)
	}
	return a, tea.Batch(cmds...)
}

func (a App) renderChatTab(cw, h int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	userStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	agentStyle := lipgloss.NewStyle().Foreground(t.Magenta).Background(t.Surface).Bold(true)
	timeStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Width(innerW - 2)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var lines []string
	for _, m := range a.chat.log.Messages() {
		who := userStyle.Render("You")
		if m.Role == chat.RoleAgent {
			who = agentStyle.Render("Agent")
		}
		lines = append(lines, who+timeStyle.Render("  "+m.At.Format("15:04:05")))
		for _, l := range strings.Split(textStyle.Render(m.Text), "\n") {
			lines = append(lines, "  "+l)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, dimStyle.Render("No messages yet. Type below and press Enter."))
	}
	if a.chat.pending > 0 {
		lines = append(lines, a.chat.spinner.View()+dimStyle.Render(" Agent is typing..."))
	}

	// Keep the newest lines that fit above the input card.
	room := h - 7
	if room < 1 {
		room = 1
	}
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}

	transcript := components.ContentCard("Chat", strings.Join(lines, "\n"), cw)

	inputBody := a.chat.input.View()
	if !a.chat.input.Focused() {
		inputBody = dimStyle.Render("[enter] type a message")
	}
	return transcript + "\n" + components.FocusCard("", inputBody, cw)
}
