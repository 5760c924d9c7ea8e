package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/datacom/internal/model"
)

type promptStage int

const (
	stageData promptStage = iota
	stageMethod
	stageDone
)

const promptWidth = 48

var (
	promptTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	promptHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type methodDelegate struct{}

func (d methodDelegate) Height() int  { return 1 }
func (d methodDelegate) Spacing() int { return 0 }
func (d methodDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d methodDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	entry, ok := item.(methodItem)
	if !ok {
		return
	}

	label := fmt.Sprintf("%d. %s", entry.choice, entry.method.Label())

	if index == l.Index() {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
		_, _ = fmt.Fprint(w, style.Render("> "+label))

		return
	}

	_, _ = fmt.Fprint(w, lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Render("  "+label))
}

// promptModel collects the message and then the detection method.
type promptModel struct {
	stage     promptStage
	input     textinput.Model
	methods   list.Model
	data      string
	method    m.Method
	cancelled bool
}

func newPromptModel() promptModel {
	input := textinput.New()
	input.Placeholder = "HELLO"
	input.Prompt = "> "
	input.CharLimit = 1024
	input.Width = promptWidth
	input.Focus()

	entries := methodItems()
	items := make([]list.Item, 0, len(entries))

	for _, entry := range entries {
		items = append(items, entry)
	}

	methods := list.New(items, methodDelegate{}, promptWidth, len(items))
	methods.SetShowTitle(false)
	methods.SetShowHelp(false)
	methods.SetShowStatusBar(false)
	methods.SetShowPagination(false)
	methods.SetFilteringEnabled(false)

	return promptModel{
		stage:   stageData,
		input:   input,
		methods: methods,
		method:  m.MethodParity,
	}
}

func (pm promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (pm promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return pm.updateComponent(msg)
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.cancelled = true
		pm.stage = stageDone

		return pm, tea.Quit
	case tea.KeyEnter:
		return pm.advance()
	}

	if pm.stage == stageMethod && len(key.Runes) == 1 {
		if method, ok := m.MethodFromChoice(int(key.Runes[0] - '0')); ok {
			pm.method = method
			pm.stage = stageDone

			return pm, tea.Quit
		}
	}

	return pm.updateComponent(msg)
}

func (pm promptModel) advance() (tea.Model, tea.Cmd) {
	switch pm.stage {
	case stageData:
		pm.data = pm.input.Value()
		if pm.data == "" {
			pm.stage = stageDone

			return pm, tea.Quit
		}

		pm.input.Blur()
		pm.stage = stageMethod

		return pm, nil
	case stageMethod:
		if entry, ok := pm.methods.SelectedItem().(methodItem); ok {
			pm.method = entry.method
		}

		pm.stage = stageDone

		return pm, tea.Quit
	default:
		return pm, tea.Quit
	}
}

func (pm promptModel) updateComponent(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch pm.stage {
	case stageData:
		pm.input, cmd = pm.input.Update(msg)
	case stageMethod:
		pm.methods, cmd = pm.methods.Update(msg)
	}

	return pm, cmd
}

func (pm promptModel) View() string {
	var b strings.Builder

	switch pm.stage {
	case stageData:
		b.WriteString(promptTitleStyle.Render("Enter data to send"))
		b.WriteString("\n")
		b.WriteString(pm.input.View())
		b.WriteString("\n")
		b.WriteString(promptHintStyle.Render("enter to continue, esc to quit"))
	case stageMethod:
		b.WriteString(promptTitleStyle.Render("Select error detection method"))
		b.WriteString("\n")
		b.WriteString(pm.methods.View())
		b.WriteString("\n")
		b.WriteString(promptHintStyle.Render("up/down or 1-5, enter to send"))
	default:
		return ""
	}

	b.WriteString("\n")

	return b.String()
}

func (pm promptModel) prompt() Prompt {
	return Prompt{Data: []byte(pm.data), Method: pm.method}
}
