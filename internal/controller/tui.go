package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/datacom/internal/model"
)

var (
	stageStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	correctStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	corruptedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	boxStyle       = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 1)
)

// TUI implements UI using Bubble Tea for the prompt and lipgloss for output.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// PromptMessage runs the interactive prompt until the user picks a method.
func (t *TUI) PromptMessage(ctx context.Context) (Prompt, error) {
	program := tea.NewProgram(
		newPromptModel(),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
	)

	final, err := program.Run()
	if err != nil {
		return Prompt{}, fmt.Errorf("run prompt: %w", err)
	}

	model, ok := final.(promptModel)
	if !ok {
		return Prompt{}, fmt.Errorf("unexpected prompt model %T", final)
	}

	if model.cancelled {
		return Prompt{}, ErrPromptCancelled
	}

	return model.prompt(), nil
}

// DisplayPacket prints the frame fields seen at stage.
func (t *TUI) DisplayPacket(stage Stage, packet m.Packet) {
	t.println(fmt.Sprintf("%s %s %q %s %s %s %s",
		stageStyle.Render(fmt.Sprintf("[%s]", stage)),
		labelStyle.Render("data"), packet.Data,
		labelStyle.Render("method"), packet.Method,
		labelStyle.Render("control"), packet.Control,
	))
}

// DisplayCorruption prints the payload before and after injection.
func (t *TUI) DisplayCorruption(original, corrupted []byte, injection m.InjectionMethod) {
	t.println(fmt.Sprintf("%s %s %q -> %q",
		stageStyle.Render(fmt.Sprintf("[%s]", StageRelay)),
		labelStyle.Render(string(injection)),
		original, corrupted,
	))
}

// DisplayReport prints the receiver verdict in a box.
func (t *TUI) DisplayReport(report m.Report) {
	style := correctStyle
	if report.Status != m.StatusCorrect {
		style = corruptedStyle
	}

	lines := []string{
		fmt.Sprintf("%s %q", labelStyle.Render("Received data:   "), report.Received),
		fmt.Sprintf("%s %s", labelStyle.Render("Method:          "), report.Method.Label()),
		fmt.Sprintf("%s %s", labelStyle.Render("Sent control:    "), report.SentControl),
		fmt.Sprintf("%s %s", labelStyle.Render("Computed control:"), report.ComputedControl),
		style.Render(verdict(report.Status)),
	}

	t.println(boxStyle.Render(strings.Join(lines, "\n")))
}

// DisplaySummary prints per-method detection counts in a box.
func (t *TUI) DisplaySummary(reports []m.Report) error {
	if len(reports) == 0 {
		t.println("no reports")
		return nil
	}

	cell := func(s string, width int) string {
		return lipgloss.NewStyle().Width(width).Render(s)
	}

	rows := []string{headerStyle.Render(
		cell("Method", 20) + cell("Trials", 8) + cell("Altered", 9) + cell("Detected", 10) + cell("Missed", 8) + "Rate",
	)}

	for _, summary := range m.Summarize(reports) {
		missed := strconv.Itoa(summary.Missed)
		if summary.Missed > 0 {
			missed = corruptedStyle.Render(missed)
		}

		rows = append(rows,
			cell(summary.Method.Label(), 20)+
				cell(strconv.Itoa(summary.Trials), 8)+
				cell(strconv.Itoa(summary.Altered), 9)+
				cell(strconv.Itoa(summary.Detected), 10)+
				cell(missed, 8)+
				formatRate(summary),
		)
	}

	t.println(boxStyle.Render(strings.Join(rows, "\n")))

	return nil
}

func (t *TUI) println(line string) {
	_, _ = fmt.Fprintln(t.output, line)
}
