package controller

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	m "github.com/mouse-blink/datacom/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra Command's input and output streams.
type SimpleUI struct {
	cmd    *cobra.Command
	reader *bufio.Reader
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// PromptMessage asks for the message and a method choice 1-5 on stdin.
// An out-of-range or non-numeric choice selects Parity and prints a notice.
func (s *SimpleUI) PromptMessage(ctx context.Context) (Prompt, error) {
	if err := ctx.Err(); err != nil {
		return Prompt{}, err
	}

	s.printf("Enter data to send: ")

	data, err := s.readLine()
	if err != nil {
		return Prompt{}, err
	}

	s.printf("\nSelect error detection method:\n")

	for i, method := range m.Methods() {
		s.printf("  %d. %s\n", i+1, method.Label())
	}

	s.printf("Choice (1-%d): ", len(m.Methods()))

	raw, err := s.readLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return Prompt{}, err
	}

	choice, convErr := strconv.Atoi(strings.TrimSpace(raw))

	method, ok := m.MethodFromChoice(choice)
	if convErr != nil || !ok {
		s.printf("Invalid choice, using %s\n", m.MethodParity.Label())
	}

	return Prompt{Data: []byte(data), Method: method}, nil
}

// DisplayPacket prints the frame fields seen at stage.
func (s *SimpleUI) DisplayPacket(stage Stage, packet m.Packet) {
	s.printf("[%s] data=%q method=%s control=%s\n", stage, packet.Data, packet.Method, packet.Control)
}

// DisplayCorruption prints the payload before and after injection.
func (s *SimpleUI) DisplayCorruption(original, corrupted []byte, injection m.InjectionMethod) {
	s.printf("[%s] %s: %q -> %q\n", StageRelay, injection, original, corrupted)
}

// DisplayReport prints the receiver verdict.
func (s *SimpleUI) DisplayReport(report m.Report) {
	s.printf("Received data: %q\n", report.Received)
	s.printf("Method: %s\n", report.Method.Label())
	s.printf("Sent control: %s\n", report.SentControl)
	s.printf("Computed control: %s\n", report.ComputedControl)
	s.printf("Status: %s\n", verdict(report.Status))
}

// DisplaySummary prints per-method detection counts as a table.
func (s *SimpleUI) DisplaySummary(reports []m.Report) error {
	if len(reports) == 0 {
		s.printf("no reports\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Method", "Trials", "Altered", "Detected", "Missed", "Rate"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	var altered, detected, missed int

	for _, summary := range m.Summarize(reports) {
		table.Append([]string{
			summary.Method.Label(),
			strconv.Itoa(summary.Trials),
			strconv.Itoa(summary.Altered),
			strconv.Itoa(summary.Detected),
			strconv.Itoa(summary.Missed),
			formatRate(summary),
		})

		altered += summary.Altered
		detected += summary.Detected
		missed += summary.Missed
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(reports)),
		"",
		strconv.Itoa(altered),
		strconv.Itoa(detected),
		strconv.Itoa(missed),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) readLine() (string, error) {
	if s.reader == nil {
		s.reader = bufio.NewReader(s.cmd.InOrStdin())
	}

	line, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return strings.TrimRight(line, "\r\n"), err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
