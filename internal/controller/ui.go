// Package controller provides the console front ends for the sender prompt
// and for exchange results.
package controller

import (
	"context"
	"errors"
	"fmt"

	m "github.com/mouse-blink/datacom/internal/model"
)

// ErrPromptCancelled is returned when the user aborts the sender prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// Stage names the node that produced or handled a packet.
type Stage string

// Available Stage values.
const (
	StageSender   Stage = "sender"
	StageRelay    Stage = "relay"
	StageReceiver Stage = "receiver"
)

// Prompt holds what the user typed at the sender prompt.
type Prompt struct {
	Data   []byte
	Method m.Method
}

// UI defines the interface for interacting with the user.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	PromptMessage(ctx context.Context) (Prompt, error)
	DisplayPacket(stage Stage, packet m.Packet)
	DisplayCorruption(original, corrupted []byte, injection m.InjectionMethod)
	DisplayReport(report m.Report)
	DisplaySummary(reports []m.Report) error
}

func verdict(status m.Status) string {
	if status == m.StatusCorrect {
		return "DATA CORRECT"
	}

	return "DATA CORRUPTED"
}

func formatRate(s m.Summary) string {
	if s.Altered == 0 {
		return "n/a"
	}

	return fmt.Sprintf("%.1f%%", s.DetectionRate()*100)
}
