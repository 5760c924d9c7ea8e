package model

import "bytes"

// Status is the receiver's verdict for one exchange.
type Status string

const (
	// StatusCorrect means the recomputed control matched the sent one.
	StatusCorrect Status = "correct"
	// StatusCorrupted means the recomputed control differed.
	StatusCorrupted Status = "corrupted"
)

// Report represents the outcome of one sender -> relay -> receiver exchange.
type Report struct {
	ID              string
	Method          Method
	Injection       InjectionMethod
	Original        []byte
	Received        []byte
	SentControl     string
	ComputedControl string
	Status          Status
	Altered         bool
}

// Detected reports whether the receiver flagged the exchange.
func (r Report) Detected() bool {
	return r.Status == StatusCorrupted
}

// Missed reports whether the data changed but the control still matched.
func (r Report) Missed() bool {
	return r.Altered && r.Status == StatusCorrect
}

// NewStatus converts a control comparison into a Status.
func NewStatus(sent, computed string) Status {
	if sent == computed {
		return StatusCorrect
	}

	return StatusCorrupted
}

// IsAltered reports whether received differs from original.
func IsAltered(original, received []byte) bool {
	return !bytes.Equal(original, received)
}

// Summary aggregates reports for a single detection method.
type Summary struct {
	Method   Method
	Trials   int
	Altered  int
	Detected int
	Missed   int

	// FalseAlarms counts unaltered exchanges reported as corrupted.
	FalseAlarms int
}

// DetectionRate is the share of altered exchanges that were detected.
func (s Summary) DetectionRate() float64 {
	if s.Altered == 0 {
		return 0
	}

	return float64(s.Detected) / float64(s.Altered)
}

// Summarize groups reports by method, in Methods() order. Methods without
// reports are omitted.
func Summarize(reports []Report) []Summary {
	byMethod := make(map[Method]*Summary)

	for _, report := range reports {
		s, ok := byMethod[report.Method]
		if !ok {
			s = &Summary{Method: report.Method}
			byMethod[report.Method] = s
		}

		s.Trials++

		if report.Altered {
			s.Altered++
		}

		if report.Detected() {
			s.Detected++
		}

		if report.Missed() {
			s.Missed++
		}

		if report.Detected() && !report.Altered {
			s.FalseAlarms++
		}
	}

	summaries := make([]Summary, 0, len(byMethod))

	for _, method := range Methods() {
		if s, ok := byMethod[method]; ok {
			summaries = append(summaries, *s)
		}
	}

	return summaries
}
