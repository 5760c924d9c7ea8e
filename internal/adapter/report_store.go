package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/datacom/internal/model"
)

const (
	reportExt       = ".yaml"
	reportIndexName = "_index.yaml"
)

// ReportStore persists and retrieves exchange reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
	CleanReports(path m.Path) error
}

// LocalReportStore writes one YAML file per report into a directory.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	ID              string `yaml:"id"`
	Method          string `yaml:"method"`
	Injection       string `yaml:"injection"`
	Original        string `yaml:"original"`
	Received        string `yaml:"received"`
	SentControl     string `yaml:"sent_control"`
	ComputedControl string `yaml:"computed_control"`
	Status          string `yaml:"status"`
	Altered         bool   `yaml:"altered"`
}

type indexMethodEntry struct {
	Method   string  `yaml:"method"`
	Trials   int     `yaml:"trials"`
	Altered  int     `yaml:"altered"`
	Detected int     `yaml:"detected"`
	Missed   int     `yaml:"missed"`
	False    int     `yaml:"false_alarms"`
	Rate     float64 `yaml:"detection_rate"`
}

type indexEntry struct {
	TotalReports int                `yaml:"total_reports"`
	Methods      []indexMethodEntry `yaml:"methods"`
}

// SaveReports writes each report to <path>/<id>.yaml. Reports without an ID
// are skipped.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if err := os.MkdirAll(string(path), 0o755); err != nil {
		return fmt.Errorf("create reports dir %s: %w", path, err)
	}

	for _, report := range reports {
		if report.ID == "" {
			continue
		}

		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report %s: %w", report.ID, err)
		}

		file := filepath.Join(string(path), report.ID+reportExt)
		if err := os.WriteFile(file, data, 0o600); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return nil
}

// LoadReports reads every report file under path, ordered by ID.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reports dir %s: %w", path, err)
		}

		return nil, fmt.Errorf("read reports dir %s: %w", path, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == reportIndexName || !strings.HasSuffix(name, reportExt) {
			continue
		}

		names = append(names, name)
	}

	sort.Strings(names)

	reports := make([]m.Report, 0, len(names))

	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(string(path), name))
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", name, err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", name, err)
		}

		reports = append(reports, fromReportYAML(decoded))
	}

	return reports, nil
}

// RegenerateIndex rewrites <path>/_index.yaml from the stored reports.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	idx := indexEntry{TotalReports: len(reports)}

	for _, s := range m.Summarize(reports) {
		idx.Methods = append(idx.Methods, indexMethodEntry{
			Method:   string(s.Method),
			Trials:   s.Trials,
			Altered:  s.Altered,
			Detected: s.Detected,
			Missed:   s.Missed,
			False:    s.FalseAlarms,
			Rate:     s.DetectionRate(),
		})
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	file := filepath.Join(string(path), reportIndexName)
	if err := os.WriteFile(file, data, 0o600); err != nil {
		return fmt.Errorf("write index %s: %w", file, err)
	}

	return nil
}

// CleanReports removes the report files and the index under path. A missing
// directory is not an error.
func (rs *LocalReportStore) CleanReports(path m.Path) error {
	entries, err := os.ReadDir(string(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}

		return fmt.Errorf("read reports dir %s: %w", path, err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		if err := os.Remove(filepath.Join(string(path), entry.Name())); err != nil {
			return fmt.Errorf("remove report %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func toReportYAML(r m.Report) reportYAML {
	return reportYAML{
		ID:              r.ID,
		Method:          string(r.Method),
		Injection:       string(r.Injection),
		Original:        string(r.Original),
		Received:        string(r.Received),
		SentControl:     r.SentControl,
		ComputedControl: r.ComputedControl,
		Status:          string(r.Status),
		Altered:         r.Altered,
	}
}

func fromReportYAML(r reportYAML) m.Report {
	return m.Report{
		ID:              r.ID,
		Method:          m.Method(r.Method),
		Injection:       m.InjectionMethod(r.Injection),
		Original:        []byte(r.Original),
		Received:        []byte(r.Received),
		SentControl:     r.SentControl,
		ComputedControl: r.ComputedControl,
		Status:          m.Status(r.Status),
		Altered:         r.Altered,
	}
}
