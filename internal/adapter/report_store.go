package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"difind.dev/pkg/difind/internal/model"
)

// ReportFileStore persists finder reports as YAML files.
type ReportFileStore struct{}

// NewReportFileStore constructs a ReportFileStore.
func NewReportFileStore() *ReportFileStore {
	return &ReportFileStore{}
}

// Save writes the report below dir and returns the written path. The report
// file is named after the graph it was collected from.
func (s *ReportFileStore) Save(dir string, report model.Report) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	raw, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(dir, reportFileName(report.Graph))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

// Load reads a previously saved report.
func (s *ReportFileStore) Load(path string) (model.Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return model.Report{}, fmt.Errorf("failed to read report: %w", err)
	}

	var report model.Report
	if err := yaml.Unmarshal(raw, &report); err != nil {
		return model.Report{}, fmt.Errorf("failed to decode report: %w", err)
	}

	return report, nil
}

func reportFileName(graph string) string {
	base := filepath.Base(graph)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	if base == "" || base == "." {
		base = "graph"
	}

	return base + ".report.yaml"
}
