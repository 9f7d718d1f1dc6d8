package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLimits(t *testing.T) {
	limits := DefaultLimits()
	if limits.PRSample != 50 {
		t.Errorf("PRSample = %d, want 50", limits.PRSample)
	}
	if limits.CommitSample != 100 {
		t.Errorf("CommitSample = %d, want 100", limits.CommitSample)
	}
	if limits.RepoSample != 20 {
		t.Errorf("RepoSample = %d, want 20", limits.RepoSample)
	}
	if limits.MaxReviewHours != 720 {
		t.Errorf("MaxReviewHours = %d, want 720", limits.MaxReviewHours)
	}
}

func TestDefaultHealthWeights(t *testing.T) {
	w := DefaultHealthWeights()
	total := w.DocumentationCap + w.MaintenanceCap + w.CommunityCap + w.IssueResponseCap + w.CodeQualityCap
	if total != 100 {
		t.Errorf("sum of caps = %d, want 100", total)
	}
}

func TestGetLimitsOverrides(t *testing.T) {
	prSample := 25
	maxHours := 240
	cfg := &Config{
		Limits: &LimitOverrides{
			PRSample:       &prSample,
			MaxReviewHours: &maxHours,
		},
	}

	limits := cfg.GetLimits()
	if limits.PRSample != 25 {
		t.Errorf("PRSample = %d, want 25", limits.PRSample)
	}
	if limits.MaxReviewHours != 240 {
		t.Errorf("MaxReviewHours = %d, want 240", limits.MaxReviewHours)
	}
	// Untouched fields keep defaults.
	if limits.CommitSample != 100 {
		t.Errorf("CommitSample = %d, want 100", limits.CommitSample)
	}
}

func TestGetHealthWeightsOverrides(t *testing.T) {
	docCap := 40
	cfg := &Config{
		Scoring: &ScoringOverrides{DocumentationCap: &docCap},
	}

	w := cfg.GetHealthWeights()
	if w.DocumentationCap != 40 {
		t.Errorf("DocumentationCap = %d, want 40", w.DocumentationCap)
	}
	if w.MaintenanceCap != 25 {
		t.Errorf("MaintenanceCap = %d, want 25", w.MaintenanceCap)
	}
}

func TestLoadFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `token: test-token
default_format: json
limits:
  pr_sample: 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Token != "test-token" {
		t.Errorf("Token = %q, want test-token", cfg.Token)
	}
	if cfg.DefaultFormat != "json" {
		t.Errorf("DefaultFormat = %q, want json", cfg.DefaultFormat)
	}
	if got := cfg.GetLimits().PRSample; got != 10 {
		t.Errorf("PRSample = %d, want 10", got)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v, want nil for missing file", err)
	}
	if cfg.Token != "" {
		t.Errorf("Token = %q, want empty", cfg.Token)
	}
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("token: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid YAML, got nil")
	}
}
