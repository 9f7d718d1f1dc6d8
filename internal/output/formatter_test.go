package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dlucca/gitgauge/internal/model"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "*output.JSONFormatter"},
		{FormatMarkdown, "*output.MarkdownFormatter"},
		{FormatTable, "*output.TableFormatter"},
		{Format("bogus"), "*output.TableFormatter"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f := NewFormatter(tt.format)
			if got := typeName(f); got != tt.want {
				t.Errorf("NewFormatter(%q) = %s, want %s", tt.format, got, tt.want)
			}
		})
	}
}

func typeName(v interface{}) string {
	switch v.(type) {
	case *JSONFormatter:
		return "*output.JSONFormatter"
	case *MarkdownFormatter:
		return "*output.MarkdownFormatter"
	case *TableFormatter:
		return "*output.TableFormatter"
	default:
		return "unknown"
	}
}

func TestJSONFormatterOmitsEmptySections(t *testing.T) {
	f := &JSONFormatter{}
	var buf bytes.Buffer

	report := Report{
		Repo: "octocat/hello-world",
		Health: &model.RepoHealthScore{
			Overall:        89,
			LastCalculated: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		},
	}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := decoded["health"]; !ok {
		t.Error("expected health section in output")
	}
	if _, ok := decoded["network"]; ok {
		t.Error("nil network section should be omitted")
	}
}

func TestJSONFormatterPretty(t *testing.T) {
	f := &JSONFormatter{Pretty: true}
	var buf bytes.Buffer

	if err := f.Format(Report{Repo: "a/b"}, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  ") {
		t.Errorf("expected indented output, got %q", buf.String())
	}
}

func TestMarkdownFormatter(t *testing.T) {
	f := &MarkdownFormatter{}
	var buf bytes.Buffer

	report := Report{
		Repo: "octocat/hello-world",
		Quality: &model.CodeQualityMetrics{
			AveragePRReviewTime:   12.5,
			MedianPRReviewTime:    8.0,
			AverageChurnPerCommit: 50,
			Recommendations:       []string{"Consider establishing a faster code review process"},
		},
	}
	if err := f.Format(report, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "# Analytics for octocat/hello-world") {
		t.Errorf("expected title heading, got:\n%s", out)
	}
	if !strings.Contains(out, "## Code quality") {
		t.Errorf("expected quality heading, got:\n%s", out)
	}
	if !strings.Contains(out, "Average PR review time: 12.5h") {
		t.Errorf("expected review time line, got:\n%s", out)
	}
	if !strings.Contains(out, "- Consider establishing a faster code review process") {
		t.Errorf("expected recommendation bullet, got:\n%s", out)
	}
}
