// Package output renders analytics reports as JSON, Markdown or a colored
// terminal table.
package output

import (
	"io"

	"github.com/dlucca/gitgauge/internal/model"
)

// Format represents the output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// Report bundles the computed reports for one analysis run. Nil sections
// were not requested and are omitted from the rendering.
type Report struct {
	Repo      string                      `json:"repo,omitempty"`
	User      string                      `json:"user,omitempty"`
	Health    *model.RepoHealthScore      `json:"health,omitempty"`
	Quality   *model.CodeQualityMetrics   `json:"quality,omitempty"`
	PRs       *model.PRAnalytics          `json:"prs,omitempty"`
	Deps      *model.DependencyGraph      `json:"dependencies,omitempty"`
	DepHealth *model.DependencyHealth     `json:"dependencyHealth,omitempty"`
	Network   *model.CollaborationNetwork `json:"network,omitempty"`
	Narrative string                      `json:"narrative,omitempty"`
}

// Formatter renders a Report to a writer.
type Formatter interface {
	Format(report Report, w io.Writer) error
}

// NewFormatter creates a formatter for the specified format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Pretty: true}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}
