// Package config handles loading and merging gitgauge configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dlucca/gitgauge/internal/duration"
)

// Config represents the application configuration.
type Config struct {
	Token         string `yaml:"token,omitempty"`
	DefaultFormat string `yaml:"default_format,omitempty"`

	// RecentWindow is the lookback window for the maintenance signal,
	// e.g. "30d" or "4w".
	RecentWindow string `yaml:"recent_window,omitempty"`

	// Top-level config sections
	Limits    *LimitOverrides   `yaml:"limits,omitempty"`
	Scoring   *ScoringOverrides `yaml:"scoring,omitempty"`
	Narrative *NarrativeConfig  `yaml:"narrative,omitempty"`
}

// NarrativeConfig configures the optional LLM narrative generation.
// The API key is read from the GEMINI_API_KEY environment variable, never
// from the config file.
type NarrativeConfig struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

// LimitOverrides allows customizing the fixed sample caps.
type LimitOverrides struct {
	PRSample          *int `yaml:"pr_sample,omitempty"`
	CommitSample      *int `yaml:"commit_sample,omitempty"`
	RepoSample        *int `yaml:"repo_sample,omitempty"`
	ContributorSample *int `yaml:"contributor_sample,omitempty"`
	IssueSample       *int `yaml:"issue_sample,omitempty"`
	GraphMaxNodes     *int `yaml:"graph_max_nodes,omitempty"`
	NetworkMaxNodes   *int `yaml:"network_max_nodes,omitempty"`
	NetworkMaxEdges   *int `yaml:"network_max_edges,omitempty"`
	NetworkPRSample   *int `yaml:"network_pr_sample,omitempty"`
	MaxReviewHours    *int `yaml:"max_review_hours,omitempty"`
}

// ScoringOverrides allows customizing health score caps and the advisory
// thresholds that trigger recommendations.
type ScoringOverrides struct {
	DocumentationCap      *int `yaml:"documentation_cap,omitempty"`
	MaintenanceCap        *int `yaml:"maintenance_cap,omitempty"`
	CommunityCap          *int `yaml:"community_cap,omitempty"`
	IssueResponseCap      *int `yaml:"issue_response_cap,omitempty"`
	CodeQualityCap        *int `yaml:"code_quality_cap,omitempty"`
	DocumentationAdvisory *int `yaml:"documentation_advisory,omitempty"`
	MaintenanceAdvisory   *int `yaml:"maintenance_advisory,omitempty"`
	CommunityAdvisory     *int `yaml:"community_advisory,omitempty"`
	IssueResponseAdvisory *int `yaml:"issue_response_advisory,omitempty"`
	CodeQualityAdvisory   *int `yaml:"code_quality_advisory,omitempty"`
}

// Limits defines the fixed sample caps applied to every analysis. These
// are display/cost caps, not pagination: the engine never fetches beyond
// them.
type Limits struct {
	PRSample          int // PRs fetched with full detail
	CommitSample      int // commits fetched with per-commit stats
	RepoSample        int // repositories scanned for the collaboration network
	ContributorSample int // contributors per repository
	IssueSample       int // issues sampled for response-time scoring
	GraphMaxNodes     int // dependency graph display cap
	NetworkMaxNodes   int // collaboration network node cap
	NetworkMaxEdges   int // collaboration network edge cap
	NetworkPRSample   int // PRs enriched per repo for the network
	MaxReviewHours    int // reviews older than this are excluded from averages
}

// DefaultLimits returns the default sample caps.
func DefaultLimits() Limits {
	return Limits{
		PRSample:          50,
		CommitSample:      100,
		RepoSample:        20,
		ContributorSample: 30,
		IssueSample:       30,
		GraphMaxNodes:     100,
		NetworkMaxNodes:   50,
		NetworkMaxEdges:   100,
		NetworkPRSample:   10,
		MaxReviewHours:    720,
	}
}

// HealthWeights defines the per-category caps and advisory thresholds of
// the repository health score. The advisory thresholds are tuned cutoffs
// for recommendations, independent of the caps.
type HealthWeights struct {
	DocumentationCap int
	MaintenanceCap   int
	CommunityCap     int
	IssueResponseCap int
	CodeQualityCap   int

	DocumentationAdvisory int
	MaintenanceAdvisory   int
	CommunityAdvisory     int
	IssueResponseAdvisory int
	CodeQualityAdvisory   int
}

// DefaultHealthWeights returns the default scoring weights.
func DefaultHealthWeights() HealthWeights {
	return HealthWeights{
		DocumentationCap: 30,
		MaintenanceCap:   25,
		CommunityCap:     20,
		IssueResponseCap: 15,
		CodeQualityCap:   10,

		DocumentationAdvisory: 20,
		MaintenanceAdvisory:   15,
		CommunityAdvisory:     12,
		IssueResponseAdvisory: 10,
		CodeQualityAdvisory:   6,
	}
}

// DefaultRecentWindow is the lookback window for the maintenance signal.
const DefaultRecentWindow = "30d"

// GetRecentWindow returns the configured lookback window, falling back to
// the default when unset or unparseable.
func (c *Config) GetRecentWindow() time.Duration {
	window := c.RecentWindow
	if window == "" {
		window = DefaultRecentWindow
	}
	d, err := duration.Parse(window)
	if err != nil {
		d, _ = duration.Parse(DefaultRecentWindow)
	}
	return d
}

// GetLimits returns the sample caps with user overrides merged with defaults.
func (c *Config) GetLimits() Limits {
	limits := DefaultLimits()
	if c.Limits == nil {
		return limits
	}
	l := c.Limits
	if l.PRSample != nil {
		limits.PRSample = *l.PRSample
	}
	if l.CommitSample != nil {
		limits.CommitSample = *l.CommitSample
	}
	if l.RepoSample != nil {
		limits.RepoSample = *l.RepoSample
	}
	if l.ContributorSample != nil {
		limits.ContributorSample = *l.ContributorSample
	}
	if l.IssueSample != nil {
		limits.IssueSample = *l.IssueSample
	}
	if l.GraphMaxNodes != nil {
		limits.GraphMaxNodes = *l.GraphMaxNodes
	}
	if l.NetworkMaxNodes != nil {
		limits.NetworkMaxNodes = *l.NetworkMaxNodes
	}
	if l.NetworkMaxEdges != nil {
		limits.NetworkMaxEdges = *l.NetworkMaxEdges
	}
	if l.NetworkPRSample != nil {
		limits.NetworkPRSample = *l.NetworkPRSample
	}
	if l.MaxReviewHours != nil {
		limits.MaxReviewHours = *l.MaxReviewHours
	}
	return limits
}

// GetHealthWeights returns health score weights with user overrides merged
// with defaults.
func (c *Config) GetHealthWeights() HealthWeights {
	weights := DefaultHealthWeights()
	if c.Scoring == nil {
		return weights
	}
	s := c.Scoring
	if s.DocumentationCap != nil {
		weights.DocumentationCap = *s.DocumentationCap
	}
	if s.MaintenanceCap != nil {
		weights.MaintenanceCap = *s.MaintenanceCap
	}
	if s.CommunityCap != nil {
		weights.CommunityCap = *s.CommunityCap
	}
	if s.IssueResponseCap != nil {
		weights.IssueResponseCap = *s.IssueResponseCap
	}
	if s.CodeQualityCap != nil {
		weights.CodeQualityCap = *s.CodeQualityCap
	}
	if s.DocumentationAdvisory != nil {
		weights.DocumentationAdvisory = *s.DocumentationAdvisory
	}
	if s.MaintenanceAdvisory != nil {
		weights.MaintenanceAdvisory = *s.MaintenanceAdvisory
	}
	if s.CommunityAdvisory != nil {
		weights.CommunityAdvisory = *s.CommunityAdvisory
	}
	if s.IssueResponseAdvisory != nil {
		weights.IssueResponseAdvisory = *s.IssueResponseAdvisory
	}
	if s.CodeQualityAdvisory != nil {
		weights.CodeQualityAdvisory = *s.CodeQualityAdvisory
	}
	return weights
}

// DefaultConfigDir returns the default config directory.
func DefaultConfigDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".gitgauge"
	}
	return filepath.Join(configDir, "gitgauge")
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// Load loads the configuration from disk. A missing config file is not an
// error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom loads the configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration to disk, creating the config directory if
// needed.
func (c *Config) Save() error {
	dir := DefaultConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigPath(), data, 0o600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
