package model

import "time"

// DependencyNodeType tags the role of a node in the dependency graph.
type DependencyNodeType string

const (
	NodeRoot           DependencyNodeType = "root"
	NodeDependency     DependencyNodeType = "dependency"
	NodeDevDependency  DependencyNodeType = "devDependency"
	NodePeerDependency DependencyNodeType = "peerDependency"
)

// DependencyNode is one vertex in the dependency graph.
type DependencyNode struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Version   string             `json:"version"`
	Type      DependencyNodeType `json:"type"`
	Ecosystem Ecosystem          `json:"ecosystem"`
}

// DependencyEdge links the root node to a direct dependency. No transitive
// edges exist since manifests carry no transitive information.
type DependencyEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Type   string `json:"type"` // always "direct"
}

// DependencyGraph is the display-capped graph returned to consumers.
type DependencyGraph struct {
	Nodes                []DependencyNode `json:"nodes"`
	Edges                []DependencyEdge `json:"edges"`
	TotalDependencies    int              `json:"totalDependencies"`
	TotalDevDependencies int              `json:"totalDevDependencies"`
	Ecosystems           []Ecosystem      `json:"ecosystems"`
}

// EcosystemHealth is the per-ecosystem slice of the dependency health report.
type EcosystemHealth struct {
	Total    int `json:"total"`
	Outdated int `json:"outdated"`
}

// DependencyHealth classifies dependencies as pinned vs. range/wildcard.
// Vulnerable is always zero: no vulnerability database is consulted.
type DependencyHealth struct {
	Total      int                           `json:"total"`
	Outdated   int                           `json:"outdated"`
	Vulnerable int                           `json:"vulnerable"`
	Latest     int                           `json:"latest"`
	Ecosystems map[Ecosystem]EcosystemHealth `json:"ecosystems"`
}

// CodeChurnDay is one UTC calendar day of aggregated commit activity.
type CodeChurnDay struct {
	Date      string `json:"date"` // ISO date, e.g. "2026-08-30"
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	NetChange int    `json:"netChange"`
	Commits   int    `json:"commits"`
}

// CodeQualityMetrics is the combined code quality report for a repository.
type CodeQualityMetrics struct {
	AveragePRReviewTime   float64          `json:"averagePRReviewTime"` // hours
	MedianPRReviewTime    float64          `json:"medianPRReviewTime"`  // hours
	CodeChurn             []CodeChurnDay   `json:"codeChurn"`
	AverageChurnPerCommit int              `json:"averageChurnPerCommit"`
	DependencyHealth      DependencyHealth `json:"dependencyHealth"`
	Recommendations       []string         `json:"recommendations"`
	LastCalculated        time.Time        `json:"lastCalculated"`
}

// HealthBreakdown holds the five independently-capped subscores.
type HealthBreakdown struct {
	Documentation int `json:"documentation"` // 0..30
	Maintenance   int `json:"maintenance"`   // 0..25
	Community     int `json:"community"`     // 0..20
	IssueResponse int `json:"issueResponse"` // 0..15
	CodeQuality   int `json:"codeQuality"`   // 0..10
}

// Sum returns the overall score. Each subscore is capped before summing,
// so the result is always within 0..100.
func (b HealthBreakdown) Sum() int {
	return b.Documentation + b.Maintenance + b.Community + b.IssueResponse + b.CodeQuality
}

// RepoHealthScore is the composite 0-100 health report.
type RepoHealthScore struct {
	Overall         int             `json:"overall"`
	Breakdown       HealthBreakdown `json:"breakdown"`
	Recommendations []string        `json:"recommendations"`
	LastCalculated  time.Time       `json:"lastCalculated"`
}

// MergeTimeBucket is one bar of the merge-time histogram.
type MergeTimeBucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// PRSizeAnalysis counts PRs by total changed lines.
type PRSizeAnalysis struct {
	Small  int `json:"small"`  // < 100 lines
	Medium int `json:"medium"` // < 500 lines
	Large  int `json:"large"`
}

// ActiveReviewer is one row of the reviewer leaderboard.
type ActiveReviewer struct {
	Login   string `json:"login"`
	Reviews int    `json:"reviews"`
}

// PRAnalytics is the pull request analytics report for a repository.
type PRAnalytics struct {
	MergeTimeDistribution       []MergeTimeBucket `json:"mergeTimeDistribution"`
	AverageReviewTurnaroundTime float64           `json:"averageReviewTurnaroundTime"` // hours
	PRSizeAnalysis              PRSizeAnalysis    `json:"prSizeAnalysis"`
	ActiveReviewers             []ActiveReviewer  `json:"activeReviewers"`
	SuccessRate                 float64           `json:"successRate"` // percent
	TotalPRs                    int               `json:"totalPRs"`
	MergedPRs                   int               `json:"mergedPRs"`
	ClosedPRs                   int               `json:"closedPRs"`
	OpenPRs                     int               `json:"openPRs"`
}

// CollaborationNode is one person in the collaboration network.
type CollaborationNode struct {
	ID            string   `json:"id"`
	Login         string   `json:"login"`
	AvatarURL     string   `json:"avatarUrl"`
	Contributions int      `json:"contributions"`
	Repos         []string `json:"repos"`
	Type          string   `json:"type"` // always "user"
}

// CollaborationEdge records review interactions between an author and a
// reviewer. Conceptually undirected: one edge exists per unordered pair.
type CollaborationEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Weight int      `json:"weight"`
	Repos  []string `json:"repos"`
	Types  []string `json:"types"`
}

// Collaborator names the most active node in the network.
type Collaborator struct {
	Login         string `json:"login"`
	Contributions int    `json:"contributions"`
}

// CollaborationNetwork is the capped author/reviewer graph across a
// user's repositories.
type CollaborationNetwork struct {
	Nodes                  []CollaborationNode `json:"nodes"`
	Edges                  []CollaborationEdge `json:"edges"`
	TotalCollaborators     int                 `json:"totalCollaborators"`
	TotalRepos             int                 `json:"totalRepos"`
	MostActiveCollaborator *Collaborator       `json:"mostActiveCollaborator"`
}
