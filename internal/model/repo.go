// Package model contains domain types for the gitgauge analytics engine.
// Raw GitHub API payloads are narrowed into these types at the fetch
// boundary; the metric engines operate only on them.
package model

import "time"

// Repo is the subset of repository metadata the scoring engine consumes.
type Repo struct {
	Name          string     `json:"name"`
	FullName      string     `json:"fullName"`
	Description   string     `json:"description,omitempty"`
	DefaultBranch string     `json:"defaultBranch"`
	Stars         int        `json:"stars"`
	Forks         int        `json:"forks"`
	OpenIssues    int        `json:"openIssues"`
	HasWiki       bool       `json:"hasWiki"`
	HasPages      bool       `json:"hasPages"`
	AllowForking  bool       `json:"allowForking"`
	HasLicense    bool       `json:"hasLicense"`
	Private       bool       `json:"private"`
	PushedAt      *time.Time `json:"pushedAt,omitempty"`
}

// Contributor is one entry from the repository contributor statistics.
type Contributor struct {
	Login         string `json:"login"`
	AvatarURL     string `json:"avatarUrl"`
	Contributions int    `json:"contributions"`
}

// Issue carries the timestamps needed for issue-response scoring.
type Issue struct {
	Number    int        `json:"number"`
	CreatedAt time.Time  `json:"createdAt"`
	ClosedAt  *time.Time `json:"closedAt,omitempty"`
}
