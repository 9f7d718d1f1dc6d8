package model

import "time"

// CommitStats holds the per-commit diff counters from the commit detail API.
type CommitStats struct {
	Additions int `json:"additions"`
	Deletions int `json:"deletions"`
	Total     int `json:"total"`
}

// Commit is a single commit with its author date and optional stats.
// Stats is nil when the detail fetch for the commit failed; such commits
// are skipped by the churn analyzer rather than failing the batch.
type Commit struct {
	SHA        string       `json:"sha"`
	Message    string       `json:"message,omitempty"`
	AuthorDate time.Time    `json:"authorDate"`
	Stats      *CommitStats `json:"stats,omitempty"`
}
