package model

import "time"

// Review states as reported by the GitHub review API.
const (
	ReviewApproved         = "APPROVED"
	ReviewChangesRequested = "CHANGES_REQUESTED"
	ReviewCommented        = "COMMENTED"
)

// Review is a single submitted review on a pull request.
type Review struct {
	Reviewer    string     `json:"reviewer,omitempty"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
	State       string     `json:"state"`
}

// PullRequest is the narrowed pull request record. Additions/Deletions are
// only populated when the per-PR detail call succeeded; Reviews is empty
// when the review listing failed or the PR has none.
type PullRequest struct {
	Number    int        `json:"number"`
	Author    string     `json:"author,omitempty"`
	State     string     `json:"state"` // open, closed
	CreatedAt time.Time  `json:"createdAt"`
	MergedAt  *time.Time `json:"mergedAt,omitempty"`
	Additions int        `json:"additions,omitempty"`
	Deletions int        `json:"deletions,omitempty"`
	Reviews   []Review   `json:"reviews,omitempty"`
}

// Merged reports whether the PR was merged.
func (pr *PullRequest) Merged() bool {
	return pr.MergedAt != nil
}
