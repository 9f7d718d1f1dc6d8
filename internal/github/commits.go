package github

import (
	"context"
	"fmt"
	"sync"

	gh "github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/model"
)

// ListCommitsWithStats returns up to limit commits from the default branch,
// each enriched with line change stats. The list endpoint omits stats, so
// every commit costs an extra request; commits whose stats fetch fails keep
// a nil Stats and are skipped by the churn analyzer.
func (c *Client) ListCommitsWithStats(ctx context.Context, owner, repo string, limit int) ([]model.Commit, error) {
	perPage := limit
	if perPage > 100 {
		perPage = 100
	}
	commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, repo, &gh.CommitsListOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commits for %s/%s: %w", owner, repo, redact(err))
	}
	if len(commits) > limit {
		commits = commits[:limit]
	}

	out := make([]model.Commit, len(commits))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i, rc := range commits {
		commit := model.Commit{
			SHA:        rc.GetSHA(),
			Message:    rc.GetCommit().GetMessage(),
			AuthorDate: rc.GetCommit().GetAuthor().GetDate().Time,
		}

		g.Go(func() error {
			detail, _, err := c.gh.Repositories.GetCommit(gctx, owner, repo, commit.SHA, nil)
			if err != nil {
				log.Trace("commit stats fetch failed", "repo", owner+"/"+repo, "sha", commit.SHA, "error", redact(err))
			} else if s := detail.GetStats(); s != nil {
				commit.Stats = &model.CommitStats{
					Additions: s.GetAdditions(),
					Deletions: s.GetDeletions(),
					Total:     s.GetTotal(),
				}
			}

			mu.Lock()
			out[i] = commit
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return out, nil
}
