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

// detailConcurrency bounds the parallel per-PR detail fetches.
const detailConcurrency = 10

// ListPullRequests returns up to limit pull requests in any state, most
// recently updated first. The list endpoint does not include diff sizes or
// reviews; see FetchPullDetails.
func (c *Client) ListPullRequests(ctx context.Context, owner, repo string, limit int) ([]model.PullRequest, error) {
	perPage := limit
	if perPage > 100 {
		perPage = 100
	}
	prs, _, err := c.gh.PullRequests.List(ctx, owner, repo, &gh.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		ListOptions: gh.ListOptions{PerPage: perPage},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", owner, repo, redact(err))
	}

	if len(prs) > limit {
		prs = prs[:limit]
	}
	out := make([]model.PullRequest, 0, len(prs))
	for _, pr := range prs {
		out = append(out, convertPull(pr))
	}
	return out, nil
}

// FetchPullDetails enriches up to sample pull requests with diff sizes and
// reviews, fetching concurrently. A PR whose detail fetch fails is dropped;
// a PR whose review fetch fails keeps an empty review list.
func (c *Client) FetchPullDetails(ctx context.Context, owner, repo string, prs []model.PullRequest, sample int) []model.PullRequest {
	if len(prs) > sample {
		prs = prs[:sample]
	}

	detailed := make([]model.PullRequest, len(prs))
	ok := make([]bool, len(prs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i, pr := range prs {
		g.Go(func() error {
			detail, _, err := c.gh.PullRequests.Get(gctx, owner, repo, pr.Number)
			if err != nil {
				log.Debug("pull detail fetch failed", "repo", owner+"/"+repo, "number", pr.Number, "error", redact(err))
				return nil
			}

			full := convertPull(detail)
			full.Additions = detail.GetAdditions()
			full.Deletions = detail.GetDeletions()
			full.Reviews = c.listReviews(gctx, owner, repo, pr.Number)

			mu.Lock()
			detailed[i] = full
			ok[i] = true
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	out := make([]model.PullRequest, 0, len(prs))
	for i, keep := range ok {
		if keep {
			out = append(out, detailed[i])
		}
	}
	return out
}

func (c *Client) listReviews(ctx context.Context, owner, repo string, number int) []model.Review {
	reviews, _, err := c.gh.PullRequests.ListReviews(ctx, owner, repo, number, &gh.ListOptions{PerPage: 100})
	if err != nil {
		log.Trace("review fetch failed", "repo", owner+"/"+repo, "number", number, "error", redact(err))
		return nil
	}

	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		review := model.Review{
			Reviewer: r.GetUser().GetLogin(),
			State:    r.GetState(),
		}
		if r.SubmittedAt != nil {
			t := r.GetSubmittedAt().Time
			review.SubmittedAt = &t
		}
		out = append(out, review)
	}
	return out
}

func convertPull(pr *gh.PullRequest) model.PullRequest {
	out := model.PullRequest{
		Number:    pr.GetNumber(),
		Author:    pr.GetUser().GetLogin(),
		State:     pr.GetState(),
		CreatedAt: pr.GetCreatedAt().Time,
	}
	if pr.MergedAt != nil {
		t := pr.GetMergedAt().Time
		out.MergedAt = &t
	}
	return out
}
