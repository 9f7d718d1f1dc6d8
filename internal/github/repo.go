package github

import (
	"context"
	"fmt"
	"time"

	gh "github.com/google/go-github/v57/github"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/model"
)

// GetRepo fetches repository metadata.
func (c *Client) GetRepo(ctx context.Context, owner, repo string) (model.Repo, error) {
	r, _, err := c.gh.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return model.Repo{}, fmt.Errorf("failed to fetch repo %s/%s: %w", owner, repo, redact(err))
	}
	return convertRepo(r), nil
}

// ListUserRepos returns a user's (or organization's) repositories, most
// recently updated first, up to limit.
func (c *Client) ListUserRepos(ctx context.Context, user string, limit int) ([]model.Repo, error) {
	u, _, err := c.gh.Users.Get(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", user, redact(err))
	}

	var repos []*gh.Repository
	if u.GetType() == "Organization" {
		repos, _, err = c.gh.Repositories.ListByOrg(ctx, user, &gh.RepositoryListByOrgOptions{
			Sort:        "updated",
			ListOptions: gh.ListOptions{PerPage: 100},
		})
	} else {
		repos, _, err = c.gh.Repositories.List(ctx, user, &gh.RepositoryListOptions{
			Sort:        "updated",
			ListOptions: gh.ListOptions{PerPage: 100},
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list repos for %s: %w", user, redact(err))
	}

	if len(repos) > limit {
		repos = repos[:limit]
	}
	out := make([]model.Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, convertRepo(r))
	}
	return out, nil
}

// ReadmeLength returns the decoded length of the repository README, or 0
// when the repo has none.
func (c *Client) ReadmeLength(ctx context.Context, owner, repo string) int {
	readme, _, err := c.gh.Repositories.GetReadme(ctx, owner, repo, nil)
	if err != nil {
		if !isNotFound(err) {
			log.Debug("readme fetch failed", "repo", owner+"/"+repo, "error", redact(err))
		}
		return 0
	}
	content, err := readme.GetContent()
	if err != nil {
		return 0
	}
	return len(content)
}

// HasFile reports whether a path exists in the repository's default branch.
func (c *Client) HasFile(ctx context.Context, owner, repo, path string) bool {
	file, dir, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if !isNotFound(err) {
			log.Trace("content check failed", "repo", owner+"/"+repo, "path", path, "error", redact(err))
		}
		return false
	}
	return file != nil || len(dir) > 0
}

// RecentCommitCount counts commits on the default branch since the given
// time, sampling at most one page.
func (c *Client) RecentCommitCount(ctx context.Context, owner, repo string, since time.Time) int {
	commits, _, err := c.gh.Repositories.ListCommits(ctx, owner, repo, &gh.CommitsListOptions{
		Since:       since,
		ListOptions: gh.ListOptions{PerPage: 30},
	})
	if err != nil {
		log.Debug("recent commit fetch failed", "repo", owner+"/"+repo, "error", redact(err))
		return 0
	}
	return len(commits)
}

// ListIssues samples the repository's most recent issues in any state.
// Pull requests share the issues endpoint and are filtered out.
func (c *Client) ListIssues(ctx context.Context, owner, repo string, limit int) ([]model.Issue, error) {
	issues, _, err := c.gh.Issues.ListByRepo(ctx, owner, repo, &gh.IssueListByRepoOptions{
		State:       "all",
		ListOptions: gh.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list issues for %s/%s: %w", owner, repo, redact(err))
	}

	out := make([]model.Issue, 0, len(issues))
	for _, is := range issues {
		if is.IsPullRequest() {
			continue
		}
		issue := model.Issue{
			Number:    is.GetNumber(),
			CreatedAt: is.GetCreatedAt().Time,
		}
		if is.ClosedAt != nil {
			closed := is.GetClosedAt().Time
			issue.ClosedAt = &closed
		}
		out = append(out, issue)
	}
	return out, nil
}

// ListContributors samples the repository's top contributors.
func (c *Client) ListContributors(ctx context.Context, owner, repo string, limit int) ([]model.Contributor, error) {
	contributors, _, err := c.gh.Repositories.ListContributors(ctx, owner, repo, &gh.ListContributorsOptions{
		ListOptions: gh.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contributors for %s/%s: %w", owner, repo, redact(err))
	}

	out := make([]model.Contributor, 0, len(contributors))
	for _, contrib := range contributors {
		out = append(out, model.Contributor{
			Login:         contrib.GetLogin(),
			AvatarURL:     contrib.GetAvatarURL(),
			Contributions: contrib.GetContributions(),
		})
	}
	return out, nil
}

func convertRepo(r *gh.Repository) model.Repo {
	var pushedAt *time.Time
	if r.PushedAt != nil {
		t := r.GetPushedAt().Time
		pushedAt = &t
	}
	return model.Repo{
		Name:          r.GetName(),
		FullName:      r.GetFullName(),
		Description:   r.GetDescription(),
		DefaultBranch: r.GetDefaultBranch(),
		Stars:         r.GetStargazersCount(),
		Forks:         r.GetForksCount(),
		OpenIssues:    r.GetOpenIssuesCount(),
		HasWiki:       r.GetHasWiki(),
		HasPages:      r.GetHasPages(),
		AllowForking:  r.GetAllowForking(),
		HasLicense:    r.GetLicense() != nil,
		Private:       r.GetPrivate(),
		PushedAt:      pushedAt,
	}
}
