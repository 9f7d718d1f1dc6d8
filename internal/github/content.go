package github

import (
	"context"

	"github.com/dlucca/gitgauge/internal/deps"
	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/model"
)

// FetchManifest walks the known manifest filenames in priority order and
// returns the first one the repository carries, parsed. It returns nil when
// the repo has no recognizable manifest, which callers treat as "no
// dependency data" rather than an error.
func (c *Client) FetchManifest(ctx context.Context, owner, repo string) *model.Manifest {
	for _, p := range deps.Parsers() {
		content := c.fileContent(ctx, owner, repo, p.Filename)
		if content == "" {
			continue
		}
		if m := p.Parse(content); m != nil {
			log.Debug("manifest found", "repo", owner+"/"+repo, "file", p.Filename)
			return m
		}
	}
	return nil
}

// fileContent returns the decoded content of a file, or "" when the file is
// absent or unreadable.
func (c *Client) fileContent(ctx context.Context, owner, repo, path string) string {
	file, _, _, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, nil)
	if err != nil {
		if !isNotFound(err) {
			log.Trace("file fetch failed", "repo", owner+"/"+repo, "path", path, "error", redact(err))
		}
		return ""
	}
	if file == nil {
		return ""
	}
	content, err := file.GetContent()
	if err != nil {
		return ""
	}
	return content
}
