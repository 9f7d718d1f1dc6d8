// Package narrative turns computed analytics reports into a short prose
// summary using Gemini. It is optional: without a GEMINI_API_KEY the rest
// of the tool works unchanged.
package narrative

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	genai "google.golang.org/genai"

	"github.com/dlucca/gitgauge/internal/log"
	"github.com/dlucca/gitgauge/internal/model"
)

// DefaultModel is used when the config names no model.
const DefaultModel = "gemini-2.0-flash"

// ErrDisabled is returned when no API key is configured.
var ErrDisabled = errors.New("narrative: GEMINI_API_KEY not set")

// ErrEmptyResponse is returned when the model produced no usable text.
var ErrEmptyResponse = errors.New("narrative: empty model response")

// Input bundles the computed reports a summary draws from. Nil sections
// are omitted from the prompt.
type Input struct {
	Repo    string                    `json:"repo,omitempty"`
	Health  *model.RepoHealthScore    `json:"health,omitempty"`
	Quality *model.CodeQualityMetrics `json:"quality,omitempty"`
	PRs     *model.PRAnalytics        `json:"prs,omitempty"`
}

// Generator produces narrative summaries.
type Generator struct {
	cli   *genai.Client
	model string
}

// Enabled reports whether narrative generation can run in this environment.
func Enabled() bool {
	return os.Getenv("GEMINI_API_KEY") != ""
}

// NewGenerator creates a Generator. The API key is read by the genai client
// from the GEMINI_API_KEY environment variable.
func NewGenerator(ctx context.Context, modelName string) (*Generator, error) {
	if !Enabled() {
		return nil, ErrDisabled
	}
	if modelName == "" {
		modelName = DefaultModel
	}

	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Generator{cli: cli, model: modelName}, nil
}

const summaryPrompt = `You are summarizing software repository analytics for an engineering audience.
Write 2-4 plain sentences covering the repository's overall health, review
culture and dependency hygiene based on the JSON below. Mention concrete
numbers. Do not use markdown or bullet points.`

// Summarize produces a prose summary of the given reports.
func (g *Generator) Summarize(ctx context.Context, in Input) (string, error) {
	payload, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode narrative input: %w", err)
	}

	full := summaryPrompt + "\n\n" + string(payload)
	log.Debug("narrative request", "model", g.model, "bytes", len(full))

	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: full}}}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("narrative generation failed: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
