package metrics

import (
	"time"

	"github.com/dlucca/gitgauge/config"
	"github.com/dlucca/gitgauge/internal/model"
)

// HealthInput collects the signals the health scorer consumes. The pointer
// fields distinguish "no data" from a measured zero: a repo with no closed
// issues has no response time at all, which is not the same as answering
// instantly.
type HealthInput struct {
	Repo             model.Repo
	ReadmeLength     int
	HasContributing  bool
	HasChangelog     bool
	HasLicense       bool
	HasCodeOfConduct bool
	HasCI            bool

	RecentCommits   int // commits in the recent activity window
	CommitFrequency int

	IssueResponseTime   *float64 // mean hours from open to close
	IssueResolutionRate *float64 // percent of sampled issues closed
}

type tier struct {
	above  int
	points int
}

// Tier tables for each graded signal. The first threshold the value exceeds
// wins.
var (
	readmeTiers          = []tier{{2000, 15}, {1000, 12}, {500, 8}, {100, 5}}
	recentCommitTiers    = []tier{{20, 15}, {10, 12}, {5, 8}, {0, 5}}
	commitFrequencyTiers = []tier{{50, 10}, {20, 8}, {10, 5}, {0, 2}}
	starTiers            = []tier{{1000, 8}, {500, 6}, {100, 4}, {10, 2}}
	forkTiers            = []tier{{100, 6}, {50, 4}, {10, 2}}
)

// Issue response tiers grade mean hours-to-close; lower is better.
var responseTimeTiers = []struct {
	below  float64
	points int
}{
	{24, 15},
	{72, 12},
	{168, 8},
	{720, 4},
}

const (
	docSectionPoints = 5 // CONTRIBUTING, CHANGELOG, CODE_OF_CONDUCT each

	openIssuePointsPerTen = 1
	openIssuePointsMax    = 6

	resolutionBonusMax = 5

	licensePoints      = 3
	ciPoints           = 4
	wikiPoints         = 1
	pagesPoints        = 1
	allowForkingPoints = 1
)

func tierPoints(value int, tiers []tier) int {
	for _, t := range tiers {
		if value > t.above {
			return t.points
		}
	}
	return 0
}

// ScoreHealth computes the composite 0-100 repository health score. Each
// subscore is clamped to its cap before summing, so the overall score never
// exceeds the sum of caps regardless of input.
func ScoreHealth(in HealthInput, w config.HealthWeights) model.RepoHealthScore {
	breakdown := model.HealthBreakdown{
		Documentation: documentationScore(in, w.DocumentationCap),
		Maintenance:   maintenanceScore(in, w.MaintenanceCap),
		Community:     communityScore(in.Repo, w.CommunityCap),
		IssueResponse: issueResponseScore(in, w.IssueResponseCap),
		CodeQuality:   codeQualityScore(in, w.CodeQualityCap),
	}

	return model.RepoHealthScore{
		Overall:         breakdown.Sum(),
		Breakdown:       breakdown,
		Recommendations: healthRecommendations(breakdown, in, w),
		LastCalculated:  time.Now().UTC(),
	}
}

func documentationScore(in HealthInput, limit int) int {
	score := tierPoints(in.ReadmeLength, readmeTiers)
	if in.HasContributing {
		score += docSectionPoints
	}
	if in.HasChangelog {
		score += docSectionPoints
	}
	if in.HasCodeOfConduct {
		score += docSectionPoints
	}
	return min(score, limit)
}

func maintenanceScore(in HealthInput, limit int) int {
	score := tierPoints(in.RecentCommits, recentCommitTiers)
	score += tierPoints(in.CommitFrequency, commitFrequencyTiers)
	return min(score, limit)
}

func communityScore(repo model.Repo, limit int) int {
	score := tierPoints(repo.Stars, starTiers)
	score += tierPoints(repo.Forks, forkTiers)
	if repo.OpenIssues > 0 {
		score += min(openIssuePointsMax, repo.OpenIssues/10*openIssuePointsPerTen)
	}
	return min(score, limit)
}

func issueResponseScore(in HealthInput, limit int) int {
	var score int
	if in.IssueResponseTime != nil {
		for _, t := range responseTimeTiers {
			if *in.IssueResponseTime < t.below {
				score = t.points
				break
			}
		}
	}
	if in.IssueResolutionRate != nil {
		score += int(*in.IssueResolutionRate / 100 * resolutionBonusMax)
	}
	return min(score, limit)
}

func codeQualityScore(in HealthInput, limit int) int {
	var score int
	if in.HasLicense {
		score += licensePoints
	}
	if in.HasCI {
		score += ciPoints
	}
	if in.Repo.HasWiki {
		score += wikiPoints
	}
	if in.Repo.HasPages {
		score += pagesPoints
	}
	if in.Repo.AllowForking {
		score += allowForkingPoints
	}
	return min(score, limit)
}

func healthRecommendations(b model.HealthBreakdown, in HealthInput, w config.HealthWeights) []string {
	var recs []string

	if b.Documentation < w.DocumentationAdvisory {
		if in.ReadmeLength < 500 {
			recs = append(recs, "Add a comprehensive README with installation and usage instructions")
		}
		if !in.HasContributing {
			recs = append(recs, "Add a CONTRIBUTING.md file to guide contributors")
		}
		if !in.HasLicense {
			recs = append(recs, "Add a LICENSE file to clarify usage rights")
		}
	}
	if b.Maintenance < w.MaintenanceAdvisory {
		recs = append(recs, "Increase commit frequency to show active maintenance")
	}
	if b.Community < w.CommunityAdvisory {
		recs = append(recs, "Engage with the community through issues and discussions")
	}
	if b.IssueResponse < w.IssueResponseAdvisory {
		recs = append(recs, "Respond to issues more quickly to improve community engagement")
	}
	if b.CodeQuality < w.CodeQualityAdvisory {
		if !in.HasCI {
			recs = append(recs, "Set up CI/CD to ensure code quality")
		}
		if !in.HasLicense {
			recs = append(recs, "Add a LICENSE file")
		}
	}

	return recs
}
