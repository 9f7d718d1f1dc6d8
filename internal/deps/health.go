package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var exactVersion = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?$`)

// Outdated reports whether a version spec is treated as outdated. The
// heuristic is purely syntactic: anything that is not an exact pinned
// version (range operators, wildcards, empty or unknown specs) counts as
// outdated. No registry is consulted, so an old-but-exact pin scores as
// current.
func Outdated(version string) bool {
	if version == "" || version == "unknown" {
		return true
	}
	v := strings.TrimSpace(version)
	if exactVersion.MatchString(v) {
		return false
	}
	if strings.ContainsAny(v, "~^><=*x") {
		return true
	}
	return len(v) == 0
}

// AnalyzeHealth classifies each dependency and devDependency of a
// manifest as pinned or outdated. A nil manifest yields an all-zero
// report, never an error.
func AnalyzeHealth(m *model.Manifest) model.DependencyHealth {
	health := model.DependencyHealth{
		Ecosystems: map[model.Ecosystem]model.EcosystemHealth{},
	}
	if m == nil {
		return health
	}

	for _, specs := range []map[string]string{m.Dependencies, m.DevDependencies} {
		for _, version := range specs {
			health.Total++
			if Outdated(version) {
				health.Outdated++
			}
		}
	}
	health.Latest = health.Total - health.Outdated
	health.Ecosystems[m.Ecosystem] = model.EcosystemHealth{
		Total:    health.Total,
		Outdated: health.Outdated,
	}
	return health
}
