package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var gemEntry = regexp.MustCompile(`^gem\s+['"]([^'"]+)['"]\s*(?:,\s*['"]([^'"]+)['"])?`)

// ParseGemfile extracts gem declarations from a Gemfile. A gem without a
// version constraint gets the version "unknown".
func ParseGemfile(content string) *model.Manifest {
	dependencies := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if m := gemEntry.FindStringSubmatch(trimmed); m != nil {
			version := m[2]
			if version == "" {
				version = "unknown"
			}
			dependencies[m[1]] = version
		}
	}

	if len(dependencies) == 0 {
		return nil
	}
	return &model.Manifest{
		Dependencies: dependencies,
		Ecosystem:    model.EcosystemRuby,
	}
}
