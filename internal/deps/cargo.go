package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var cargoEntry = regexp.MustCompile(`^([a-zA-Z0-9_-]+)\s*=\s*"([^"]+)"`)

// ParseCargoTOML extracts crates from the [dependencies] section of a
// Cargo.toml file. Inline-table and workspace dependency forms are not
// matched; only the common name = "version" shape is recognized.
func ParseCargoTOML(content string) *model.Manifest {
	dependencies := make(map[string]string)
	inDeps := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "[dependencies]") {
			inDeps = true
			continue
		}
		if strings.HasPrefix(trimmed, "[") && !strings.HasPrefix(trimmed, "[dependencies") {
			inDeps = false
			continue
		}

		if !inDeps || trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if m := cargoEntry.FindStringSubmatch(trimmed); m != nil {
			dependencies[m[1]] = m[2]
		}
	}

	if len(dependencies) == 0 {
		return nil
	}
	return &model.Manifest{
		Dependencies: dependencies,
		Ecosystem:    model.EcosystemRust,
	}
}
