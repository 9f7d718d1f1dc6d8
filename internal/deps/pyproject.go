package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var pyprojectEntry = regexp.MustCompile(`^"?([^"]+)"?\s*=\s*"?([^"]+)"?`)

// ParsePyprojectTOML extracts dependencies from a pyproject.toml file.
// This is a deliberate line scanner, not a TOML parser: it tracks entry
// into the dependency sections and matches key = "value" pairs inside
// them. Array-style PEP 621 dependency lists are not understood.
func ParsePyprojectTOML(content string) *model.Manifest {
	dependencies := make(map[string]string)
	devDependencies := make(map[string]string)

	inDeps := false
	inDevDeps := false

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "[project.dependencies]") || strings.HasPrefix(trimmed, "[dependencies]"):
			inDeps, inDevDeps = true, false
			continue
		case strings.HasPrefix(trimmed, "[project.optional-dependencies]") || strings.HasPrefix(trimmed, "[tool.poetry.dev-dependencies]"):
			inDeps, inDevDeps = false, true
			continue
		case strings.HasPrefix(trimmed, "[") || strings.HasPrefix(trimmed, "#"):
			inDeps, inDevDeps = false, false
			continue
		}

		if !inDeps && !inDevDeps {
			continue
		}
		m := pyprojectEntry.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(m[1], `"`, ""))
		version := strings.TrimSpace(strings.ReplaceAll(m[2], `"`, ""))
		if inDeps {
			dependencies[name] = version
		} else {
			devDependencies[name] = version
		}
	}

	if len(dependencies) == 0 && len(devDependencies) == 0 {
		return nil
	}
	manifest := &model.Manifest{
		Dependencies: dependencies,
		Ecosystem:    model.EcosystemPython,
	}
	if len(devDependencies) > 0 {
		manifest.DevDependencies = devDependencies
	}
	return manifest
}
