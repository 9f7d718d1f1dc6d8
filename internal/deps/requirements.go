package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var requirementLine = regexp.MustCompile(`^([a-zA-Z0-9_-]+[a-zA-Z0-9._-]*)([=<>!~]+)?(.+)?$`)

// ParseRequirementsTxt parses a pip requirements.txt file. Blank lines and
// comments are skipped; lines that match no requirement shape are silently
// dropped. Package names are lowercased. An exact "==" pin is stored as the
// bare version; any other operator is kept in the version spec so the
// health classifier sees the range.
func ParseRequirementsTxt(content string) *model.Manifest {
	dependencies := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		m := requirementLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		name := strings.ToLower(m[1])
		op, rest := m[2], strings.TrimSpace(m[3])

		version := "unknown"
		switch {
		case rest == "":
		case op == "" || op == "==":
			version = rest
		default:
			version = op + rest
		}
		dependencies[name] = version
	}

	if len(dependencies) == 0 {
		return nil
	}
	return &model.Manifest{
		Dependencies: dependencies,
		Ecosystem:    model.EcosystemPython,
	}
}
