package deps

import (
	"regexp"
	"strings"

	"github.com/dlucca/gitgauge/internal/model"
)

var goRequire = regexp.MustCompile(`^require\s+(\S+)\s+(\S+)`)

// ParseGoMod extracts single-line require directives from a go.mod file.
// Grouped require blocks are not expanded; this mirrors what can be read
// without the go toolchain.
func ParseGoMod(content string) *model.Manifest {
	dependencies := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "module ") {
			continue
		}
		if m := goRequire.FindStringSubmatch(trimmed); m != nil {
			dependencies[m[1]] = m[2]
		}
	}

	if len(dependencies) == 0 {
		return nil
	}
	return &model.Manifest{
		Dependencies: dependencies,
		Ecosystem:    model.EcosystemGo,
	}
}
