package deps

import (
	"encoding/json"

	"github.com/dlucca/gitgauge/internal/model"
)

type packageFile struct {
	Dependencies     map[string]string `json:"dependencies"`
	DevDependencies  map[string]string `json:"devDependencies"`
	PeerDependencies map[string]string `json:"peerDependencies"`
}

// ParsePackageJSON parses a package.json file. Version specs are kept
// verbatim, range operators included. Returns nil on invalid JSON; a
// valid file with no dependency sections still yields a manifest with
// empty maps.
func ParsePackageJSON(content string) *model.Manifest {
	var pkg packageFile
	if err := json.Unmarshal([]byte(content), &pkg); err != nil {
		return nil
	}

	m := &model.Manifest{
		Dependencies:     pkg.Dependencies,
		DevDependencies:  pkg.DevDependencies,
		PeerDependencies: pkg.PeerDependencies,
		Ecosystem:        model.EcosystemNPM,
	}
	if m.Dependencies == nil {
		m.Dependencies = map[string]string{}
	}
	if m.DevDependencies == nil {
		m.DevDependencies = map[string]string{}
	}
	if m.PeerDependencies == nil {
		m.PeerDependencies = map[string]string{}
	}
	return m
}
