package deps

import (
	"sort"

	"github.com/dlucca/gitgauge/internal/model"
)

// BuildGraph converts a normalized manifest into a node/edge graph: one
// root node named after the repository with one direct edge per declared
// dependency. Node ids are prefixed by kind so the same package appearing
// as both a dependency and a devDependency stays distinct. Dependencies
// are emitted in name order within each kind, which makes the display cap
// deterministic.
func BuildGraph(m *model.Manifest, repoName string) ([]model.DependencyNode, []model.DependencyEdge) {
	rootID := "root-" + repoName
	nodes := []model.DependencyNode{{
		ID:        rootID,
		Name:      repoName,
		Version:   "1.0.0",
		Type:      model.NodeRoot,
		Ecosystem: m.Ecosystem,
	}}
	var edges []model.DependencyEdge
	seen := map[string]bool{rootID: true}

	add := func(prefix string, kind model.DependencyNodeType, entries map[string]string) {
		for _, name := range sortedKeys(entries) {
			id := prefix + "-" + name
			if !seen[id] {
				seen[id] = true
				nodes = append(nodes, model.DependencyNode{
					ID:        id,
					Name:      name,
					Version:   entries[name],
					Type:      kind,
					Ecosystem: m.Ecosystem,
				})
			}
			edges = append(edges, model.DependencyEdge{
				Source: rootID,
				Target: id,
				Type:   "direct",
			})
		}
	}

	add("dep", model.NodeDependency, m.Dependencies)
	add("dev", model.NodeDevDependency, m.DevDependencies)
	add("peer", model.NodePeerDependency, m.PeerDependencies)

	return nodes, edges
}

// CapGraph truncates the node list to maxNodes and drops edges whose
// endpoints fall outside the surviving set. For large manifests the edge
// count can legitimately be smaller than the dependency count; that is
// the display-capping policy, not data loss upstream.
func CapGraph(nodes []model.DependencyNode, edges []model.DependencyEdge, maxNodes int) ([]model.DependencyNode, []model.DependencyEdge) {
	if len(nodes) > maxNodes {
		nodes = nodes[:maxNodes]
	}
	kept := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		kept[n.ID] = true
	}
	capped := make([]model.DependencyEdge, 0, len(edges))
	for _, e := range edges {
		if kept[e.Source] && kept[e.Target] {
			capped = append(capped, e)
		}
	}
	return nodes, capped
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
