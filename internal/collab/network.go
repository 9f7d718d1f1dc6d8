// Package collab builds the cross-repository collaboration graph from
// contributor lists and pull request review activity.
package collab

import (
	"fmt"
	"sort"

	"github.com/dlucca/gitgauge/internal/model"
)

// BuildNetwork assembles the author/reviewer collaboration graph for a set
// of repositories. Contributors seed the node set with their commit counts;
// pull request reviews add zero-contribution nodes for anyone not already
// seen and one edge per unordered author/reviewer pair, weighted by review
// count. Self-reviews are ignored.
//
// The node cap applies in discovery order before ranking, so people from
// repositories scanned earlier survive truncation.
func BuildNetwork(contributors []model.Contributor, prs []model.PullRequest, repos []string, maxNodes, maxEdges int) model.CollaborationNetwork {
	nodes := make([]*model.CollaborationNode, 0, len(contributors))
	edges := make([]*model.CollaborationEdge, 0)
	nodeByLogin := make(map[string]*model.CollaborationNode)
	edgeByKey := make(map[string]*model.CollaborationEdge)

	for _, c := range contributors {
		if existing, ok := nodeByLogin[c.Login]; ok {
			existing.Contributions += c.Contributions
			existing.Repos = unionRepos(existing.Repos, repos)
			continue
		}
		node := &model.CollaborationNode{
			ID:            c.Login,
			Login:         c.Login,
			AvatarURL:     c.AvatarURL,
			Contributions: c.Contributions,
			Repos:         append([]string(nil), repos...),
			Type:          "user",
		}
		nodes = append(nodes, node)
		nodeByLogin[c.Login] = node
	}

	ensure := func(login string) {
		if _, ok := nodeByLogin[login]; ok {
			return
		}
		node := &model.CollaborationNode{
			ID:        login,
			Login:     login,
			AvatarURL: fmt.Sprintf("https://github.com/%s.png", login),
			Repos:     append([]string(nil), repos...),
			Type:      "user",
		}
		nodes = append(nodes, node)
		nodeByLogin[login] = node
	}

	for _, pr := range prs {
		if pr.Author == "" {
			continue
		}
		ensure(pr.Author)

		for _, review := range pr.Reviews {
			reviewer := review.Reviewer
			if reviewer == "" || reviewer == pr.Author {
				continue
			}
			ensure(reviewer)

			key := edgeKey(pr.Author, reviewer)
			if edge, ok := edgeByKey[key]; ok {
				edge.Weight++
				if len(repos) > 0 && !contains(edge.Repos, repos[0]) {
					edge.Repos = append(edge.Repos, repos[0])
				}
				continue
			}
			edge := &model.CollaborationEdge{
				Source: pr.Author,
				Target: reviewer,
				Weight: 1,
				Types:  []string{"review"},
			}
			if len(repos) > 0 {
				edge.Repos = []string{repos[0]}
			}
			edges = append(edges, edge)
			edgeByKey[key] = edge
		}
	}

	if len(nodes) > maxNodes {
		nodes = nodes[:maxNodes]
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return nodes[i].Contributions > nodes[j].Contributions
	})

	kept := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		kept[n.ID] = true
	}

	limitedEdges := make([]*model.CollaborationEdge, 0, len(edges))
	for _, e := range edges {
		if kept[e.Source] && kept[e.Target] {
			limitedEdges = append(limitedEdges, e)
		}
	}
	if len(limitedEdges) > maxEdges {
		limitedEdges = limitedEdges[:maxEdges]
	}
	sort.SliceStable(limitedEdges, func(i, j int) bool {
		return limitedEdges[i].Weight > limitedEdges[j].Weight
	})

	var mostActive *model.Collaborator
	if len(nodes) > 0 {
		mostActive = &model.Collaborator{
			Login:         nodes[0].Login,
			Contributions: nodes[0].Contributions,
		}
	}

	outNodes := make([]model.CollaborationNode, len(nodes))
	for i, n := range nodes {
		outNodes[i] = *n
	}
	outEdges := make([]model.CollaborationEdge, len(limitedEdges))
	for i, e := range limitedEdges {
		outEdges[i] = *e
	}

	return model.CollaborationNetwork{
		Nodes:                  outNodes,
		Edges:                  outEdges,
		TotalCollaborators:     len(outNodes),
		TotalRepos:             len(repos),
		MostActiveCollaborator: mostActive,
	}
}

// edgeKey normalizes an author/reviewer pair so each unordered pair maps to
// a single edge.
func edgeKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "-" + b
}

func unionRepos(existing, extra []string) []string {
	out := existing
	for _, r := range extra {
		if !contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
