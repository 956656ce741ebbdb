package search

import (
	"sort"

	"github.com/poiesic/profind/core"
)

// Match returns the projects whose searchable text contains the query.
func Match(projects []*core.Project, query string) []*core.Project {
	var out []*core.Project
	for _, p := range projects {
		if matchesQuery(p, query) {
			out = append(out, p)
		}
	}
	return out
}

// ApplyFilters narrows projects by the filter state.
// Stages run in a fixed order: trust floor, categories, regions.
func ApplyFilters(projects []*core.Project, filters core.FilterState) []*core.Project {
	var out []*core.Project
	for _, p := range projects {
		if p.TrustScore < filters.MinTrustScore {
			continue
		}
		if !filters.AllowsCategory(p.Category) {
			continue
		}
		if !filters.AllowsRegion(p.Region) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Rank orders results by score descending. The sort is stable so equal
// scores keep their corpus order.
func Rank(results []*core.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
