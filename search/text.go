package search

import (
	"strings"

	"github.com/poiesic/profind/core"
)

// searchBlob builds the lowercased text a project is matched against.
// Field order mirrors how results read to a user: name first, then
// description, facets, leader, and tags.
func searchBlob(p *core.Project) string {
	parts := make([]string, 0, 5+len(p.Tags))
	parts = append(parts, p.ProjectName, p.Description, p.Category, p.Region, p.ProjectLeader)
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// matchesQuery reports whether the project's searchable text contains the
// query as a case-insensitive substring. An empty query matches nothing.
func matchesQuery(p *core.Project, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	return strings.Contains(searchBlob(p), q)
}
