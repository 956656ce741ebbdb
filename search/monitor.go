package search

import "github.com/poiesic/profind/core"

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterCandidateRetrieval(count int)
	Failed(err error)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                   {}
func (n *noopMonitor) AfterCandidateRetrieval(_ int)    {}
func (n *noopMonitor) Failed(_ error)                   {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)    {}
