package session

import "fmt"

// Status describes where the session sits in the query lifecycle.
type Status int

const (
	// StatusIdle means no query is active. The initial state, and the
	// state a blank query resets to.
	StatusIdle Status = iota

	// StatusSearching means a query is in flight.
	StatusSearching

	// StatusSuccess means the last query returned at least one result.
	StatusSuccess

	// StatusEmpty means the last query completed but matched nothing.
	StatusEmpty

	// StatusError means the last query failed.
	StatusError
)

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "Idle"
	case StatusSearching:
		return "Searching"
	case StatusSuccess:
		return "Success"
	case StatusEmpty:
		return "Empty"
	case StatusError:
		return "Error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}
