package badger

import (
	"fmt"

	"github.com/poiesic/profind/core"
)

// Key prefixes for different data types
const (
	projectRecordPrefix = "projrec"
	projectNumberPrefix = "projnum"
	projectIDSeq        = "projrecseq"
)

// makeProjectKey generates a key for a project by ID.
func makeProjectKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", projectRecordPrefix, id))
}

// makeProjectNumberKey generates a key for the project number index.
// Format: prefix:number
func makeProjectNumberKey(number string) []byte {
	return []byte(fmt.Sprintf("%s:%s", projectNumberPrefix, number))
}
