// internal/pipeline/rescorer.go
package pipeline

import (
	"rescore/internal/engine"
	"rescore/internal/seqdb"
)

// Rescorer is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Rescorer interface {
	Rescore(q, t seqdb.Entry, compact uint16) (engine.Hit, bool)
}

// Source looks records up by key; *seqdb.DB satisfies it.
type Source interface {
	Get(key string) (seqdb.Entry, bool)
}
