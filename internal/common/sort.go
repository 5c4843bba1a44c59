// internal/common/sort.go
package common

import (
	"sort"

	"rescore/internal/engine"
)

// LessHit defines a stable order for hits (for --sort): query, then score
// descending, then target, then true diagonal.
func LessHit(a, b engine.Hit) bool {
	if a.QueryID != b.QueryID {
		return a.QueryID < b.QueryID
	}
	if a.Alignment.Score != b.Alignment.Score {
		return a.Alignment.Score > b.Alignment.Score
	}
	if a.TargetID != b.TargetID {
		return a.TargetID < b.TargetID
	}
	return a.Alignment.Diagonal < b.Alignment.Diagonal
}

func SortHits(hs []engine.Hit) {
	sort.SliceStable(hs, func(i, j int) bool { return LessHit(hs[i], hs[j]) })
}

// CapPerQuery keeps the best limit hits of every query (by score, earlier hit
// first on ties) and preserves the relative order of what it keeps.
// limit <= 0 keeps everything. hs is reused.
func CapPerQuery(hs []engine.Hit, limit int) []engine.Hit {
	if limit <= 0 {
		return hs
	}
	byQuery := make(map[string][]int)
	for i, h := range hs {
		byQuery[h.QueryID] = append(byQuery[h.QueryID], i)
	}
	keep := make([]bool, len(hs))
	for _, idx := range byQuery {
		sort.SliceStable(idx, func(a, b int) bool {
			return hs[idx[a]].Alignment.Score > hs[idx[b]].Alignment.Score
		})
		for _, i := range idx[:min(limit, len(idx))] {
			keep[i] = true
		}
	}
	out := hs[:0]
	for i, h := range hs {
		if keep[i] {
			out = append(out, h)
		}
	}
	return out
}
