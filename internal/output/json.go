// internal/output/json.go
package output

import (
	"io"
	"math"

	"rescore/internal/engine"
	"rescore/internal/jsonutil"
	"rescore/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h engine.Hit) api.HitV1 {
	a := h.Alignment
	v := api.HitV1{
		QueryID:         h.QueryID,
		TargetID:        h.TargetID,
		QueryLen:        h.QueryLen,
		TargetLen:       h.TargetLen,
		CompactDiagonal: h.Compact,
		Diagonal:        a.Diagonal,
		DistToDiagonal:  a.DistToDiagonal,
		DiagonalLen:     a.DiagonalLen,
		Mode:            h.Mode.String(),
		Score:           a.Score,
		Start:           a.StartPos,
		End:             a.EndPos,
		GlobalScore:     h.GlobalScore,
		Coverage:        h.Coverage,
	}
	if !math.IsNaN(h.PValue) && !math.IsInf(h.PValue, 0) {
		p := h.PValue
		v.PValue = &p
	}
	if h.HeaderSim >= 0 {
		s := h.HeaderSim
		v.HeaderSim = &s
	}
	return v
}

func toAPIHits(list []engine.Hit) []api.HitV1 {
	out := make([]api.HitV1, 0, len(list))
	for _, h := range list {
		out = append(out, ToAPIHit(h))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 hits (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Hit) error {
	return jsonutil.EncodePretty(w, toAPIHits(list))
}
