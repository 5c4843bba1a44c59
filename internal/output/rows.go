// internal/output/rows.go
package output

import (
	"fmt"
	"math"
	"strconv"

	"rescore/internal/engine"
)

// FormatRowTSV returns the TSVHeader columns for h (no trailing newline).
// An undefined p-value prints as NaN; header_sim is empty when not computed.
func FormatRowTSV(h engine.Hit) string {
	a := h.Alignment
	sim := ""
	if h.HeaderSim >= 0 {
		sim = strconv.Itoa(h.HeaderSim)
	}
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%d\t%s\t%d\t%d\t%d\t%d\t%s\t%.4f\t%s",
		h.QueryID, h.TargetID, h.QueryLen, h.TargetLen,
		h.Compact, a.Diagonal, a.DiagonalLen, h.Mode,
		a.Score, a.StartPos, a.EndPos,
		h.GlobalScore, formatP(h.PValue), h.Coverage, sim,
	)
}

func formatP(p float64) string {
	if math.IsNaN(p) {
		return "NaN"
	}
	return strconv.FormatFloat(p, 'g', 4, 64)
}
