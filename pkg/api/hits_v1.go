// pkg/api/hits_v1.go
package api

// HitV1 is the stable JSON/JSONL schema for one rescored candidate.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type HitV1 struct {
	QueryID         string   `json:"query_id"`
	TargetID        string   `json:"target_id"`
	QueryLen        int      `json:"query_len"`
	TargetLen       int      `json:"target_len"`
	CompactDiagonal uint16   `json:"compact_diagonal"`
	Diagonal        int      `json:"diagonal"`
	DistToDiagonal  int      `json:"dist_to_diagonal"`
	DiagonalLen     int      `json:"diagonal_len"`
	Mode            string   `json:"mode"`
	Score           int      `json:"score"`
	Start           int      `json:"start"` // -1 unless mode is "alignment"
	End             int      `json:"end"`   // inclusive; -1 unless mode is "alignment"
	GlobalScore     int      `json:"global_score"`
	PValue          *float64 `json:"p_value"` // null when the model is degenerate
	Coverage        float64  `json:"coverage"`
	HeaderSim       *int     `json:"header_sim,omitempty"`
}
