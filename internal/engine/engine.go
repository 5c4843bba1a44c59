package engine

import (
	"rescore-core/editdist"
	"rescore-core/submat"
	"rescore-core/ungapped"

	"rescore/internal/seqdb"
)

// Config holds the scoring mode, the table, and the hit filters.
type Config struct {
	Mode   ungapped.Mode
	Matrix *submat.Matrix

	MinScore    int     // hits below are dropped; a zero score is always dropped
	MaxPValue   float64 // 0 = off
	MinCoverage float64 // fraction of the shorter sequence, 0 = off
	HeaderSim   bool    // fill Hit.HeaderSim from the record descriptions
	Segments    bool    // fill Hit.Segment for display
}

// Hit is one rescored candidate.
type Hit struct {
	QueryID   string
	TargetID  string
	QueryLen  int
	TargetLen int
	Compact   uint16
	Mode      ungapped.Mode

	Alignment   ungapped.LocalAlignment
	GlobalScore int     // clamped global sum over the chosen diagonal window
	PValue      float64 // from GlobalScore and Alignment.DiagonalLen
	Coverage    float64 // DiagonalLen / min(QueryLen, TargetLen)
	HeaderSim   int     // -1 when not requested
	Segment     *Segment
}

// Segment is the scored stretch of a hit in letters, for display. It is the
// StartPos..EndPos stretch in Alignment mode and the whole window otherwise.
type Segment struct {
	QueryStart  int // 0-based in the full query
	TargetStart int // 0-based in the full target
	Query       string
	Target      string
	Scores      []int8 // substitution score per column
}

type Engine struct{ cfg Config }

func New(c Config) *Engine { return &Engine{cfg: c} }

// Rescore reconstructs the diagonal behind compact, scores q against t on it
// and applies the filters. ok is false when the pair is dropped.
func (e *Engine) Rescore(q, t seqdb.Entry, compact uint16) (h Hit, ok bool) {
	sub := e.cfg.Matrix.Scores
	a := ungapped.Search(q.Seq, t.Seq, compact, sub, e.cfg.Mode)
	if a.Score <= 0 || a.Score < e.cfg.MinScore {
		return Hit{}, false
	}

	h = Hit{
		QueryID:   q.Key,
		TargetID:  t.Key,
		QueryLen:  q.Len(),
		TargetLen: t.Len(),
		Compact:   compact,
		Mode:      e.cfg.Mode,
		Alignment: a,
		HeaderSim: -1,
	}

	if e.cfg.Mode == ungapped.Global {
		h.GlobalScore = a.Score
	} else {
		qOff, tOff, n, _ := ungapped.Window(q.Len(), t.Len(), a.Diagonal)
		h.GlobalScore = ungapped.SubstitutionScore(q.Seq[qOff:qOff+n], t.Seq[tOff:tOff+n], sub, true)
	}
	h.PValue = e.cfg.Matrix.Stats().PValue(float64(h.GlobalScore), a.DiagonalLen)
	if e.cfg.MaxPValue > 0 && !(h.PValue <= e.cfg.MaxPValue) {
		return Hit{}, false
	}

	h.Coverage = float64(a.DiagonalLen) / float64(min(q.Len(), t.Len()))
	if h.Coverage < e.cfg.MinCoverage {
		return Hit{}, false
	}

	if e.cfg.HeaderSim {
		h.HeaderSim = editdist.Descriptions(q.Desc, t.Desc)
	}
	if e.cfg.Segments {
		h.Segment = e.segment(q.Seq, t.Seq, a)
	}
	return h, true
}

func (e *Engine) segment(q, t []byte, a ungapped.LocalAlignment) *Segment {
	qOff, tOff, n, ok := ungapped.Window(len(q), len(t), a.Diagonal)
	if !ok {
		return nil
	}
	from, to := 0, n-1
	if a.HasBounds() {
		from, to = a.StartPos, a.EndPos
	}
	qs, ts := q[qOff+from:qOff+to+1], t[tOff+from:tOff+to+1]
	scores := make([]int8, len(qs))
	for i := range qs {
		scores[i] = e.cfg.Matrix.Scores[qs[i]][ts[i]]
	}
	return &Segment{
		QueryStart:  qOff + from,
		TargetStart: tOff + from,
		Query:       e.cfg.Matrix.Decode(qs),
		Target:      e.cfg.Matrix.Decode(ts),
		Scores:      scores,
	}
}
