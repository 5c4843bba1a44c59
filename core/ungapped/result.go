package ungapped

// LocalAlignment is the outcome of scoring one diagonal.
//
// StartPos/EndPos are 0-based inclusive offsets into the compared window and
// are only filled in Alignment mode; -1/-1 means no positive-scoring stretch.
// Whenever Score > 0 in Alignment mode: 0 <= StartPos <= EndPos < DiagonalLen.
type LocalAlignment struct {
	StartPos       int
	EndPos         int
	Score          int // never negative
	DiagonalLen    int // residue pairs compared on this diagonal
	DistToDiagonal int // |Diagonal|
	Diagonal       int // query start minus target start, see Window
}

// NoAlignment is the neutral result: zero score and no boundaries.
func NoAlignment() LocalAlignment {
	return LocalAlignment{StartPos: -1, EndPos: -1}
}

// HasBounds reports whether StartPos/EndPos describe a real stretch.
func (a LocalAlignment) HasBounds() bool { return a.StartPos >= 0 && a.EndPos >= a.StartPos }
