package ungapped

import "iter"

// Diagonal convention: d = queryStart - targetStart for the first compared
// pair. d >= 0 starts the window at query[d] / target[0]; d < 0 starts it at
// query[0] / target[-d].
//
// The prefilter stores d truncated to 16 bits. A sequence can be longer than
// 65536 residues, so one compact value stands for a family of true diagonals:
//
//	negative family: compact - k*65536, k = 1 .. 1 + tLen/32768
//	positive family: compact + k*65536, k = 0 .. qLen/65536
//
// Both families are always tried, negative first.
const (
	compactSpan = 1 << 16
	halfSpan    = 1 << 15
)

// Compact truncates a true diagonal to the 16-bit form the prefilter emits.
func Compact(d int) uint16 { return uint16(d) }

// Candidates yields every true diagonal consistent with compact, in the order
// Search evaluates them.
func Candidates(compact uint16, qLen, tLen int) iter.Seq[int] {
	return func(yield func(int) bool) {
		c := int(compact)
		for k := 1; k <= 1+tLen/halfSpan; k++ {
			if !yield(c - k*compactSpan) {
				return
			}
		}
		for k := 0; k <= qLen/compactSpan; k++ {
			if !yield(c + k*compactSpan) {
				return
			}
		}
	}
}

// Window returns the overlap of a query of length qLen and a target of length
// tLen on diagonal d: the comparison starts at query[qOff] and target[tOff]
// and spans n pairs. ok is false when the diagonal misses the other sequence.
func Window(qLen, tLen, d int) (qOff, tOff, n int, ok bool) {
	switch {
	case d >= 0 && d < qLen:
		return d, 0, min(tLen, qLen-d), true
	case d < 0 && -d < tLen:
		return 0, -d, min(tLen+d, qLen), true
	default:
		return 0, 0, 0, false
	}
}

// ByDiagonal scores query q against target t on the true diagonal d.
// A diagonal outside both sequences yields a zero-score result that still
// carries Diagonal and DistToDiagonal.
func ByDiagonal(q, t []byte, d int, sub [][]int8, mode Mode) LocalAlignment {
	res := NoAlignment()
	res.Diagonal = d
	res.DistToDiagonal = abs(d)

	qOff, tOff, n, ok := Window(len(q), len(t), d)
	if !ok {
		return res
	}
	qw, tw := q[qOff:qOff+n], t[tOff:tOff+n]
	res.DiagonalLen = n

	switch mode {
	case Hamming:
		res.Score = IdentityCount(qw, tw)
	case Substitution:
		res.Score = SubstitutionScore(qw, tw, sub, false)
	case Alignment:
		b := SubstitutionBounds(qw, tw, sub)
		res.Score, res.StartPos, res.EndPos = b.Score, b.StartPos, b.EndPos
	case Global:
		res.Score = SubstitutionScore(qw, tw, sub, true)
	}
	return res
}

// Search reconstructs every true diagonal behind compact and returns the best
// scoring one. Only a strictly greater score replaces the current best, so the
// first candidate in search order wins ties. When nothing scores above zero the
// neutral NoAlignment result is returned.
func Search(q, t []byte, compact uint16, sub [][]int8, mode Mode) LocalAlignment {
	best := NoAlignment()
	for d := range Candidates(compact, len(q), len(t)) {
		if r := ByDiagonal(q, t, d, sub, mode); r.Score > best.Score {
			best = r
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
