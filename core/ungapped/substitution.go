package ungapped

// SubstitutionScore scores two pre-aligned windows of equal length with sub.
//
// global=false: best contiguous stretch (running sum floored at 0, max kept).
// global=true:  plain sum over every position, floored at 0 only at the end.
//
// Only the first min(len(a), len(b)) positions are compared.
func SubstitutionScore(a, b []byte, sub [][]int8, global bool) int {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	if global {
		sum := 0
		for i := range a {
			sum += int(sub[a[i]][b[i]])
		}
		if sum < 0 {
			return 0
		}
		return sum
	}

	best, run := 0, 0
	for i := range a {
		run += int(sub[a[i]][b[i]])
		if run < 0 {
			run = 0
		}
		if run > best {
			best = run
		}
	}
	return best
}

// SubstitutionBounds is the local running-max scan that also reports where
// the best stretch starts and ends.
//
// The candidate start is one past the last position where the running score
// fell to zero or below. Boundaries move only on a strictly greater maximum,
// so on ties the earliest stretch is kept.
func SubstitutionBounds(a, b []byte, sub [][]int8) LocalAlignment {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	res := NoAlignment()
	best, run, lastZero := 0, 0, -1
	for i := range a {
		run += int(sub[a[i]][b[i]])
		if run <= 0 {
			run = 0
			lastZero = i
		}
		if run > best {
			best = run
			res.StartPos = lastZero + 1
			res.EndPos = i
		}
	}
	res.Score = best
	res.DiagonalLen = n
	return res
}
