// Package editdist scores free-text similarity (descriptions, headers) with a
// local, single-row variant of the Levenshtein recurrence.
package editdist

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// stackRow bounds the first-string length served from a fixed array.
const stackRow = 256

// Local returns the best local similarity between s1 and s2, compared byte
// by byte. Each cell is
//
//	max(0, diag±1, left−1, up−1)
//
// with +1 on a match and −1 on a mismatch, and the result is the largest cell
// seen anywhere, not the last one.
//
// If either string is empty the length of the other one is returned. That
// shortcut predates the local scoring and is kept for compatibility.
func Local(s1, s2 string) int {
	m, n := len(s1), len(s2)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	var buf [stackRow + 1]int
	var row []int
	if m <= stackRow {
		row = buf[:m+1]
	} else {
		row = make([]int, m+1)
	}

	best := 0
	for i := 1; i <= n; i++ {
		prev := 0
		c2 := s2[i-1]
		for j := 1; j <= m; j++ {
			sub := row[j-1] - 1
			if s1[j-1] == c2 {
				sub = row[j-1] + 1
			}
			val := max(0, sub, prev-1, row[j]-1)
			if val > best {
				best = val
			}
			row[j-1] = prev
			prev = val
		}
	}
	return best
}

// Descriptions compares two sequence descriptions: surrounding space is
// trimmed and both sides are NFC-normalized so composed and decomposed forms
// of the same text score alike.
func Descriptions(a, b string) int {
	a = norm.NFC.String(strings.TrimSpace(a))
	b = norm.NFC.String(strings.TrimSpace(b))
	return Local(a, b)
}
