// Package stats estimates how surprising an ungapped global score is under an
// i.i.d. background residue model.
//
// For a substitution table S and background p (sentinel residue excluded):
//
//	mu    = Σi Σj p[i]·p[j]·S[i][j]
//	sigma = sqrt( Σi Σj p[i]·p[j]·(S[i][j] − mu)² )
//
// and a score s over an ungapped window of length L has
//
//	P = 0.5 − 0.5·erf( (s/L − mu) / (sqrt(2/sqrt(L))·sigma) )
//
// The sqrt(L) inside the variance term is the model's own length scaling and
// is kept as is.
package stats

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrEmptyBackground = errors.New("stats: empty background distribution")
	ErrTableTooSmall   = errors.New("stats: substitution table smaller than background")
)

// Model is the per-position score distribution of one substitution table.
// It is immutable after Derive and safe to share between goroutines.
type Model struct {
	Mu    float64
	Sigma float64
}

// Derive computes Mu and Sigma for sub under background pBack. Only the first
// len(pBack) residues of sub are used, so callers drop the sentinel "any"
// symbol by passing a shorter background.
func Derive(sub [][]int8, pBack []float64) (Model, error) {
	n := len(pBack)
	if n == 0 {
		return Model{}, ErrEmptyBackground
	}
	if len(sub) < n {
		return Model{}, fmt.Errorf("%w: %d rows, %d residues", ErrTableTooSmall, len(sub), n)
	}
	for i := 0; i < n; i++ {
		if len(sub[i]) < n {
			return Model{}, fmt.Errorf("%w: row %d has %d columns, %d residues", ErrTableTooSmall, i, len(sub[i]), n)
		}
	}

	var mu float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			mu += pBack[i] * pBack[j] * float64(sub[i][j])
		}
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d := float64(sub[i][j]) - mu
			v += pBack[i] * pBack[j] * d * d
		}
	}
	return Model{Mu: mu, Sigma: math.Sqrt(v)}, nil
}

// PValue returns the upper-tail probability of seeing score over an ungapped
// window of length length. length == 0 or Sigma == 0 yield NaN or ±Inf
// arguments; callers only ask for real alignments.
func (m Model) PValue(score float64, length int) float64 {
	l := float64(length)
	z := (score/l - m.Mu) / (math.Sqrt(2/math.Sqrt(l)) * m.Sigma)
	return 0.5 - 0.5*math.Erf(z)
}
