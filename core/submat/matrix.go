// Package submat holds substitution tables together with the alphabet that
// encodes residues into table indices.
//
// The last alphabet symbol is always the sentinel "any" residue (X for
// proteins, N for nucleotides). Unknown letters encode to it, and it is left
// out of the background distribution.
package submat

import (
	"math"

	"github.com/pkg/errors"

	"rescore-core/stats"
)

var (
	ErrShape      = errors.New("submat: table is not square over the alphabet")
	ErrBackground = errors.New("submat: bad background distribution")
)

// Matrix is an immutable substitution table. Build it with New, Load,
// BLOSUM62 or Nucleotide; share it freely afterwards.
type Matrix struct {
	Name       string
	Alphabet   string    // residue letters, sentinel last
	Scores     [][]int8  // Scores[i][j] for codes i, j
	Background []float64 // len(Alphabet)-1, sums to 1

	model stats.Model
	codes [256]byte
}

// New validates the table, normalizes the background (nil means uniform) and
// derives the significance model once.
func New(name, alphabet string, scores [][]int8, background []float64) (*Matrix, error) {
	n := len(alphabet)
	if n < 2 || n > 255 {
		return nil, errors.Wrapf(ErrShape, "alphabet size %d", n)
	}
	if len(scores) != n {
		return nil, errors.Wrapf(ErrShape, "%d rows for %d letters", len(scores), n)
	}
	for i, row := range scores {
		if len(row) != n {
			return nil, errors.Wrapf(ErrShape, "row %c has %d columns", alphabet[i], len(row))
		}
	}

	bg, err := normalizeBackground(background, n-1)
	if err != nil {
		return nil, err
	}
	model, err := stats.Derive(scores, bg)
	if err != nil {
		return nil, errors.Wrap(err, name)
	}

	m := &Matrix{
		Name:       name,
		Alphabet:   alphabet,
		Scores:     scores,
		Background: bg,
		model:      model,
	}
	sentinel := m.Sentinel()
	for i := range m.codes {
		m.codes[i] = sentinel
	}
	for i := 0; i < n; i++ {
		c := alphabet[i]
		m.codes[c] = byte(i)
		if 'A' <= c && c <= 'Z' {
			m.codes[c+'a'-'A'] = byte(i)
		}
	}
	return m, nil
}

func normalizeBackground(p []float64, n int) ([]float64, error) {
	if p == nil {
		out := make([]float64, n)
		for i := range out {
			out[i] = 1 / float64(n)
		}
		return out, nil
	}
	if len(p) != n {
		return nil, errors.Wrapf(ErrBackground, "%d frequencies for %d residues", len(p), n)
	}
	sum := 0.0
	for i, v := range p {
		if v < 0 || math.IsNaN(v) {
			return nil, errors.Wrapf(ErrBackground, "frequency %d is %v", i, v)
		}
		sum += v
	}
	if sum <= 0 {
		return nil, errors.Wrapf(ErrBackground, "frequencies sum to %v", sum)
	}
	out := make([]float64, n)
	for i, v := range p {
		out[i] = v / sum
	}
	return out, nil
}

// Size is the alphabet size including the sentinel.
func (m *Matrix) Size() int { return len(m.Alphabet) }

// Sentinel is the code of the "any" residue.
func (m *Matrix) Sentinel() byte { return byte(len(m.Alphabet) - 1) }

// Stats is the significance model derived at construction.
func (m *Matrix) Stats() stats.Model { return m.model }

// Code maps one letter to its residue code.
func (m *Matrix) Code(c byte) byte { return m.codes[c] }

// Encode maps letters to residue codes into a new slice. Letters outside the
// alphabet become the sentinel.
func (m *Matrix) Encode(seq []byte) []byte {
	out := make([]byte, len(seq))
	for i, c := range seq {
		out[i] = m.Code(c)
	}
	return out
}

// Decode maps residue codes back to letters (for display).
func (m *Matrix) Decode(codes []byte) string {
	out := make([]byte, len(codes))
	for i, c := range codes {
		if int(c) < len(m.Alphabet) {
			out[i] = m.Alphabet[c]
		} else {
			out[i] = '?'
		}
	}
	return string(out)
}
