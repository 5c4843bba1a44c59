package submat

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Load parses an NCBI-style whitespace matrix:
//
//	# comment
//	# background: 0.25 0.25 0.25 0.25
//	   A  C  G  T  N
//	A  1 -1 -1 -1 -1
//	...
//
// The sentinel is X when the header has one, otherwise N. The stop column
// '*' is dropped, and so are the protein ambiguity codes B Z J U O when the
// sentinel is X. The optional background line lists frequencies for the kept
// residues in alphabet order, sentinel excluded; without it the background
// is uniform.
func Load(r io.Reader, name string) (*Matrix, error) {
	sc := bufio.NewScanner(r)

	var (
		header []byte
		bg     []float64
		rows   = map[byte][]int{}
		ln     int
	)
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '#' {
			rest, ok := strings.CutPrefix(strings.TrimSpace(line[1:]), "background:")
			if !ok {
				continue
			}
			for _, f := range strings.Fields(rest) {
				v, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, errors.Wrapf(err, "%s:%d bad background value", name, ln)
				}
				bg = append(bg, v)
			}
			continue
		}

		f := strings.Fields(line)
		if header == nil {
			for _, h := range f {
				if len(h) != 1 {
					return nil, errors.Errorf("%s:%d bad header symbol %q", name, ln, h)
				}
				header = append(header, upper(h[0]))
			}
			continue
		}
		if len(f[0]) != 1 {
			return nil, errors.Errorf("%s:%d bad row label %q", name, ln, f[0])
		}
		if len(f)-1 != len(header) {
			return nil, errors.Errorf("%s:%d row %s has %d scores, header has %d", name, ln, f[0], len(f)-1, len(header))
		}
		label := upper(f[0][0])
		if _, dup := rows[label]; dup {
			return nil, errors.Errorf("%s:%d duplicate row %s", name, ln, f[0])
		}
		vals := make([]int, len(header))
		for i, s := range f[1:] {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, errors.Wrapf(err, "%s:%d bad score", name, ln)
			}
			if v < -128 || v > 127 {
				return nil, errors.Errorf("%s:%d score %d does not fit in int8", name, ln, v)
			}
			vals[i] = v
		}
		rows[label] = vals
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	if header == nil {
		return nil, errors.Errorf("%s: no header row", name)
	}

	col := make(map[byte]int, len(header))
	for i, h := range header {
		col[h] = i
	}
	var sentinel byte
	switch {
	case hasCol(col, 'X'):
		sentinel = 'X'
	case hasCol(col, 'N'):
		sentinel = 'N'
	default:
		return nil, errors.Errorf("%s: header has neither X nor N for the sentinel residue", name)
	}
	drop := "*"
	if sentinel == 'X' {
		drop += "BZJUO"
	}

	var alpha []byte
	for _, h := range header {
		if h == sentinel || strings.IndexByte(drop, h) >= 0 {
			continue
		}
		alpha = append(alpha, h)
	}
	alpha = append(alpha, sentinel)

	scores := make([][]int8, len(alpha))
	for i, a := range alpha {
		row, ok := rows[a]
		if !ok {
			return nil, errors.Errorf("%s: missing row for %c", name, a)
		}
		scores[i] = make([]int8, len(alpha))
		for j, b := range alpha {
			scores[i][j] = int8(row[col[b]])
		}
	}
	return New(name, string(alpha), scores, bg)
}

// LoadFile reads a matrix file; path becomes its Name.
func LoadFile(path string) (*Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	return Load(fh, path)
}

func hasCol(col map[byte]int, c byte) bool {
	_, ok := col[c]
	return ok
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
