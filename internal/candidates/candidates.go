// Package candidates reads the prefilter's (query, target, diagonal) rows.
package candidates

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"rescore-core/fasta"
	"rescore-core/ungapped"
)

// Candidate is one pair to rescore. Diagonal is always the compact 16-bit form.
type Candidate struct {
	Query    string
	Target   string
	Diagonal uint16
}

// Load reads a candidate file; "-" is stdin and gzip is detected.
func Load(path string, trueDiagonals bool) ([]Candidate, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "candidates")
	}
	defer func() { _ = rc.Close() }()
	return Parse(rc, path, trueDiagonals)
}

// Parse reads whitespace-separated rows
//
//	query_id  target_id  diagonal
//
// skipping blank lines and # comments. The diagonal must be a compact value
// in [0,65535] unless trueDiagonals is set, in which case any signed true
// diagonal is accepted and compacted.
func Parse(r io.Reader, name string, trueDiagonals bool) ([]Candidate, error) {
	var list []Candidate
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 3 {
			return nil, errors.Errorf("%s:%d want 3 fields (query target diagonal), got %d", name, ln, len(f))
		}
		d, err := strconv.Atoi(f[2])
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d bad diagonal", name, ln)
		}
		var c uint16
		switch {
		case trueDiagonals:
			c = ungapped.Compact(d)
		case d < 0 || d > 65535:
			return nil, errors.Errorf("%s:%d diagonal %d is outside the compact range 0..65535 (use --true-diagonals for signed offsets)", name, ln, d)
		default:
			c = uint16(d)
		}
		list = append(list, Candidate{Query: f[0], Target: f[1], Diagonal: c})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, name)
	}
	return list, nil
}
