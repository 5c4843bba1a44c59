// core/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one parsed FASTA entry. ID is the header up to the first blank;
// Desc is the rest of the header line, trimmed.
type Record struct {
	ID   string
	Desc string
	Seq  []byte
}

// maxLine allows very long single-line sequences (64 MiB).
const maxLine = 64 * 1024 * 1024

// ReadCtx parses FASTA from r and calls emit once per record. Sequence lines
// are concatenated with surrounding whitespace removed. Text before the first
// header is ignored. Cancellation is checked between lines.
//
// emit owns the Record it receives. Return a non-nil error to stop early.
func ReadCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		cur    Record
		inRec  bool
		seqBuf = make([]byte, 0, 1<<16)
	)
	flush := func() error {
		if !inRec {
			return nil
		}
		cur.Seq = append([]byte(nil), seqBuf...)
		seqBuf = seqBuf[:0]
		return emit(cur)
	}

	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			cur = Record{}
			cur.ID, cur.Desc = parseHeader(line[1:])
			inRec = true
			continue
		}
		if inRec {
			seqBuf = append(seqBuf, bytes.TrimSpace(line)...)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPathCtx opens path with Open and parses it with ReadCtx.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return ReadCtx(ctx, rc, emit)
}

func parseHeader(hdr []byte) (id, desc string) {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i]), string(bytes.TrimSpace(hdr[i+1:]))
	}
	return string(hdr), ""
}
