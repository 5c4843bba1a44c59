// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"rescore/internal/engine"
	"rescore/internal/pretty"
)

// Options shape every hit writer.
type Options struct {
	Sort    bool // order by common.LessHit
	Header  bool // TSV header row (text only)
	MaxHits int  // best N hits per query; 0 = all

	Pretty    bool // alignment block after each row (text only)
	PrettyOpt pretty.Options
}

// buffered reports whether the writer must see every hit before writing.
func (o Options) buffered() bool { return o.Sort || o.MaxHits > 0 }

// HitWriter consumes in until it is closed and writes to out.
type HitWriter func(out io.Writer, in <-chan engine.Hit, opt Options) error

// Writer registry (format → handler). Register in init() blocks of the
// format files; last registration wins.
var hitWriters = map[string]HitWriter{}

func RegisterHit(format string, fn HitWriter) { hitWriters[format] = fn }

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(hitWriters))
	for f := range hitWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// StartHitWriter spins up a writer goroutine for format. The returned error
// channel yields exactly one value after in is closed. An unknown format still
// drains in, so senders never block.
func StartHitWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- engine.Hit, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Hit, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, ok := hitWriters[format]
		if !ok {
			for range in {
			}
			errCh <- fmt.Errorf("unknown hit format %q (no writer registered)", format)
			return
		}
		errCh <- fn(out, in, opt)
	}()
	return in, errCh
}
