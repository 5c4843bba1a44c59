// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"

	"rescore/internal/candidates"
	"rescore/internal/cmdutil"
	"rescore/internal/engine"
	"rescore/internal/pipeline"
	"rescore/internal/runutil"
	"rescore/internal/writers"
)

// Options are the run-time knobs appcore needs after the inputs are loaded.
type Options struct {
	Threads   int
	DedupeCap int
	Progress  bool

	Quiet           bool
	NoMatchExitCode int
}

// Inputs are the loaded databases and candidate rows.
type Inputs struct {
	Queries    pipeline.Source
	Targets    pipeline.Source
	Candidates []candidates.Candidate
}

// Run rescores every candidate, streams kept hits through wf, and maps the
// outcome to an exit code: 0 ok (or broken pipe), 3 I/O or pipeline error,
// 130 cancelled, o.NoMatchExitCode when nothing was kept.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	in Inputs,
	eng pipeline.Rescorer,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads)
	inCh, writeErr := wf.Start(outw, runutil.ChannelBuffer(thr))

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	warn := &cmdutil.WarnOnce{Dst: stderr, Quiet: o.Quiet}
	cfg := pipeline.Config{
		Threads:   thr,
		DedupeCap: o.DedupeCap,
		OnMissing: func(key string, query bool) {
			side := "target"
			if query {
				side = "query"
			}
			warn.Warnf(side+"\x00"+key, "%s %q not found; skipping its candidates", side, key)
		},
	}
	if o.Progress {
		cfg.Progress = stderr
	}

	sum, perr := pipeline.ForEachHit(ctx, cfg, in.Queries, in.Targets, in.Candidates, eng,
		func(h engine.Hit) error {
			select {
			case inCh <- h:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		return cmdutil.Errorf(stderr, 3, "%v", werr)
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		return cmdutil.Errorf(stderr, 3, "%v", e)
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return 130
		}
		return cmdutil.Errorf(stderr, 3, "%v", perr)
	}
	if sum.Duplicates > 0 {
		cmdutil.Warnf(stderr, o.Quiet, "%d repeated candidate rows scored once", sum.Duplicates)
	}
	if sum.Hits == 0 {
		return o.NoMatchExitCode
	}
	return 0
}
