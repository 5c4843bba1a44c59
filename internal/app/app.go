// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"

	"rescore-core/submat"

	"rescore/internal/appcore"
	"rescore/internal/candidates"
	"rescore/internal/cli"
	"rescore/internal/cmdutil"
	"rescore/internal/engine"
	"rescore/internal/seqdb"
	"rescore/internal/version"
	"rescore/internal/writers"
)

const name = "rescore"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return code
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		fs.SetOutput(outw)
		if errors.Is(err, flag.ErrHelp) {
			fs.Usage()
			return flush(0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.Usage()
		return flush(2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(0)
	}

	m, err := loadMatrix(opts)
	if err != nil {
		return cmdutil.Errorf(stderr, 2, "%v", err)
	}

	qdb, err := seqdb.Open(parent, opts.QueryFiles, m)
	if err != nil {
		return inputError(stderr, err)
	}
	defer func() { _ = qdb.Close() }()

	tdb := qdb
	if targets := opts.Targets(); !slices.Equal(targets, opts.QueryFiles) {
		if tdb, err = seqdb.Open(parent, targets, m); err != nil {
			return inputError(stderr, err)
		}
		defer func() { _ = tdb.Close() }()
	}
	if qdb.Size() == 0 {
		cmdutil.Warnf(stderr, opts.Quiet, "no query records loaded from %v", opts.QueryFiles)
	}

	cands, err := candidates.Load(opts.CandidateFile, opts.TrueDiagonals)
	if err != nil {
		return inputError(stderr, err)
	}

	eng := engine.New(engine.Config{
		Mode:        opts.Mode,
		Matrix:      m,
		MinScore:    opts.MinScore,
		MaxPValue:   opts.MaxPValue,
		MinCoverage: opts.MinCoverage,
		HeaderSim:   opts.HeaderSim,
		Segments:    opts.Pretty,
	})
	coreOpts := appcore.Options{
		Threads:         opts.Threads,
		DedupeCap:       opts.DedupeCap,
		Progress:        opts.Progress,
		Quiet:           opts.Quiet,
		NoMatchExitCode: opts.NoMatchExitCode,
	}
	in := appcore.Inputs{Queries: qdb, Targets: tdb, Candidates: cands}
	wf := appcore.NewHitWriterFactory(opts.Output, opts.Sort, opts.Header, opts.MaxHits)
	wf.Pretty = opts.Pretty
	return appcore.Run(parent, stdout, stderr, coreOpts, in, eng, wf)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// loadMatrix resolves --matrix to a built-in table or a matrix file.
func loadMatrix(o cli.Options) (*submat.Matrix, error) {
	switch o.Matrix {
	case cli.MatrixBLOSUM62:
		return submat.BLOSUM62(), nil
	case cli.MatrixNucleotide:
		return submat.Nucleotide(int8(o.Match), int8(o.Mismatch)), nil
	default:
		return submat.LoadFile(o.Matrix)
	}
}

func inputError(stderr io.Writer, err error) int {
	if errors.Is(err, context.Canceled) {
		return 130
	}
	return cmdutil.Errorf(stderr, 2, "%v", err)
}
