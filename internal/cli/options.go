// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"slices"
	"strings"

	"rescore-core/ungapped"

	"rescore/internal/cliutil"
	"rescore/internal/writers"
)

// Built-in matrix names for --matrix; anything else is a file path.
const (
	MatrixBLOSUM62   = "blosum62"
	MatrixNucleotide = "nucleotide"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input
	QueryFiles    []string
	TargetFiles   []string // empty: search the queries against themselves
	CandidateFile string
	TrueDiagonals bool

	// Scoring
	ModeName string
	Mode     ungapped.Mode
	Matrix   string
	Match    int
	Mismatch int

	// Filters
	MinScore    int
	MaxPValue   float64
	MinCoverage float64
	HeaderSim   bool

	// Performance
	Threads   int
	DedupeCap int

	// Output
	Output          string // text|json|jsonl
	Sort            bool
	Pretty          bool
	MaxHits         int
	Header          bool // true unless --no-header
	NoMatchExitCode int

	// Misc
	Progress bool
	Quiet    bool
	Version  bool
}

// Targets returns the target files, falling back to the queries.
func (o Options) Targets() []string {
	if len(o.TargetFiles) == 0 {
		return o.QueryFiles
	}
	return o.TargetFiles
}

// register wires every flag onto fs and returns the --no-header and --help
// bools the caller resolves after parsing.
func register(fs *flag.FlagSet, o *Options) (noHeader, help *bool) {
	noHeader, help = new(bool), new(bool)

	// Input
	fs.Var(cliutil.StringList{Dst: &o.QueryFiles}, "queries", "query FASTA file(s) (repeatable) or '-'")
	fs.Var(cliutil.StringList{Dst: &o.QueryFiles}, "q", "alias of --queries")
	fs.Var(cliutil.StringList{Dst: &o.TargetFiles}, "targets", "target FASTA file(s) (repeatable); default: the queries")
	fs.Var(cliutil.StringList{Dst: &o.TargetFiles}, "t", "alias of --targets")
	fs.StringVar(&o.CandidateFile, "candidates", "", "prefilter TSV: query target diagonal")
	fs.StringVar(&o.CandidateFile, "c", "", "alias of --candidates")
	fs.BoolVar(&o.TrueDiagonals, "true-diagonals", false, "candidate diagonals are signed true offsets, not 16-bit compact values [false]")

	// Scoring
	fs.StringVar(&o.ModeName, "mode", "alignment", "scoring: hamming | substitution | alignment | global [alignment]")
	fs.StringVar(&o.Matrix, "matrix", MatrixBLOSUM62, "substitution table: blosum62 | nucleotide | PATH [blosum62]")
	fs.IntVar(&o.Match, "match", 1, "nucleotide match score [1]")
	fs.IntVar(&o.Mismatch, "mismatch", -1, "nucleotide mismatch score [-1]")

	// Filters
	fs.IntVar(&o.MinScore, "min-score", 0, "drop hits scoring below N [0]")
	fs.Float64Var(&o.MaxPValue, "max-pvalue", 0, "drop hits with a larger p-value (0=off) [0]")
	fs.Float64Var(&o.MinCoverage, "min-coverage", 0, "minimum diagonal length / shorter sequence length [0]")
	fs.BoolVar(&o.HeaderSim, "header-sim", false, "report description similarity [false]")

	// Performance
	fs.IntVar(&o.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&o.Threads, "j", 0, "alias of --threads")
	fs.IntVar(&o.DedupeCap, "dedupe-cap", 0, "repeated-candidate window (0=default) [0]")

	// Output
	fs.StringVar(&o.Output, "output", "text", "output: "+strings.Join(writers.Formats(), " | ")+" [text]")
	fs.StringVar(&o.Output, "o", "text", "alias of --output")
	fs.BoolVar(&o.Sort, "sort", false, "sort by query, score, target, diagonal [false]")
	fs.BoolVar(&o.Pretty, "pretty", false, "pretty ASCII alignment block (text) [false]")
	fs.IntVar(&o.MaxHits, "max-hits", 0, "keep the best N hits per query (0=all) [0]")
	fs.BoolVar(noHeader, "no-header", false, "suppress header line [false]")
	fs.IntVar(&o.NoMatchExitCode, "no-match-exit-code", 1, "exit code when no hits are found [1]")

	// Misc
	fs.BoolVar(&o.Progress, "progress", false, "progress bar on stderr [false]")
	fs.BoolVar(&o.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&o.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&o.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(help, "h", false, "show this help message [false]")
	fs.BoolVar(help, "help", false, "show this help message [false]")
	return noHeader, help
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positional arguments are extra target FASTA files (globs expanded).
// flag.ErrHelp is returned when help was requested.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	noHeader, help := register(fs, &o)
	installUsage(fs)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return o, err
	}
	if *help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}
	o.Header = !*noHeader
	posArgs = append(posArgs, fs.Args()...)
	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return o, err
		}
		o.TargetFiles = append(o.TargetFiles, exp...)
	}
	return o, Validate(&o)
}

// Validate applies the CLI invariants and resolves Mode from ModeName.
func Validate(o *Options) error {
	if len(o.QueryFiles) == 0 {
		return errors.New("at least one --queries file is required")
	}
	if o.CandidateFile == "" {
		return errors.New("--candidates is required")
	}
	stdin := 0
	for _, f := range append(append([]string{o.CandidateFile}, o.QueryFiles...), o.TargetFiles...) {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return errors.New("'-' (stdin) may be used for one input only")
	}

	m, err := ungapped.ParseMode(o.ModeName)
	if err != nil {
		return err
	}
	o.Mode = m
	if strings.TrimSpace(o.Matrix) == "" {
		return errors.New("--matrix must not be empty")
	}
	if o.Match < 1 || o.Match > 127 {
		return errors.New("--match must be between 1 and 127")
	}
	if o.Mismatch < -128 || o.Mismatch >= o.Match {
		return errors.New("--mismatch must be between -128 and --match - 1")
	}

	if o.MinScore < 0 {
		return errors.New("--min-score must be ≥ 0")
	}
	if o.MaxPValue < 0 || o.MaxPValue > 1 {
		return errors.New("--max-pvalue must be between 0 and 1")
	}
	if o.MinCoverage < 0 || o.MinCoverage > 1 {
		return errors.New("--min-coverage must be between 0 and 1")
	}
	if o.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if o.DedupeCap < 0 {
		return errors.New("--dedupe-cap must be ≥ 0")
	}
	if o.MaxHits < 0 {
		return errors.New("--max-hits must be ≥ 0")
	}
	if formats := writers.Formats(); !slices.Contains(formats, o.Output) {
		return fmt.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(formats, " | "))
	}
	if o.Pretty && o.Output != "text" {
		return errors.New("--pretty requires --output text")
	}
	if o.NoMatchExitCode < 0 || o.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	return nil
}
