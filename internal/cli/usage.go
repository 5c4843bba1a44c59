// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"
	"strings"

	"rescore/internal/version"
	"rescore/internal/writers"
)

// installUsage sets the grouped help text on fs.
func installUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(name string) string {
			if f := fs.Lookup(name); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – ungapped rescoring of prefilter candidates\n\n", fs.Name())
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s -q queries.fa [-t targets.fa ...] -c candidates.tsv [flags] [targets.fa ...]\n", fs.Name())

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -q, --queries file          Query FASTA file(s) (repeatable) or '-' for STDIN [*]")
		fmt.Fprintln(out, "  -t, --targets file          Target FASTA file(s) (repeatable); default: the queries")
		fmt.Fprintln(out, "  -c, --candidates file       Prefilter TSV: query_id target_id diagonal [*]")
		fmt.Fprintf(out, "      --true-diagonals        Diagonals are signed true offsets [%s]\n", def("true-diagonals"))

		fmt.Fprintln(out, "\nScoring:")
		fmt.Fprintf(out, "      --mode string           hamming | substitution | alignment | global [%s]\n", def("mode"))
		fmt.Fprintf(out, "      --matrix string         blosum62 | nucleotide | PATH [%s]\n", def("matrix"))
		fmt.Fprintf(out, "      --match int             Nucleotide match score [%s]\n", def("match"))
		fmt.Fprintf(out, "      --mismatch int          Nucleotide mismatch score [%s]\n", def("mismatch"))

		fmt.Fprintln(out, "\nFilters:")
		fmt.Fprintf(out, "      --min-score int         Drop hits scoring below N [%s]\n", def("min-score"))
		fmt.Fprintf(out, "      --max-pvalue float      Drop hits with a larger p-value (0=off) [%s]\n", def("max-pvalue"))
		fmt.Fprintf(out, "      --min-coverage float    Min diagonal length / shorter sequence [%s]\n", def("min-coverage"))
		fmt.Fprintf(out, "      --header-sim            Report description similarity [%s]\n", def("header-sim"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -j, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --dedupe-cap int        Repeated-candidate window (0=default) [%s]\n", def("dedupe-cap"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         %s [%s]\n", strings.Join(writers.Formats(), " | "), def("output"))
		fmt.Fprintf(out, "      --sort                  Sort by query, score, target, diagonal [%s]\n", def("sort"))
		fmt.Fprintf(out, "      --pretty                ASCII alignment block under each row (text) [%s]\n", def("pretty"))
		fmt.Fprintf(out, "      --max-hits int          Best N hits per query (0=all) [%s]\n", def("max-hits"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))
		fmt.Fprintf(out, "      --no-match-exit-code int  Exit code when no hits are found [%s]\n", def("no-match-exit-code"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "      --progress              Progress bar on STDERR [%s]\n", def("progress"))
		fmt.Fprintf(out, "      --quiet                 Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
