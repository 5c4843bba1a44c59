// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rescore/internal/app"
	"rescore/pkg/api"
)

func write(t *testing.T, name, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

const (
	queriesFA = ">q1 kinase domain\nACGTACGT\n>q2\nGGGGCCCC\n"
	targetsFA = ">t1 protein kinase\nTTACGTAC\n>t2\nAAAAAAAA\n"
	candTSV   = "# query target diagonal\nq1\tt1\t65534\nq1\tt2\t0\nq2\tt1\t0\n"
)

func TestEndToEnd_Text(t *testing.T) {
	qf := write(t, "q.fa", queriesFA)
	tf := write(t, "t.fa", targetsFA)
	cf := write(t, "c.tsv", candTSV)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"-q", qf, "-t", tf, "-c", cf,
		"--matrix", "nucleotide", "--match", "1", "--mismatch", "-1",
		"--min-score", "2",
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("want header + 1 row, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "query_id\ttarget_id") {
		t.Fatalf("header = %q", lines[0])
	}
	f := strings.Split(lines[1], "\t")
	if f[0] != "q1" || f[1] != "t1" || f[4] != "65534" || f[5] != "-2" || f[8] != "6" || f[9] != "0" || f[10] != "5" {
		t.Fatalf("row = %q", lines[1])
	}
}

func TestEndToEnd_HeaderSimAndPositionalTargets(t *testing.T) {
	qf := write(t, "q.fa", queriesFA)
	tf := write(t, "t.fa", targetsFA)
	cf := write(t, "c.tsv", "q1 t1 65534\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"-q", qf, "-c", cf, "--matrix", "nucleotide",
		"--header-sim", "--output", "jsonl", tf,
	}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	var h api.HitV1
	if err := json.Unmarshal(bytes.TrimSpace(out.Bytes()), &h); err != nil {
		t.Fatalf("decode %q: %v", out.String(), err)
	}
	if h.HeaderSim == nil || *h.HeaderSim != 6 {
		t.Fatalf("header_sim = %v", h.HeaderSim)
	}
	if h.PValue == nil || *h.PValue <= 0 || *h.PValue >= 0.5 {
		t.Fatalf("p_value = %v", h.PValue)
	}
}

func TestEndToEnd_Pretty(t *testing.T) {
	qf := write(t, "q.fa", queriesFA)
	tf := write(t, "t.fa", targetsFA)
	cf := write(t, "c.tsv", "q1\tt1\t65534\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"-q", qf, "-t", tf, "-c", cf, "--matrix", "nucleotide", "--pretty", "--no-header"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "# Query  1 ACGTAC 6\n#          ||||||\n# Sbjct  3 ACGTAC 8\n") {
		t.Fatalf("pretty block missing:\n%s", out.String())
	}
}

func TestParallelMatchesEqualSerial(t *testing.T) {
	var qb, cb strings.Builder
	for i := 0; i < 200; i++ {
		fmt.Fprintf(&qb, ">s%d\n%s\n", i, strings.Repeat("ACGTTGCA", 4+i%5))
		fmt.Fprintf(&cb, "s%d\ts%d\t%d\n", i, (i*7)%200, (i%9)*8)
	}
	qf := write(t, "par.fa", qb.String())
	cf := write(t, "par.tsv", cb.String())

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := app.Run([]string{
			"-q", qf, "-c", cf,
			"--matrix", "nucleotide",
			"--threads", fmt.Sprint(threads),
			"--output", "json",
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)
	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}

func TestNoHits_ExitCodeAndWarnings(t *testing.T) {
	qf := write(t, "q.fa", ">q\nAAAA\n")
	tf := write(t, "t.fa", ">t\nCCCC\n")
	cf := write(t, "c.tsv", "q\tt\t0\nq\tmissing\t0\n")

	var out, errBuf bytes.Buffer
	code := app.Run([]string{
		"-q", qf, "-t", tf, "-c", cf,
		"--matrix", "nucleotide", "--no-match-exit-code", "5", "--no-header",
	}, &out, &errBuf)
	if code != 5 {
		t.Fatalf("exit %d, want 5; err=%s", code, errBuf.String())
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
	if !strings.Contains(errBuf.String(), `"missing"`) {
		t.Fatalf("missing-target warning absent: %q", errBuf.String())
	}
}

func TestBadInputs(t *testing.T) {
	qf := write(t, "q.fa", ">q\nACGT\n")
	cf := write(t, "c.tsv", "q\tq\t0\n")
	badCand := write(t, "bad.tsv", "q\tq\n")
	badMatrix := write(t, "bad.mat", "A C\nA 1\n")

	tests := []struct {
		name string
		argv []string
		want int
	}{
		{"no candidates flag", []string{"-q", qf}, 2},
		{"unknown mode", []string{"-q", qf, "-c", cf, "--mode", "banded"}, 2},
		{"missing fasta", []string{"-q", qf + ".nope", "-c", cf}, 2},
		{"short candidate row", []string{"-q", qf, "-c", badCand}, 2},
		{"bad matrix file", []string{"-q", qf, "-c", cf, "--matrix", badMatrix}, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errBuf bytes.Buffer
			if code := app.Run(tc.argv, &out, &errBuf); code != tc.want {
				t.Fatalf("exit %d, want %d; err=%s", code, tc.want, errBuf.String())
			}
			if errBuf.Len() == 0 {
				t.Fatal("expected a message on stderr")
			}
		})
	}
}

func TestHelpAndVersion(t *testing.T) {
	var out, errBuf bytes.Buffer
	if code := app.Run(nil, &out, &errBuf); code != 0 || !strings.Contains(out.String(), "--candidates") {
		t.Fatalf("help exit %d out %q", code, out.String())
	}
	out.Reset()
	if code := app.Run([]string{"--version"}, &out, &errBuf); code != 0 || !strings.HasPrefix(out.String(), "rescore version ") {
		t.Fatalf("version exit %d out %q", code, out.String())
	}
}
