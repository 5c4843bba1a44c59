package candidates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := `# query target diagonal
q1	t1	0

q1  t2  65534
q2 t1 17
`
	got, err := Parse(strings.NewReader(in), "c.tsv", false)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := []Candidate{{"q1", "t1", 0}, {"q1", "t2", 65534}, {"q2", "t1", 17}}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestParse_TrueDiagonals(t *testing.T) {
	got, err := Parse(strings.NewReader("q t -2\nq t 70000\nq t -70000\n"), "x", true)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	wants := []uint16{65534, 70000 - 65536, 65536*2 - 70000}
	for i, w := range wants {
		if got[i].Diagonal != w {
			t.Fatalf("row %d diagonal = %d, want %d", i, got[i].Diagonal, w)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"fields", "q t\n", "c:1 want 3 fields"},
		{"not int", "q t x\n", "c:1 bad diagonal"},
		{"negative", "# c\nq t -1\n", "c:2 diagonal -1 is outside"},
		{"too big", "q t 65536\n", "outside the compact range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in), "c", false)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want containing %q", err, tc.want)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "cands.tsv")
	if err := os.WriteFile(fn, []byte("a b 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(fn, false)
	if err != nil || len(got) != 1 || got[0].Diagonal != 3 {
		t.Fatalf("Load = %v, %v", got, err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing"), false); err == nil {
		t.Fatal("expected error for missing file")
	}
}
