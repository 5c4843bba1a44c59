package ungapped

import (
	"math/rand"
	"reflect"
	"slices"
	"testing"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		d    int
		want uint16
	}{
		{0, 0},
		{2, 2},
		{-2, 65534},
		{70000, 4464},
		{-70000, 61072},
	}
	for _, tc := range tests {
		if got := Compact(tc.d); got != tc.want {
			t.Errorf("Compact(%d) = %d, want %d", tc.d, got, tc.want)
		}
	}
}

func TestCandidates_Order(t *testing.T) {
	got := slices.Collect(Candidates(5, 100, 40000))
	// negative family: k = 1..1+40000/32768 = 1..2; positive: k = 0..0
	want := []int{5 - 65536, 5 - 2*65536, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}

	got = slices.Collect(Candidates(0, 140000, 10))
	want = []int{-65536, 0, 65536, 131072}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Candidates = %v, want %v", got, want)
	}
}

func TestCandidates_RoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for iter := 0; iter < 2000; iter++ {
		d := r.Intn(2*65535+1) - 65535 // |d| < 65536
		qLen, tLen := 1+r.Intn(200000), 1+r.Intn(200000)
		if !slices.Contains(slices.Collect(Candidates(Compact(d), qLen, tLen)), d) {
			t.Fatalf("d=%d (qLen=%d tLen=%d) missing from candidates", d, qLen, tLen)
		}
	}
}

func TestCandidates_StopsEarly(t *testing.T) {
	n := 0
	for range Candidates(0, 200000, 200000) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("visited %d candidates, want 2", n)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name          string
		qLen, tLen, d int
		qOff, tOff, n int
		ok            bool
	}{
		{"zero", 10, 8, 0, 0, 0, 8, true},
		{"query ahead", 10, 8, 4, 4, 0, 6, true},
		{"target ahead", 10, 8, -3, 0, 3, 5, true},
		{"target ahead, long target", 4, 20, -3, 0, 3, 4, true},
		{"past query end", 10, 8, 10, 0, 0, 0, false},
		{"past target end", 10, 8, -8, 0, 0, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			qo, to, n, ok := Window(tc.qLen, tc.tLen, tc.d)
			if qo != tc.qOff || to != tc.tOff || n != tc.n || ok != tc.ok {
				t.Fatalf("Window(%d,%d,%d) = (%d,%d,%d,%v), want (%d,%d,%d,%v)",
					tc.qLen, tc.tLen, tc.d, qo, to, n, ok, tc.qOff, tc.tOff, tc.n, tc.ok)
			}
		})
	}
}

func TestSearch_ShiftedByTwo(t *testing.T) {
	sub := identityTable(5, 1, -1)
	q, tg := dna("ACGTACGT"), dna("TTACGTAC")

	res := Search(q, tg, Compact(-2), sub, Substitution)
	if res.Score != 6 || res.DiagonalLen != 6 || res.Diagonal != -2 || res.DistToDiagonal != 2 {
		t.Fatalf("got %+v, want score 6 len 6 on diagonal -2", res)
	}

	aln := Search(q, tg, Compact(-2), sub, Alignment)
	if aln.Score != 6 || aln.StartPos != 0 || aln.EndPos != 5 {
		t.Fatalf("alignment mode got %+v, want score 6 [0,5]", aln)
	}

	ham := Search(q, tg, Compact(-2), sub, Hamming)
	if ham.Score != 6 || ham.HasBounds() {
		t.Fatalf("hamming mode got %+v, want 6 matches without bounds", ham)
	}
}

func TestByDiagonal_OutsideIsNeutral(t *testing.T) {
	sub := identityTable(5, 1, -1)
	res := ByDiagonal(dna("ACGT"), dna("ACGT"), 9, sub, Alignment)
	if res.Score != 0 || res.DiagonalLen != 0 || res.HasBounds() || res.Diagonal != 9 || res.DistToDiagonal != 9 {
		t.Fatalf("got %+v", res)
	}
	if res := ByDiagonal(nil, nil, 0, sub, Global); res.Score != 0 || res.DiagonalLen != 0 {
		t.Fatalf("empty inputs: %+v", res)
	}
}

func TestSearch_BeyondSixteenBits(t *testing.T) {
	sub := identityTable(5, 1, -1)
	r := rand.New(rand.NewSource(11))

	t.Run("positive", func(t *testing.T) {
		q := randomCodes(r, 70100, 4)
		tg := append([]byte(nil), q[70000:70050]...)
		res := Search(q, tg, Compact(70000), sub, Substitution)
		if res.Diagonal != 70000 || res.Score != 50 || res.DiagonalLen != 50 {
			t.Fatalf("got %+v, want diagonal 70000 score 50", res)
		}
	})
	t.Run("negative", func(t *testing.T) {
		tg := randomCodes(r, 70100, 4)
		q := append([]byte(nil), tg[70000:70050]...)
		res := Search(q, tg, Compact(-70000), sub, Hamming)
		if res.Diagonal != -70000 || res.Score != 50 || res.DistToDiagonal != 70000 {
			t.Fatalf("got %+v, want diagonal -70000 score 50", res)
		}
	})
}

func TestSearch_AtLeastDirectScore(t *testing.T) {
	sub := identityTable(4, 1, -1)
	r := rand.New(rand.NewSource(5))
	for iter := 0; iter < 200; iter++ {
		q := randomCodes(r, 1+r.Intn(300), 4)
		tg := randomCodes(r, 1+r.Intn(300), 4)
		d := r.Intn(len(q)+len(tg)) - len(tg)
		for _, mode := range []Mode{Hamming, Substitution, Alignment, Global} {
			direct := ByDiagonal(q, tg, d, sub, mode)
			best := Search(q, tg, Compact(d), sub, mode)
			if best.Score < direct.Score {
				t.Fatalf("mode %v d=%d: search %d < direct %d", mode, d, best.Score, direct.Score)
			}
		}
	}
}

func TestSearch_TieKeepsFirstCandidate(t *testing.T) {
	sub := identityTable(4, 1, -1)
	q := make([]byte, 65536+100) // all code 0
	tg := make([]byte, 50)
	res := Search(q, tg, 10, sub, Hamming)
	if res.Score != 50 || res.Diagonal != 10 {
		t.Fatalf("got %+v, want the k=0 diagonal 10 with score 50", res)
	}
}

func TestSearch_NothingPositive(t *testing.T) {
	sub := identityTable(5, 1, -1)
	res := Search(dna("AAAA"), dna("CCCC"), 0, sub, Alignment)
	if res != NoAlignment() {
		t.Fatalf("got %+v, want neutral result", res)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Hamming, Substitution, Alignment, Global} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("smith"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if got, _ := ParseMode(" Alignment "); got != Alignment {
		t.Fatalf("case/space-insensitive parse failed: %v", got)
	}
}
