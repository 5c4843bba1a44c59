package common

import (
	"testing"

	"rescore-core/ungapped"

	"rescore/internal/engine"
)

func hit(q, t string, score, diag int) engine.Hit {
	return engine.Hit{QueryID: q, TargetID: t,
		Alignment: ungapped.LocalAlignment{Score: score, Diagonal: diag}}
}

func ids(hs []engine.Hit) []string {
	out := make([]string, len(hs))
	for i, h := range hs {
		out[i] = h.QueryID + "/" + h.TargetID
	}
	return out
}

func TestSortHits(t *testing.T) {
	hs := []engine.Hit{
		hit("q2", "a", 5, 0),
		hit("q1", "b", 3, 0),
		hit("q1", "a", 9, 0),
		hit("q1", "c", 3, -4),
		hit("q1", "c", 3, -9),
	}
	SortHits(hs)
	want := []string{"q1/a", "q1/b", "q1/c", "q1/c", "q2/a"}
	for i, w := range want {
		if ids(hs)[i] != w {
			t.Fatalf("order = %v, want %v", ids(hs), want)
		}
	}
	if hs[2].Alignment.Diagonal != -9 {
		t.Fatalf("diagonal tie-break: got %d first", hs[2].Alignment.Diagonal)
	}
}

func TestCapPerQuery(t *testing.T) {
	hs := []engine.Hit{
		hit("q1", "a", 1, 0),
		hit("q2", "x", 4, 0),
		hit("q1", "b", 7, 0),
		hit("q1", "c", 7, 0),
		hit("q1", "d", 2, 0),
	}
	got := ids(CapPerQuery(append([]engine.Hit(nil), hs...), 2))
	want := []string{"q2/x", "q1/b", "q1/c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if n := len(CapPerQuery(hs, 0)); n != len(hs) {
		t.Fatalf("max 0 kept %d", n)
	}
}
