package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := EffectiveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → all CPUs, got %d", got)
	}
	if got := ChannelBuffer(0); got != 4 {
		t.Fatalf("buffer for 0 threads = %d, want 4", got)
	}
}

func TestLRUSet_AddAndEvict(t *testing.T) {
	s := NewLRUSet[string](2)
	if s.Add("a") || s.Add("b") {
		t.Fatal("fresh keys reported as present")
	}
	if !s.Add("a") {
		t.Fatal("a should be present")
	}
	// a was touched last, so c evicts b
	if s.Add("c") {
		t.Fatal("c reported present")
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if !s.Add("a") {
		t.Fatal("a should have survived eviction")
	}
	if s.Add("b") {
		t.Fatal("b should have been evicted")
	}
}

func TestLRUSet_DefaultCap(t *testing.T) {
	s := NewLRUSet[int](0)
	if s.cap != DefaultLRUCap {
		t.Fatalf("cap = %d", s.cap)
	}
}
