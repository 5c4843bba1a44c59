package appshell

import (
	"context"
	"io"
	"testing"
)

func TestRun_EmptyArgvMeansHelp(t *testing.T) {
	var got []string
	code := Run(context.Background(), nil, io.Discard, io.Discard,
		func(_ context.Context, argv []string, _, _ io.Writer) int {
			got = argv
			return 0
		})
	if code != 0 || len(got) != 1 || got[0] != "-h" {
		t.Fatalf("code=%d argv=%v", code, got)
	}
}

func TestRun_CancelledSuccessBecomes130(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	code := Run(ctx, []string{"x"}, io.Discard, io.Discard,
		func(ctx context.Context, _ []string, _, _ io.Writer) int {
			cancel()
			<-ctx.Done()
			return 0
		})
	if code != 130 {
		t.Fatalf("code = %d, want 130", code)
	}
}

func TestRun_KeepsNonZeroCode(t *testing.T) {
	code := Run(context.Background(), []string{"x"}, io.Discard, io.Discard,
		func(context.Context, []string, io.Writer, io.Writer) int { return 2 })
	if code != 2 {
		t.Fatalf("code = %d", code)
	}
}
