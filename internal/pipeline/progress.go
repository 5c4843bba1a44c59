package pipeline

import (
	"io"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

const barLabel = "rescored pairs: "

// progressBar is the part of *mpb.Bar the pipeline drives. Implementations
// must be safe for concurrent use.
type progressBar interface {
	IncrBy(n int)
	EwmaIncrBy(n int, iterDur time.Duration)
}

// startProgress draws a bar of total steps on w; stop waits for its last frame.
var startProgress = func(w io.Writer, total int) (bar progressBar, stop func()) {
	pbs, b := newProgress(w, total)
	return b, func() { finish(pbs, b) }
}

func newProgress(w io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(w))
	bar := pbs.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(barLabel, decor.WC{W: len(barLabel), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, 1024),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return pbs, bar
}

// finish waits for the bar's last frame. A bar that never reached its total
// (error or cancellation) is aborted first so Wait returns.
func finish(pbs *mpb.Progress, bar *mpb.Bar) {
	if !bar.Completed() {
		bar.Abort(false)
	}
	pbs.Wait()
}
