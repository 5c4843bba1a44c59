// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"rescore/internal/engine"
)

// WriteTextWithRenderer prints the TSV header (optional) and one row per hit,
// each followed by render(h) when render is not nil.
func WriteTextWithRenderer(w io.Writer, list []engine.Hit, header bool, render func(engine.Hit) string) error {
	bw := bufio.NewWriter(w)
	if header {
		if _, err := bw.WriteString(TSVHeader + "\n"); err != nil {
			return err
		}
	}
	for _, h := range list {
		if _, err := bw.WriteString(FormatRowTSV(h) + "\n"); err != nil {
			return err
		}
		if render != nil {
			if _, err := bw.WriteString(render(h)); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// StreamTextWithRenderer is WriteTextWithRenderer over a channel; rows are
// written as they arrive. The channel is drained even after a write error.
func StreamTextWithRenderer(w io.Writer, in <-chan engine.Hit, header bool, render func(engine.Hit) string) error {
	var werr error
	write := func(s string) {
		if werr == nil {
			_, werr = io.WriteString(w, s)
		}
	}
	if header {
		write(TSVHeader + "\n")
	}
	for h := range in {
		write(FormatRowTSV(h) + "\n")
		if render != nil && werr == nil {
			write(render(h))
		}
	}
	return werr
}
