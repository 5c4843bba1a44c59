// internal/writers/hits.go
package writers

import (
	"io"

	"rescore/internal/common"
	"rescore/internal/engine"
	"rescore/internal/jsonutil"
	"rescore/internal/output"
	"rescore/internal/pretty"
	"rescore/pkg/api"
)

func init() {
	RegisterHit(output.FormatText, writeText)
	RegisterHit(output.FormatJSON, writeJSON)
	RegisterHit(output.FormatJSONL, writeJSONL)
}

// collect drains in and applies the per-query cap and the sort.
func collect(in <-chan engine.Hit, opt Options) []engine.Hit {
	var buf []engine.Hit
	for h := range in {
		buf = append(buf, h)
	}
	buf = common.CapPerQuery(buf, opt.MaxHits)
	if opt.Sort {
		common.SortHits(buf)
	}
	return buf
}

func writeText(out io.Writer, in <-chan engine.Hit, opt Options) error {
	var render func(engine.Hit) string
	if opt.Pretty {
		render = func(h engine.Hit) string { return pretty.RenderHitWithOptions(h, opt.PrettyOpt) }
	}
	if opt.buffered() {
		return output.WriteTextWithRenderer(out, collect(in, opt), opt.Header, render)
	}
	return output.StreamTextWithRenderer(out, in, opt.Header, render)
}

func writeJSON(out io.Writer, in <-chan engine.Hit, opt Options) error {
	return output.WriteJSON(out, collect(in, opt))
}

// writeJSONL streams one v1 object per line through the pooled encoder.
func writeJSONL(out io.Writer, in <-chan engine.Hit, opt Options) error {
	lines, done := jsonutil.StartLines[engine.Hit, api.HitV1](out, 64, output.ToAPIHit, IsBrokenPipe)
	if opt.buffered() {
		for _, h := range collect(in, opt) {
			lines <- h
		}
	} else {
		for h := range in {
			lines <- h
		}
	}
	close(lines)
	return <-done
}
