package jsonutil

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
)

// Pooled 64 KiB writers; the encoder is rebuilt per stream since it binds to
// its writer.
var bwPool = sync.Pool{
	New: func() any {
		return bufio.NewWriterSize(io.Discard, 64<<10)
	},
}

// StartLines spins up a JSON Lines encoder goroutine for values of type T.
//   - toWire converts one value to its wire type
//   - isBroken recognizes broken/closed pipe errors, which are reported as nil
//
// After an encode error the goroutine keeps draining in so senders never
// block, and reports the first error once in is closed.
func StartLines[T, W any](out io.Writer, bufSize int, toWire func(T) W, isBroken func(error) bool) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := json.NewEncoder(bw)
		var err error
		for v := range in {
			if err == nil {
				err = enc.Encode(toWire(v))
			}
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		done <- err
	}()

	return in, done
}
