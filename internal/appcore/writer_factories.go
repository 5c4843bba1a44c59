package appcore

import (
	"io"

	"rescore/internal/engine"
	"rescore/internal/pretty"
	"rescore/internal/writers"
)

// WriterFactory starts the consumer of kept hits.
type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error)
}

// HitWriterFactory dispatches to the writers registry.
type HitWriterFactory struct {
	Format  string
	Sort    bool
	Header  bool
	MaxHits int
	Pretty  bool
}

func NewHitWriterFactory(format string, sort, header bool, maxHits int) HitWriterFactory {
	return HitWriterFactory{Format: format, Sort: sort, Header: header, MaxHits: maxHits}
}

func (w HitWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Hit, <-chan error) {
	return writers.StartHitWriter(out, w.Format, writers.Options{
		Sort:      w.Sort,
		Header:    w.Header,
		MaxHits:   w.MaxHits,
		Pretty:    w.Pretty,
		PrettyOpt: pretty.DefaultOptions,
	}, bufSize)
}
