// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"sync"
	"time"

	"rescore/internal/candidates"
	"rescore/internal/engine"
	"rescore/internal/runutil"
)

// Config controls the rescoring pipeline.
type Config struct {
	Threads   int       // number of worker goroutines (>=1)
	BatchSize int       // candidates per job; <=0 uses DefaultBatchSize
	DedupeCap int       // LRU capacity for repeated-candidate suppression; <=0 uses the LRUSet default
	Progress  io.Writer // progress bar destination; nil disables it

	// OnMissing is called from the collector goroutine for every candidate
	// whose query or target key is absent, with the missing key and whether
	// it was the query side.
	OnMissing func(key string, query bool)
}

const DefaultBatchSize = 256

// Key identifies a candidate for deduplication.
type Key struct {
	Query, Target string
	Diagonal      uint16
}

// Summary counts what happened to the candidates.
type Summary struct {
	Candidates int
	Duplicates int
	Missing    int
	Hits       int
}

// ForEachHit rescores every candidate and streams kept hits to visit in the
// order their candidates appear in cands, whatever the thread count.
// A candidate repeated within the LRU window is scored once. It returns the
// first error encountered (including context cancellation).
func ForEachHit(
	ctx context.Context,
	cfg Config,
	queries, targets Source,
	cands []candidates.Candidate,
	eng Rescorer,
	visit func(engine.Hit) error,
) (Summary, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	sum := Summary{Candidates: len(cands)}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type miss struct {
		key   string
		query bool
	}
	type job struct {
		idx   int
		cands []candidates.Candidate
	}
	type result struct {
		idx     int
		n       int
		hits    []engine.Hit
		missing []miss
		took    time.Duration
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					start := time.Now()
					r := result{idx: j.idx, n: len(j.cands)}
					for _, c := range j.cands {
						q, okQ := queries.Get(c.Query)
						if !okQ {
							r.missing = append(r.missing, miss{c.Query, true})
							continue
						}
						t, okT := targets.Get(c.Target)
						if !okT {
							r.missing = append(r.missing, miss{c.Target, false})
							continue
						}
						if h, keep := eng.Rescore(q, t, c.Diagonal); keep {
							r.hits = append(r.hits, h)
						}
					}
					r.took = time.Since(start)

					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	var (
		bar      progressBar
		progress func(result)
	)
	if cfg.Progress != nil && len(cands) > 0 {
		var stop func()
		bar, stop = startProgress(cfg.Progress, len(cands))
		defer stop()
		progress = func(r result) { bar.EwmaIncrBy(r.n, r.took) }
	}

	// Collector: restores input order across workers.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]result, cfg.Threads*2)
		next := 0
		for r := range results {
			pending[r.idx] = r
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if progress != nil {
					progress(cur)
				}
				if cerr != nil {
					continue
				}
				for _, m := range cur.missing {
					sum.Missing++
					if cfg.OnMissing != nil {
						cfg.OnMissing(m.key, m.query)
					}
				}
				for _, h := range cur.hits {
					if err := visit(h); err != nil {
						cerr = err
						cancel()
						break
					}
					sum.Hits++
				}
			}
		}
	}()

	// Feed work, dropping repeats.
	seen := runutil.NewLRUSet[Key](cfg.DedupeCap)
	idx := 0
	batch := make([]candidates.Candidate, 0, cfg.BatchSize)
	send := func() bool {
		if len(batch) == 0 {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case jobs <- job{idx: idx, cands: batch}:
			idx++
			batch = make([]candidates.Candidate, 0, cfg.BatchSize)
			return true
		}
	}
feed:
	for _, c := range cands {
		if seen.Add(Key{Query: c.Query, Target: c.Target, Diagonal: c.Diagonal}) {
			sum.Duplicates++
			if bar != nil {
				bar.IncrBy(1)
			}
			continue
		}
		batch = append(batch, c)
		if len(batch) == cfg.BatchSize && !send() {
			break feed
		}
	}
	send()

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return sum, cerr
	}
	return sum, ctx.Err()
}
