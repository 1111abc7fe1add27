// Package parallel provides a bounded worker pool dedicated to
// running join.Query values to completion. The core join engine is
// single-threaded and never yields mid-join (spec.md §5): a join is
// one atomic CPU-bound batch, not a stream of small steps. So unlike a
// general task-queue pool, RunPool has no generic func() task type —
// the only job it ever accepts is a whole *join.Query, and Submit
// hands the caller that query's QueryResult directly instead of
// requiring a side channel or shared slice.
package parallel

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/gitrdm/ljoin/join"
)

// ErrPoolShutdown is returned by Submit once Shutdown has been called.
var ErrPoolShutdown = errors.New("parallel: pool is shut down")

// QueryResult is one query's outcome.
type QueryResult struct {
	Rows []join.Row
	Err  error
}

// job is one query waiting for a worker, paired with the channel its
// result is delivered on.
type job struct {
	ctx   context.Context
	query *join.Query
	done  chan QueryResult
}

// RunPool is a fixed-size pool of goroutines, each running one
// join.Query to completion at a time.
type RunPool struct {
	maxWorkers   int
	jobs         chan job
	shutdownChan chan struct{}
	workerWg     sync.WaitGroup
	once         sync.Once
}

// NewRunPool creates a pool with maxWorkers goroutines. maxWorkers <=
// 0 defaults to runtime.NumCPU(): a join is pure CPU work, so sizing
// off the host's core count (rather than, say, an I/O-bound rule of
// thumb) is the right default.
func NewRunPool(maxWorkers int) *RunPool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}

	p := &RunPool{
		maxWorkers:   maxWorkers,
		jobs:         make(chan job, maxWorkers),
		shutdownChan: make(chan struct{}),
	}
	for i := 0; i < maxWorkers; i++ {
		p.workerWg.Add(1)
		go p.worker()
	}
	return p
}

func (p *RunPool) worker() {
	defer p.workerWg.Done()
	for {
		select {
		case j, ok := <-p.jobs:
			if !ok {
				return
			}
			rows, err := j.query.Run(j.ctx)
			j.done <- QueryResult{Rows: rows, Err: err}
		case <-p.shutdownChan:
			return
		}
	}
}

// Submit runs query on the pool and returns its result. It blocks
// until a worker picks up the job, the query itself finishes, ctx is
// done, or the pool is shut down first.
func (p *RunPool) Submit(ctx context.Context, query *join.Query) (QueryResult, error) {
	done := make(chan QueryResult, 1)
	select {
	case p.jobs <- job{ctx: ctx, query: query, done: done}:
	case <-ctx.Done():
		return QueryResult{}, ctx.Err()
	case <-p.shutdownChan:
		return QueryResult{}, ErrPoolShutdown
	}

	select {
	case res := <-done:
		return res, nil
	case <-ctx.Done():
		return QueryResult{}, ctx.Err()
	case <-p.shutdownChan:
		// Once every worker has exited, a job that was picked up has
		// already delivered its result; one still queued never will.
		p.workerWg.Wait()
		select {
		case res := <-done:
			return res, nil
		default:
			return QueryResult{}, ErrPoolShutdown
		}
	}
}

// Shutdown stops accepting new jobs and waits for in-flight ones to
// finish. It is safe to call more than once.
func (p *RunPool) Shutdown() {
	p.once.Do(func() {
		close(p.shutdownChan)
		p.workerWg.Wait()
	})
}

// WorkerCount returns the pool's fixed worker count.
func (p *RunPool) WorkerCount() int {
	return p.maxWorkers
}

// RunQueries runs every query in queries against pool, returning one
// QueryResult per query in the same order as the input. It blocks
// until every query has finished or failed to even start (ctx
// cancelled, or pool shut down).
func RunQueries(ctx context.Context, pool *RunPool, queries []*join.Query) []QueryResult {
	results := make([]QueryResult, len(queries))
	var wg sync.WaitGroup

	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := pool.Submit(ctx, q)
			if err != nil {
				results[i] = QueryResult{Err: err}
				return
			}
			results[i] = res
		}()
	}

	wg.Wait()
	return results
}
