// Package worker provides a worker pool for processing many boards in parallel.
// Each job owns its board; the pool never shares a board between workers.
package worker

import (
	"math"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/easychess-go/internal/chess"
)

// Job is one board to build and process, usually one input file.
type Job struct {
	Index int    // Position in the input, used to restore order
	Name  string // Source name for diagnostics
	Text  string // Board text or FEN
}

// Result is the outcome of a Job.
type Result struct {
	Index int
	Name  string
	Board *chess.Board // Final board (nil on error)
	Notes []string     // Commentary collected while processing, logged in input order
	Err   error
}

// ProcessFunc turns a job into a result.
type ProcessFunc func(job Job) Result

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopOnError bool
	cutoff      atomic.Int64 // Jobs with a greater Index are skipped
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithStopOnError makes the pool skip every job after the first one that
// fails. Jobs with a lower Index than the failure are still processed.
func WithStopOnError() Option {
	return func(p *Pool) {
		p.stopOnError = true
	}
}

// NewPool creates a pool that runs processFunc.
// Default: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	p.cutoff.Store(math.MaxInt64)
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// work processes jobs until the job channel is closed.
func (p *Pool) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		if int64(job.Index) > p.cutoff.Load() {
			continue // Drain without processing
		}
		r := p.processFunc(job)
		if r.Err != nil && p.stopOnError {
			p.StopAfter(job.Index)
		}
		p.results <- r
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// StopAfter makes workers skip jobs whose Index is greater than index; a
// negative index skips every job not yet started. The lowest index wins.
func (p *Pool) StopAfter(index int) {
	for {
		cur := p.cutoff.Load()
		if int64(index) >= cur || p.cutoff.CompareAndSwap(cur, int64(index)) {
			return
		}
	}
}

// Close closes the job channel, waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes every job with the given number of workers and returns the
// results ordered by Job.Index. Extra options are applied after the worker
// count and buffer size; skipped jobs have no result.
func Run(jobs []Job, workers int, processFunc ProcessFunc, opts ...Option) []Result {
	opts = append([]Option{WithWorkers(workers), WithBufferSize(len(jobs))}, opts...)
	pool := NewPool(processFunc, opts...)
	pool.Start()

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(jobs))
	for r := range pool.Results() {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
