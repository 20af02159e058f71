// Package worker analyses many independent positions in parallel and hands
// the results back in input order.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem is one position to analyse.
type WorkItem struct {
	FEN   string
	Index int // position in the input
}

// ProcessResult is the outcome of analysing one position.
type ProcessResult struct {
	FEN       string
	Index     int
	Board     *chess.Board // nil if the FEN was rejected
	Analysis  interface{}  // typed by the caller's ProcessFunc
	Duplicate bool         // position was already claimed by another entry
	Error     error
}

// ProcessFunc analyses one work item on a worker goroutine. Calls run
// concurrently, so each must own the board it analyses.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc on a fixed number of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	work        chan WorkItem
	results     chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the work and result channel capacity. Values below 1
// are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool with one worker and a buffer of 10 unless options say
// otherwise.
func New(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.work {
		if p.IsStopped() {
			continue
		}
		p.results <- p.processFunc(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Stop makes the workers skip every item they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close ends submission, waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results delivers results in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run analyses every FEN on a new pool and calls emit with the results in
// input order, each as soon as all earlier ones have been emitted. If emit
// returns an error the pool is stopped, the remaining results are discarded
// and Run returns that error.
func Run(fens []string, processFunc ProcessFunc, emit func(ProcessResult) error, opts ...PoolOption) error {
	p := New(processFunc, opts...)
	p.Start()

	go func() {
		for i, fen := range fens {
			if p.IsStopped() {
				break
			}
			p.Submit(WorkItem{FEN: fen, Index: i})
		}
		p.Close()
	}()

	var err error
	pending := make(map[int]ProcessResult)
	next := 0
	for r := range p.Results() {
		if err != nil {
			continue
		}
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err = emit(ready); err != nil {
				p.Stop()
				break
			}
		}
	}
	return err
}
