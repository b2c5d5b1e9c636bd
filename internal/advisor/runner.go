// internal/advisor/runner.go
package advisor

import (
	"context"
	"sync"
)

// Result is a finished advisor request waiting to be logged.
type Result struct {
	Kind EntryKind
	Wave int
	Text string
}

// Runner issues advisor requests in the background and hands back their
// results on the game goroutine through Drain.
type Runner struct {
	advisor Advisor
	results chan Result
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func NewRunner(advisor Advisor, buffer int) *Runner {
	if buffer < 1 {
		buffer = 8
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		advisor: advisor,
		results: make(chan Result, buffer),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// RequestWave asks for the description of wave without blocking.
func (r *Runner) RequestWave(wave int) {
	r.run(func() Result {
		return Result{Kind: EntryWave, Wave: wave, Text: r.advisor.DescribeWave(r.ctx, wave)}
	})
}

// RequestSummary asks for a summary of st without blocking.
func (r *Runner) RequestSummary(st State) {
	r.run(func() Result {
		return Result{Kind: EntrySummary, Wave: st.Wave, Text: r.advisor.SummarizeState(r.ctx, st)}
	})
}

func (r *Runner) run(fn func() Result) {
	if r.ctx.Err() != nil {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		res := fn()
		select {
		case r.results <- res:
		case <-r.ctx.Done():
		}
	}()
}

// Drain returns every result that is ready without waiting for more.
func (r *Runner) Drain() []Result {
	var out []Result
	for {
		select {
		case res := <-r.results:
			out = append(out, res)
		default:
			return out
		}
	}
}

// Wait blocks until every issued request has delivered or been dropped.
// Results beyond the buffer size block delivery until drained.
func (r *Runner) Wait() {
	r.wg.Wait()
}

// Close cancels pending requests and waits for their goroutines.
func (r *Runner) Close() {
	r.cancel()
	r.wg.Wait()
}
