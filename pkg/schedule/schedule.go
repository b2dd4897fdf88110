// Package schedule provides the fail-fast fan-out/fan-in used to run
// independent parse units concurrently. Units are indexed by their
// position before dispatch and write results into pre-assigned slots, so
// the join restores original document order regardless of completion
// order. A fault or timeout in any unit terminates the whole batch.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"
)

// Task is one independent unit of work. A task owns its assigned subtree
// exclusively; no state is shared across tasks.
type Task func() error

// Scheduler dispatches a batch of independent tasks and blocks until all
// complete or the batch fails. Implementations must be fail-fast: the
// first unit fault or timeout aborts the batch with no partial results.
type Scheduler interface {
	Run(ctx context.Context, tasks []Task) error
}

// TimeoutError reports that a batch did not complete within the
// configured bound.
type TimeoutError struct {
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("parse exceeded timeout of %dms", e.Limit.Milliseconds())
}

// UnitError reports an internal fault inside a single unit, identified by
// its dispatch index.
type UnitError struct {
	Index int
	Cause any
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("parse unit %d failed: %v", e.Index, e.Cause)
}

// Pool is the default scheduler: a bounded worker pool with a whole-batch
// timeout.
type Pool struct {
	// Timeout bounds the whole batch. Zero means no bound.
	Timeout time.Duration

	// Workers caps concurrency. Zero or negative means runtime.NumCPU().
	Workers int
}

// NewPool creates a Pool with the given batch timeout.
func NewPool(timeout time.Duration) *Pool {
	return &Pool{Timeout: timeout}
}

// Run dispatches all tasks and blocks until every task has completed, one
// task has failed, or the timeout elapsed.
func (p *Pool) Run(ctx context.Context, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	var cancel context.CancelFunc
	if p.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, p.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tasks) {
		workers = len(tasks)
	}

	workCh := make(chan int)
	// Buffered so abandoned workers never block on send after a failure.
	resultCh := make(chan error, len(tasks))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range workCh {
				resultCh <- runUnit(idx, tasks[idx])
			}
		}()
	}

	// Feed work; stops early once the batch is cancelled.
	go func() {
		defer close(workCh)
		for i := range tasks {
			select {
			case <-ctx.Done():
				return
			case workCh <- i:
			}
		}
	}()

	completed := 0
	for completed < len(tasks) {
		select {
		case err := <-resultCh:
			if err != nil {
				return err
			}
			completed++
		case <-ctx.Done():
			if p.Timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return &TimeoutError{Limit: p.Timeout}
			}
			return fmt.Errorf("parse cancelled: %w", ctx.Err())
		}
	}

	wg.Wait()
	return nil
}

// Serial is a substitute scheduler that runs every task in order on the
// calling goroutine, with no timeout. Useful for deterministic debugging
// and for callers that manage their own concurrency.
type Serial struct{}

// Run executes tasks one at a time in dispatch order.
func (Serial) Run(ctx context.Context, tasks []Task) error {
	for i, task := range tasks {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("parse cancelled: %w", err)
		}
		if err := runUnit(i, task); err != nil {
			return err
		}
	}
	return nil
}

// runUnit executes one task, converting panics and task errors into
// UnitError values carrying the dispatch index.
func runUnit(idx int, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &UnitError{Index: idx, Cause: r}
		}
	}()

	if taskErr := task(); taskErr != nil {
		return &UnitError{Index: idx, Cause: taskErr}
	}
	return nil
}
