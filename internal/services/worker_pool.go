package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrPoolShutdown = errors.New("worker pool is shut down")
)

// Task is a unit of work run by the WorkerPool. ctx is cancelled when the
// pool is force-stopped.
type Task func(ctx context.Context)

// WorkerPool runs tasks on a fixed number of goroutines fed by a bounded
// queue. When the queue is full Submit runs the task on the calling goroutine,
// so a fast producer is slowed down instead of dropping work.
type WorkerPool struct {
	tasks  chan Task
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	shutdown bool

	wg   sync.WaitGroup
	done chan struct{}

	callerRuns atomic.Int64
	dropped    atomic.Int64
}

func NewWorkerPool(workers, capacity int) *WorkerPool {
	if workers < 1 {
		workers = 1
	}
	if capacity < 0 {
		capacity = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &WorkerPool{
		tasks:  make(chan Task, capacity),
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	go func() {
		p.wg.Wait()
		close(p.done)
	}()

	return p
}

func (p *WorkerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		if p.ctx.Err() != nil {
			p.dropped.Add(1)
			continue
		}
		task(p.ctx)
	}
}

// Submit queues task, or runs it inline when the queue is full. It returns
// ErrPoolShutdown once Shutdown has been called. inline reports whether the
// task ran on the caller's goroutine.
func (p *WorkerPool) Submit(task Task) (inline bool, err error) {
	p.mu.RLock()
	if p.shutdown {
		p.mu.RUnlock()
		return false, ErrPoolShutdown
	}
	select {
	case p.tasks <- task:
		p.mu.RUnlock()
		return false, nil
	default:
	}
	// Workers cannot have exited while the queue is open, so the counter is
	// above zero here and AwaitTermination also waits for the inline run.
	p.wg.Add(1)
	p.mu.RUnlock()
	defer p.wg.Done()

	p.callerRuns.Add(1)
	task(p.ctx)
	return true, nil
}

// Shutdown stops accepting tasks. Queued tasks still run.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shutdown {
		return
	}
	p.shutdown = true
	close(p.tasks)
}

// ShutdownNow stops accepting tasks, cancels the context of running tasks
// and discards tasks still waiting in the queue.
func (p *WorkerPool) ShutdownNow() {
	p.Shutdown()
	p.cancel()
}

func (p *WorkerPool) IsShutdown() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.shutdown
}

// AwaitTermination waits up to timeout for every worker, and every task
// running inline on a submitter, to finish after Shutdown. It reports whether
// the pool terminated in time.
func (p *WorkerPool) AwaitTermination(timeout time.Duration) bool {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-p.done:
		return true
	case <-timer.C:
		return false
	}
}

// CallerRuns returns how many tasks ran inline on the submitting goroutine.
func (p *WorkerPool) CallerRuns() int64 {
	return p.callerRuns.Load()
}

// Dropped returns how many queued tasks were discarded by ShutdownNow.
func (p *WorkerPool) Dropped() int64 {
	return p.dropped.Load()
}
