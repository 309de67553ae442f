// Package parallel runs batches of independent jobs on a fixed set of
// goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines. Each worker owns a queue and
// steals from the others once its own queue is empty, so a few slow jobs
// do not leave the rest of the pool idle.
//
// Pool is safe for concurrent use.
type Pool struct {
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool of n workers. An n below 1 means GOMAXPROCS.
func NewPool(n int) *Pool {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	depth := max(n*4, 8)

	p := &Pool{
		queues: make([]chan func(), n),
		done:   make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), depth)
	}
	p.running.Store(true)

	p.wg.Add(n)
	for i := range n {
		go p.work(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return len(p.queues)
}

// ExecuteAll runs every job and returns once all of them have finished.
// Jobs are dealt round-robin to the worker queues. On a closed pool it
// runs nothing.
func (p *Pool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}

	var pending sync.WaitGroup
	pending.Add(len(jobs))
	for i, job := range jobs {
		wrapped := func() {
			defer pending.Done()
			job()
		}
		select {
		case p.queues[i%len(p.queues)] <- wrapped:
		case <-p.done:
			pending.Done()
		}
	}
	pending.Wait()
}

// Close stops the workers after they drain their queues. It is safe to
// call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

func (p *Pool) work(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case job := <-own:
			job()
			continue
		default:
		}

		if job := p.steal(id); job != nil {
			job()
			continue
		}

		select {
		case job := <-own:
			job()
		case <-p.done:
			p.drain(own)
			return
		}
	}
}

func (p *Pool) steal(id int) func() {
	for i, q := range p.queues {
		if i == id {
			continue
		}
		select {
		case job := <-q:
			return job
		default:
		}
	}
	return nil
}

func (p *Pool) drain(q chan func()) {
	for {
		select {
		case job := <-q:
			job()
		default:
			return
		}
	}
}
