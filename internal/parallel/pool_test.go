package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewPool_Workers(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		p := NewPool(tt.n)
		if got := p.Workers(); got != tt.want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", tt.n, got, tt.want)
		}
		p.Close()
	}
}

func TestPool_ExecuteAll(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	const n = 100
	var count atomic.Int32
	jobs := make([]func(), n)
	for i := range jobs {
		jobs[i] = func() { count.Add(1) }
	}
	p.ExecuteAll(jobs)

	if got := count.Load(); got != n {
		t.Errorf("ran %d jobs, want %d", got, n)
	}
}

func TestPool_ExecuteAll_EachJobOnce(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	seen := make([]int, 50)
	var mu sync.Mutex
	jobs := make([]func(), len(seen))
	for i := range jobs {
		jobs[i] = func() {
			mu.Lock()
			seen[i]++
			mu.Unlock()
		}
	}
	p.ExecuteAll(jobs)

	for i, v := range seen {
		if v != 1 {
			t.Errorf("job %d ran %d times, want 1", i, v)
		}
	}
}

func TestPool_ExecuteAll_Empty(t *testing.T) {
	p := NewPool(2)
	defer p.Close()
	p.ExecuteAll(nil)
}

func TestPool_StealsFromSlowWorker(t *testing.T) {
	p := NewPool(2)
	defer p.Close()

	// The first job blocks worker 0; the quick jobs queued behind it
	// finish only if worker 1 steals them.
	release := make(chan struct{})
	var done atomic.Int32
	jobs := []func(){
		func() { <-release; done.Add(1) },
	}
	for range 6 {
		jobs = append(jobs, func() { done.Add(1) })
	}

	finished := make(chan struct{})
	go func() {
		p.ExecuteAll(jobs)
		close(finished)
	}()

	deadline := time.After(5 * time.Second)
	for done.Load() < int32(len(jobs)-1) {
		select {
		case <-deadline:
			t.Fatalf("only %d of %d quick jobs finished", done.Load(), len(jobs)-1)
		default:
			time.Sleep(time.Millisecond)
		}
	}
	close(release)
	<-finished
}

func TestPool_CloseIdempotent(t *testing.T) {
	p := NewPool(2)
	p.Close()
	p.Close()

	ran := false
	p.ExecuteAll([]func(){func() { ran = true }})
	if ran {
		t.Error("closed pool ran a job")
	}
}

func TestPool_NoGoroutineLeak(t *testing.T) {
	before := runtime.NumGoroutine()
	for range 5 {
		p := NewPool(4)
		p.ExecuteAll([]func(){func() {}, func() {}})
		p.Close()
	}

	deadline := time.Now().Add(2 * time.Second)
	for runtime.NumGoroutine() > before && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if after := runtime.NumGoroutine(); after > before {
		t.Errorf("goroutines: before %d, after %d", before, after)
	}
}

func BenchmarkPool_ExecuteAll(b *testing.B) {
	p := NewPool(0)
	defer p.Close()
	jobs := make([]func(), 64)
	for i := range jobs {
		jobs[i] = func() {}
	}
	for b.Loop() {
		p.ExecuteAll(jobs)
	}
}
