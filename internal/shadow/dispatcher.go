package shadow

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// dispatcher runs tasks one at a time on its own goroutine, off the
// transport callback goroutines. The queue is unbounded so enqueue never
// blocks a callback.
type dispatcher struct {
	mu      sync.Mutex
	queue   []func()
	stopped bool

	wake  chan struct{}
	done  chan struct{}
	group errgroup.Group
}

func newDispatcher() *dispatcher {
	d := &dispatcher{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	d.group.Go(func() error {
		d.run()
		return nil
	})
	return d
}

// enqueue schedules fn. It reports false once the dispatcher is stopped.
func (d *dispatcher) enqueue(fn func()) bool {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return false
	}
	d.queue = append(d.queue, fn)
	d.mu.Unlock()

	select {
	case d.wake <- struct{}{}:
	default:
	}
	return true
}

// stop discards queued tasks and waits for a running one to return.
func (d *dispatcher) stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	d.queue = nil
	d.mu.Unlock()

	close(d.done)
	_ = d.group.Wait()
}

func (d *dispatcher) run() {
	for {
		select {
		case <-d.done:
			return
		case <-d.wake:
		}

		for fn := d.next(); fn != nil; fn = d.next() {
			fn()
		}
	}
}

func (d *dispatcher) next() func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.queue) == 0 {
		return nil
	}
	fn := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return fn
}
