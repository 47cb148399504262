package shadow

import "sync"

// stateCell holds the last-known application state. The lock is never held
// across I/O or while a user callback runs.
type stateCell[T any] struct {
	mu    sync.Mutex
	value T
}

func (c *stateCell[T]) get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *stateCell[T]) set(value T) {
	c.mu.Lock()
	c.value = value
	c.mu.Unlock()
}

// update replaces the value with fn's result when fn reports a change. It
// returns the new value and whether it changed.
func (c *stateCell[T]) update(fn func(current T) (T, bool, error)) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, changed, err := fn(c.value)
	if err != nil || !changed {
		return c.value, false, err
	}
	c.value = next
	return next, true, nil
}
