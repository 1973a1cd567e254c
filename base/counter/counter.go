package counter

import "sync"

// Counter is a goroutine safe tally
type Counter struct {
	count int
	mu    sync.RWMutex
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Add(val int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count += val
}

func (c *Counter) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.count
}

// Swap returns the current count and resets it to zero
func (c *Counter) Swap() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := c.count
	c.count = 0
	return n
}
