package instruction

import "sync/atomic"

// counter counts running workers and completed list entries.
type counter struct {
	atomic.Uint32
}

func newCounter() *counter {
	return &counter{}
}

func (c *counter) increment() uint32 {
	return c.Add(1)
}

func (c *counter) decrement() uint32 {
	return c.Add(^uint32(0))
}

func (c *counter) is(v uint32) bool {
	return c.Load() == v
}
