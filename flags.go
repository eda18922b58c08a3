package instruction

import "sync/atomic"

// flag is an atomic on/off switch, the bus keeps one for each lifecycle state.
type flag struct {
	atomic.Uint32
}

func newFlag() *flag {
	return &flag{}
}

func (flg *flag) enabled() bool {
	return flg.Load() == 1
}

func (flg *flag) enable() (swapped bool) {
	return flg.CompareAndSwap(0, 1)
}

func (flg *flag) disable() (swapped bool) {
	return flg.CompareAndSwap(1, 0)
}
