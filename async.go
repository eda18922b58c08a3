package instruction

import "sync"

// Async is the struct returned from async commands.
type Async struct {
	sync.Mutex
	cmd      Command
	done     *flag
	pending  chan struct{}
	listener func(as *Async)
	err      error
}

func newAsync(cmd Command) *Async {
	return &Async{
		cmd:     cmd,
		done:    newFlag(),
		pending: make(chan struct{}),
	}
}

//------Fetch Data------//

// Command returns the command being handled.
func (as *Async) Command() Command {
	return as.cmd
}

// Await blocks until the command is handled and returns the resulting error.
// It may be called any number of times, from any number of goroutines.
func (as *Async) Await() error {
	<-as.pending
	return as.err
}

//------Internal------//

func (as *Async) complete(err error) {
	as.Lock()
	if !as.done.enable() {
		as.Unlock()
		return
	}
	as.err = err
	listener := as.listener
	as.Unlock()

	close(as.pending)
	if listener != nil {
		listener(as)
	}
}

// setListener registers fn to be called once the command is handled.
// fn is called immediately when the command was already handled.
func (as *Async) setListener(fn func(as *Async)) {
	as.Lock()
	if !as.done.enabled() {
		as.listener = fn
		as.Unlock()
		return
	}
	as.Unlock()
	fn(as)
}
