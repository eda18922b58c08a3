package instruction

import (
	"errors"
	"math"
	"sync"
)

//------Errors------//

const (
	overflowError  = BusError("counter overflow")
	underflowError = BusError("counter underflow")
)

//------Handlers------//

// testCounterHandler applies commands to an in-memory counter.
type testCounterHandler struct {
	sync.Mutex
	value   uint32
	handled int
}

func (hdl *testCounterHandler) Handle(cmd Command) error {
	hdl.Lock()
	defer hdl.Unlock()
	switch cmd := cmd.(type) {
	case Increment:
		if uint64(hdl.value)+uint64(cmd.Args.Value) > math.MaxUint32 {
			return overflowError
		}
		hdl.value += cmd.Args.Value
	case Decrement:
		if cmd.Args.Value > hdl.value {
			return underflowError
		}
		hdl.value -= cmd.Args.Value
	case Set:
		hdl.value = cmd.Args.Value
	case Reset:
		hdl.value = 0
	}
	hdl.handled++
	return nil
}

func (hdl *testCounterHandler) Value() uint32 {
	hdl.Lock()
	defer hdl.Unlock()
	return hdl.value
}

func (hdl *testCounterHandler) Handled() int {
	hdl.Lock()
	defer hdl.Unlock()
	return hdl.handled
}

type testHandlerAsync struct {
	wg *sync.WaitGroup
}

func (hdl *testHandlerAsync) Handle(cmd Command) error {
	hdl.wg.Done()
	return nil
}

// testBlockingHandler holds the first command until release is closed.
type testBlockingHandler struct {
	once    sync.Once
	started chan struct{}
	release chan struct{}
}

func newTestBlockingHandler() *testBlockingHandler {
	return &testBlockingHandler{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (hdl *testBlockingHandler) Handle(cmd Command) error {
	hdl.once.Do(func() { close(hdl.started) })
	<-hdl.release
	return nil
}

type testHandlerError struct{}

func (hdl *testHandlerError) Handle(cmd Command) error {
	return errors.New("command failed")
}

type testHandlerOrder struct {
	position uint32
	seen     *[]uint32
}

func (hdl *testHandlerOrder) Handle(cmd Command) error {
	*hdl.seen = append(*hdl.seen, hdl.position)
	return nil
}

//------Error Handlers------//

type storeErrorsHandler struct {
	sync.Mutex
	errs map[Identifier]error
}

func newStoreErrorsHandler() *storeErrorsHandler {
	return &storeErrorsHandler{
		errs: make(map[Identifier]error),
	}
}

func (hdl *storeErrorsHandler) Handle(cmd Command, err error) {
	hdl.Lock()
	hdl.errs[hdl.key(cmd)] = err
	hdl.Unlock()
}

func (hdl *storeErrorsHandler) Error(cmd Command) error {
	hdl.Lock()
	defer hdl.Unlock()
	if err, hasError := hdl.errs[hdl.key(cmd)]; hasError {
		return err
	}
	return nil
}

func (hdl *storeErrorsHandler) key(cmd Command) Identifier {
	if cmd == nil {
		return Unidentified
	}
	return cmd.Identifier()
}

// ------Middlewares------//

type testLoggerMiddleware struct {
	sync.Mutex
	log []string
}

func (mw *testLoggerMiddleware) HandleInward(cmd Command) error {
	mw.append("inward|" + string(cmd.Identifier()))
	return nil
}

func (mw *testLoggerMiddleware) HandleOutward(cmd Command, err error) error {
	mw.append("outward|" + string(cmd.Identifier()))
	return err
}

func (mw *testLoggerMiddleware) append(entry string) {
	mw.Lock()
	mw.log = append(mw.log, entry)
	mw.Unlock()
}

func (mw *testLoggerMiddleware) entries() []string {
	mw.Lock()
	defer mw.Unlock()
	return append([]string(nil), mw.log...)
}

type testErrorMiddleware struct {
	inwardFailure  bool
	outwardFailure bool
}

func (mw *testErrorMiddleware) HandleInward(cmd Command) error {
	if mw.inwardFailure {
		return errors.New("inward middleware failure")
	}
	return nil
}

func (mw *testErrorMiddleware) HandleOutward(cmd Command, err error) error {
	if mw.outwardFailure {
		return errors.New("outward middleware failure")
	}
	return err
}

//------General------//

func mustEncode(cmd Command) []byte {
	data, err := Encode(cmd)
	if err != nil {
		panic(err)
	}
	return data
}
