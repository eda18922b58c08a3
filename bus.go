package instruction

import (
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/io-da/schedule"
)

// Bus dispatches decoded commands to the handlers it was initialized with.
// The Bus should be instantiated using the NewBus function.
type Bus struct {
	// lifecycle orders Initialize and shutdown against the queue and scheduler users.
	lifecycle          sync.RWMutex
	workerPoolSize     int
	queueBuffer        int
	initialized        *flag
	shuttingDown       *flag
	workers            *counter
	handlers           []Handler
	errorHandlers      []ErrorHandler
	inwardMiddlewares  []InwardMiddleware
	outwardMiddlewares []OutwardMiddleware
	asyncCommandsQueue chan *Async
	closed             chan bool
	scheduleProcessor  *scheduleProcessor
}

// NewBus instantiates the Bus struct.
// The Initialization of the Bus is performed separately (Initialize function) for dependency injection purposes.
func NewBus() *Bus {
	return &Bus{
		workerPoolSize: runtime.GOMAXPROCS(0),
		queueBuffer:    defaultQueueBuffer,
		initialized:    newFlag(),
		shuttingDown:   newFlag(),
		workers:        newCounter(),
		errorHandlers:  make([]ErrorHandler, 0),
		closed:         make(chan bool),
	}
}

// WorkerPoolSize may optionally be provided to tweak the worker pool size for async commands.
// It can only be adjusted *before* the bus is initialized.
// It defaults to the value returned by runtime.GOMAXPROCS(0).
func (bus *Bus) WorkerPoolSize(workerPoolSize int) {
	if !bus.isInitialized() && workerPoolSize > 0 {
		bus.workerPoolSize = workerPoolSize
	}
}

// QueueBuffer may optionally be provided to tweak the buffer size of the async commands queue.
// It can only be adjusted *before* the bus is initialized.
// It defaults to 100.
func (bus *Bus) QueueBuffer(queueBuffer int) {
	if !bus.isInitialized() && queueBuffer >= 0 {
		bus.queueBuffer = queueBuffer
	}
}

// Configure applies cfg.
// A zero WorkerPoolSize keeps the current pool size, QueueBuffer is applied as is (0 makes the queue unbuffered).
// It can only be adjusted *before* the bus is initialized.
func (bus *Bus) Configure(cfg Config) {
	bus.WorkerPoolSize(cfg.WorkerPoolSize)
	bus.QueueBuffer(cfg.QueueBuffer)
}

// ErrorHandlers may optionally be provided.
// They will receive any error thrown during the command process, decoding included.
func (bus *Bus) ErrorHandlers(hdls ...ErrorHandler) {
	if !bus.isInitialized() {
		bus.errorHandlers = hdls
	}
}

// InwardMiddlewares may optionally be provided.
// They run, in order, before the handlers.
func (bus *Bus) InwardMiddlewares(mws ...InwardMiddleware) {
	if !bus.isInitialized() {
		bus.inwardMiddlewares = mws
	}
}

// OutwardMiddlewares may optionally be provided.
// They run, in order, after the handlers.
func (bus *Bus) OutwardMiddlewares(mws ...OutwardMiddleware) {
	if !bus.isInitialized() {
		bus.outwardMiddlewares = mws
	}
}

// Initialize the command bus.
// The bus only reports itself initialized once the workers and the schedule processor are running.
func (bus *Bus) Initialize(hdls ...Handler) {
	bus.lifecycle.Lock()
	defer bus.lifecycle.Unlock()
	if bus.isInitialized() {
		return
	}
	bus.handlers = hdls
	bus.asyncCommandsQueue = make(chan *Async, bus.queueBuffer)
	for i := 0; i < bus.workerPoolSize; i++ {
		bus.workerUp()
		go bus.worker(bus.asyncCommandsQueue, bus.closed)
	}
	bus.scheduleProcessor = newScheduleProcessor(bus)
	bus.initialized.enable()
}

// Handle the command synchronously.
func (bus *Bus) Handle(cmd Command) error {
	if err := bus.isValid(cmd); err != nil {
		return err
	}
	return bus.handle(cmd)
}

// HandleAsync the command using the workers asynchronously.
func (bus *Bus) HandleAsync(cmd Command) (*Async, error) {
	// fail fast instead of waiting for a running shutdown to release the lifecycle lock
	if cmd != nil && bus.isShuttingDown() {
		bus.error(cmd, BusIsShuttingDownError)
		return nil, BusIsShuttingDownError
	}
	bus.lifecycle.RLock()
	defer bus.lifecycle.RUnlock()
	if err := bus.isValid(cmd); err != nil {
		return nil, err
	}
	as := newAsync(cmd)
	bus.asyncCommandsQueue <- as
	return as, nil
}

// HandleInstruction decodes the instruction data and handles the resulting command synchronously.
// Decoding errors are returned unchanged and nothing is handled.
func (bus *Bus) HandleInstruction(data []byte) error {
	cmd, err := bus.decode(data)
	if err != nil {
		return err
	}
	return bus.Handle(cmd)
}

// HandleInstructionAsync decodes the instruction data and handles the resulting command asynchronously.
func (bus *Bus) HandleInstructionAsync(data []byte) (*Async, error) {
	cmd, err := bus.decode(data)
	if err != nil {
		return nil, err
	}
	return bus.HandleAsync(cmd)
}

// Schedule the command to be handled asynchronously whenever the schedule triggers.
// The returned key may be used to Unschedule it.
func (bus *Bus) Schedule(cmd Command, sch *schedule.Schedule) (uuid.UUID, error) {
	bus.lifecycle.RLock()
	defer bus.lifecycle.RUnlock()
	if err := bus.isValid(cmd); err != nil {
		return uuid.Nil, err
	}
	if sch == nil {
		return uuid.Nil, InvalidScheduleError
	}
	return bus.scheduleProcessor.add(newScheduledCommand(cmd, sch)), nil
}

// Unschedule removes the scheduled commands identified by the given keys.
func (bus *Bus) Unschedule(keys ...uuid.UUID) {
	bus.lifecycle.RLock()
	defer bus.lifecycle.RUnlock()
	if bus.isInitialized() {
		bus.scheduleProcessor.remove(keys...)
	}
}

// Shutdown the command bus gracefully.
// *Async commands still queued when Shutdown is called fail with BusIsShuttingDownError*,
// the command being handled by each worker completes normally.
// Handlers must not await async commands of the same bus, the workers stop only once they return.
func (bus *Bus) Shutdown() {
	if bus.isInitialized() && bus.shuttingDown.enable() {
		go bus.shutdown()
	}
}

//-----Private Functions------//

func (bus *Bus) isInitialized() bool {
	return bus.initialized.enabled()
}

func (bus *Bus) isShuttingDown() bool {
	return bus.shuttingDown.enabled()
}

func (bus *Bus) decode(data []byte) (Command, error) {
	cmd, err := Decode(data)
	if err != nil {
		bus.error(nil, err)
		return nil, err
	}
	return cmd, nil
}

func (bus *Bus) worker(asyncCommandsQueue <-chan *Async, closed chan<- bool) {
	for as := range asyncCommandsQueue {
		if as == nil {
			break
		}
		if bus.isShuttingDown() {
			as.complete(BusIsShuttingDownError)
			continue
		}
		as.complete(bus.handle(as.cmd))
	}
	closed <- true
}

func (bus *Bus) handle(cmd Command) error {
	for _, mw := range bus.inwardMiddlewares {
		if err := mw.HandleInward(cmd); err != nil {
			bus.error(cmd, err)
			return err
		}
	}

	var err error
	for _, hdl := range bus.handlers {
		if err = hdl.Handle(cmd); err != nil {
			break
		}
	}

	for _, mw := range bus.outwardMiddlewares {
		err = mw.HandleOutward(cmd, err)
	}

	if err != nil {
		bus.error(cmd, err)
	}
	return err
}

func (bus *Bus) workerUp() {
	bus.workers.increment()
}

func (bus *Bus) workerDown() {
	bus.workers.decrement()
}

// shutdown holds the lifecycle lock while the workers stop, so nothing is queued behind the stop markers.
// The workers fail every command queued before the markers.
func (bus *Bus) shutdown() {
	bus.lifecycle.Lock()
	defer bus.lifecycle.Unlock()
	bus.scheduleProcessor.shutdown()
	for !bus.workers.is(0) {
		bus.asyncCommandsQueue <- nil
		<-bus.closed
		bus.workerDown()
	}
	bus.initialized.disable()
	bus.shuttingDown.disable()
}

func (bus *Bus) isValid(cmd Command) error {
	var err error
	if cmd == nil {
		err = InvalidCommandError
		bus.error(cmd, err)
		return err
	}
	if !bus.isInitialized() {
		err = BusNotInitializedError
		bus.error(cmd, err)
		return err
	}
	if bus.isShuttingDown() {
		err = BusIsShuttingDownError
		bus.error(cmd, err)
		return err
	}
	return nil
}

func (bus *Bus) error(cmd Command, err error) {
	for _, errHdl := range bus.errorHandlers {
		errHdl.Handle(cmd, err)
	}
}
