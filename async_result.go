package instruction

// AsyncResult is delivered by AsyncList.AwaitIterator once an async command is handled.
// Index is the position of the command within the list.
type AsyncResult struct {
	Index int
	Cmd   Command
	Err   error
}
