package instruction

// ErrorHandler must be implemented for a type to qualify as an error handler.
// cmd is nil when the error was raised before a command existed, e.g. while decoding.
type ErrorHandler interface {
	Handle(cmd Command, err error)
}
