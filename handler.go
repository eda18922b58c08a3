package instruction

// Handler must be implemented for a type to qualify as a command handler.
type Handler interface {
	Handle(cmd Command) error
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(cmd Command) error

// Handle calls fn(cmd).
func (fn HandlerFunc) Handle(cmd Command) error {
	return fn(cmd)
}
