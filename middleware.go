package instruction

// InwardMiddleware must be implemented for a type to qualify as an inward command middleware.
// An inward middleware process a command before being provided to the handlers.
// Returning an error prevents the command from reaching the handlers.
type InwardMiddleware interface {
	HandleInward(cmd Command) error
}

// OutwardMiddleware must be implemented for a type to qualify as an outward command middleware.
// An outward middleware process the command after being provided to the handlers.
// The returned error replaces the one produced by the handlers.
type OutwardMiddleware interface {
	HandleOutward(cmd Command, err error) error
}
