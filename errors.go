package instruction

import "fmt"

// DecodeError is used to create errors originating from instruction decoding
type DecodeError string

// Error returns the string message of the error.
func (e DecodeError) Error() string {
	return string(e)
}

const (
	// EmptyInstructionError will be returned when decoding instruction data without a discriminant.
	EmptyInstructionError = DecodeError("instruction: empty instruction data")
	// MalformedPayloadError will be returned when the payload does not match the layout required by its discriminant.
	MalformedPayloadError = DecodeError("instruction: malformed payload")
)

// UnknownDiscriminantError will be returned when the discriminant does not identify any command.
type UnknownDiscriminantError byte

// Error returns the string message of the error.
func (e UnknownDiscriminantError) Error() string {
	return fmt.Sprintf("instruction: unknown discriminant %d", byte(e))
}

// BusError is used to create errors originating from the command bus
type BusError string

// Error returns the string message of the error.
func (e BusError) Error() string {
	return string(e)
}

const (
	// InvalidCommandError will be returned when attempting to handle an invalid command.
	InvalidCommandError = BusError("instruction: invalid command")
	// BusNotInitializedError will be returned when attempting to handle a command before the bus is initialized.
	BusNotInitializedError = BusError("instruction: the bus is not initialized")
	// BusIsShuttingDownError will be returned when attempting to handle a command while the bus is shutting down.
	BusIsShuttingDownError = BusError("instruction: the bus is shutting down")
	// InvalidScheduleError will be returned when attempting to schedule a command without a schedule.
	InvalidScheduleError = BusError("instruction: invalid schedule")
	// EmptyAwaitListError will be returned when attempting to await an empty AsyncList
	EmptyAwaitListError = BusError("instruction: await list is empty")
)

// ConfigError is used to create errors originating from configuration loading
type ConfigError string

// Error returns the string message of the error.
func (e ConfigError) Error() string {
	return string(e)
}

// NegativeConfigError will be returned when a size in the configuration is negative.
const NegativeConfigError = ConfigError("instruction: sizes must not be negative")
