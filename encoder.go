package instruction

// Encode produces the instruction data Decode accepts for the given command.
func Encode(cmd Command) ([]byte, error) {
	if cmd == nil {
		return nil, InvalidCommandError
	}
	return cmd.MarshalBinary()
}
