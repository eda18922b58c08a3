package instruction

// Decode translates raw instruction data into a Command.
//
// The first byte is the discriminant and the remaining bytes are the payload.
// Increment, Decrement and Set expect a payload of exactly four bytes holding a
// little-endian uint32. Reset expects no payload at all. Trailing bytes are
// rejected with MalformedPayloadError.
//
// Decode never returns a partial command: on failure the command is nil and the
// error is one of EmptyInstructionError, MalformedPayloadError or an
// UnknownDiscriminantError.
func Decode(data []byte) (Command, error) {
	if len(data) == 0 {
		return nil, EmptyInstructionError
	}

	tag, payload := Discriminant(data[0]), data[1:]
	switch tag {
	case IncrementDiscriminant:
		args, err := decodeUpdateArgs(payload)
		if err != nil {
			return nil, err
		}
		return Increment{Args: args}, nil
	case DecrementDiscriminant:
		args, err := decodeUpdateArgs(payload)
		if err != nil {
			return nil, err
		}
		return Decrement{Args: args}, nil
	case SetDiscriminant:
		args, err := decodeUpdateArgs(payload)
		if err != nil {
			return nil, err
		}
		return Set{Args: args}, nil
	case ResetDiscriminant:
		if len(payload) != 0 {
			return nil, MalformedPayloadError
		}
		return Reset{}, nil
	}
	return nil, UnknownDiscriminantError(tag)
}

func decodeUpdateArgs(payload []byte) (UpdateArgs, error) {
	var args UpdateArgs
	if err := args.UnmarshalBinary(payload); err != nil {
		return UpdateArgs{}, err
	}
	return args, nil
}
