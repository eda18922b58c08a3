package instruction

import "encoding/binary"

// Identifier is used to create a consistent identity solution for commands
type Identifier string

const (
	// Unidentified is reported to error handlers when no command could be decoded.
	Unidentified        Identifier = "unidentified"
	IncrementIdentifier Identifier = "counter:increment"
	DecrementIdentifier Identifier = "counter:decrement"
	SetIdentifier       Identifier = "counter:set"
	ResetIdentifier     Identifier = "counter:reset"
)

// Discriminant is the leading tag byte of an encoded instruction.
type Discriminant byte

const (
	IncrementDiscriminant Discriminant = iota
	DecrementDiscriminant
	SetDiscriminant
	ResetDiscriminant
)

// Command is one decoded operation against the counter.
// The set of commands is closed: Increment, Decrement, Set and Reset.
type Command interface {
	Identifier() Identifier
	Discriminant() Discriminant
	MarshalBinary() ([]byte, error)
	sealed()
}

// updateArgsSize is the encoded length of UpdateArgs.
const updateArgsSize = 4

// UpdateArgs carries the operand of Increment, Decrement and Set.
type UpdateArgs struct {
	Value uint32
}

// MarshalBinary encodes the arguments as a little-endian uint32.
func (args UpdateArgs) MarshalBinary() ([]byte, error) {
	return binary.LittleEndian.AppendUint32(make([]byte, 0, updateArgsSize), args.Value), nil
}

// UnmarshalBinary decodes the arguments from exactly four little-endian bytes.
func (args *UpdateArgs) UnmarshalBinary(data []byte) error {
	if len(data) != updateArgsSize {
		return MalformedPayloadError
	}
	args.Value = binary.LittleEndian.Uint32(data)
	return nil
}

// Increment adds Args.Value to the counter.
type Increment struct {
	Args UpdateArgs
}

func (Increment) Identifier() Identifier {
	return IncrementIdentifier
}

func (Increment) Discriminant() Discriminant {
	return IncrementDiscriminant
}

func (cmd Increment) MarshalBinary() ([]byte, error) {
	return marshalUpdate(IncrementDiscriminant, cmd.Args), nil
}

func (Increment) sealed() {}

// Decrement subtracts Args.Value from the counter.
type Decrement struct {
	Args UpdateArgs
}

func (Decrement) Identifier() Identifier {
	return DecrementIdentifier
}

func (Decrement) Discriminant() Discriminant {
	return DecrementDiscriminant
}

func (cmd Decrement) MarshalBinary() ([]byte, error) {
	return marshalUpdate(DecrementDiscriminant, cmd.Args), nil
}

func (Decrement) sealed() {}

// Set overwrites the counter with Args.Value.
type Set struct {
	Args UpdateArgs
}

func (Set) Identifier() Identifier {
	return SetIdentifier
}

func (Set) Discriminant() Discriminant {
	return SetDiscriminant
}

func (cmd Set) MarshalBinary() ([]byte, error) {
	return marshalUpdate(SetDiscriminant, cmd.Args), nil
}

func (Set) sealed() {}

// Reset sets the counter to zero.
type Reset struct{}

func (Reset) Identifier() Identifier {
	return ResetIdentifier
}

func (Reset) Discriminant() Discriminant {
	return ResetDiscriminant
}

func (Reset) MarshalBinary() ([]byte, error) {
	return []byte{byte(ResetDiscriminant)}, nil
}

func (Reset) sealed() {}

func marshalUpdate(tag Discriminant, args UpdateArgs) []byte {
	data := make([]byte, 1, 1+updateArgsSize)
	data[0] = byte(tag)
	return binary.LittleEndian.AppendUint32(data, args.Value)
}
