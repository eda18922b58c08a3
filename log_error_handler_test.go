package instruction

import (
	"bytes"
	"log"
	"testing"
)

func TestLogErrorHandler(t *testing.T) {
	buf := &bytes.Buffer{}
	bus := NewBus()
	bus.ErrorHandlers(NewLogErrorHandler(log.New(buf, "", 0)))
	bus.Initialize(&testCounterHandler{})

	_ = bus.HandleInstruction([]byte{7})
	_ = bus.Handle(Decrement{UpdateArgs{Value: 1}})

	expected := "unidentified: instruction: unknown discriminant 7\n" +
		"counter:decrement: counter underflow\n"
	if buf.String() != expected {
		t.Errorf("Unexpected log output %q.", buf.String())
	}
}
