package instruction

import (
	"errors"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("COUNTER_WORKER_POOL_SIZE", "8")
	t.Setenv("COUNTER_QUEUE_BUFFER", "250")

	cfg, err := LoadConfig("COUNTER_")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkerPoolSize != 8 || cfg.QueueBuffer != 250 {
		t.Errorf("Unexpected configuration %+v.", cfg)
	}
}

func TestLoadConfig_Unbuffered(t *testing.T) {
	t.Setenv("COUNTER_QUEUE_BUFFER", "0")

	cfg, err := LoadConfig("COUNTER_")
	if err != nil {
		t.Fatal(err)
	}
	bus := NewBus()
	bus.Configure(cfg)
	bus.Initialize()
	if cap(bus.asyncCommandsQueue) != 0 {
		t.Error("QUEUE_BUFFER=0 should make the queue unbuffered.")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("UNSET_INSTRUCTION_TEST_")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WorkerPoolSize != 0 || cfg.QueueBuffer != defaultQueueBuffer {
		t.Errorf("Unexpected configuration %+v.", cfg)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("COUNTER_QUEUE_BUFFER", "lots")
	if _, err := LoadConfig("COUNTER_"); err == nil {
		t.Error("Expected a parse error.")
	}

	t.Setenv("COUNTER_QUEUE_BUFFER", "-1")
	if _, err := LoadConfig("COUNTER_"); !errors.Is(err, NegativeConfigError) {
		t.Errorf("Expected NegativeConfigError, got %v.", err)
	}
}
