package instruction

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const defaultQueueBuffer = 100

// Config holds the bus settings that may be provided through the environment.
// A zero WorkerPoolSize keeps runtime.GOMAXPROCS(0) workers, a zero QueueBuffer makes the queue unbuffered.
type Config struct {
	// WorkerPoolSize is the number of workers handling async commands.
	WorkerPoolSize int `env:"WORKER_POOL_SIZE"`
	// QueueBuffer is the buffer size of the async commands queue.
	QueueBuffer int `env:"QUEUE_BUFFER" envDefault:"100"`
}

// LoadConfig reads the Config from environment variables named with the given prefix,
// e.g. "COUNTER_" reads COUNTER_WORKER_POOL_SIZE and COUNTER_QUEUE_BUFFER.
func LoadConfig(prefix string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, fmt.Errorf("instruction: parse env: %w", err)
	}
	if cfg.WorkerPoolSize < 0 || cfg.QueueBuffer < 0 {
		return Config{}, fmt.Errorf("instruction: parse env: %w", NegativeConfigError)
	}
	return cfg, nil
}
