package sparsecs

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds deployment tuning for a World and its ThreadPool. None of
// these fields change the data contracts in spec.md §3-4; they size
// preallocation and concurrency, the way the retrieval pack's
// internal/config.Config sizes connection pools and queues.
type Config struct {
	World      WorldConfig      `toml:"world"`
	ThreadPool ThreadPoolConfig `toml:"thread_pool"`
}

// WorldConfig tunes entity-table preallocation.
type WorldConfig struct {
	InitialEntityCapacity int `toml:"initial_entity_capacity"`
}

// ThreadPoolConfig tunes the work-stealing pool.
type ThreadPoolConfig struct {
	Workers       int           `toml:"workers"`
	DequeCapacity int           `toml:"deque_capacity"`
	IdleWait      time.Duration `toml:"idle_wait"`
}

// DefaultConfig returns the tuning LoadConfig starts from before applying
// the file's values.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{InitialEntityCapacity: 1024},
		ThreadPool: ThreadPoolConfig{
			Workers:       4,
			DequeCapacity: 1024,
			IdleWait:      10 * time.Microsecond,
		},
	}
}

// LoadConfig reads a TOML config file, following the pack's
// internal/config.Load(path) pattern. Missing fields fall back to
// DefaultConfig's values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
