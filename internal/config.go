package internal

import (
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables shared by the constructions that need a tolerance or
// randomness. A nil *Config means DefaultConfig().
type Config struct {
	// Tolerance for collinearity, parallel lines and containment. Zero or less
	// means the default.
	Epsilon float64 `yaml:"epsilon"`
	// Seed for the enclosing circle shuffle. Zero means seed from the clock on
	// every call.
	Seed int64 `yaml:"seed"`
	// Explicit random source. Takes precedence over Seed. A *rand.Rand is not
	// safe for concurrent use, so don't share one between goroutines.
	Rand *rand.Rand `yaml:"-"`
	// Called whenever the enclosing circle search replaces its current circle,
	// with the boundary points that define the new one.
	Trace func(c Circle, support ...Point) `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Epsilon: Epsilon,
	}
}

// Read a YAML config on top of the defaults. An empty document gives the
// defaults.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(cfg); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "decoding config")
	}
	if cfg.Epsilon < 0 {
		return nil, errors.Errorf("epsilon must not be negative, got %v", cfg.Epsilon)
	}
	return cfg, nil
}

// The tolerance in effect. Anything but a positive Epsilon gives the default,
// which covers Configs built as literals.
func (cfg *Config) Tolerance() float64 {
	if cfg == nil || !(cfg.Epsilon > 0) {
		return Epsilon
	}
	return cfg.Epsilon
}

// Every call gets its own source unless the caller injected one, so concurrent
// calls never contend on a shared generator.
func (cfg *Config) random() *rand.Rand {
	if cfg != nil && cfg.Rand != nil {
		return cfg.Rand
	}
	seed := time.Now().UnixNano()
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	}
	return rand.New(rand.NewSource(seed))
}

func (cfg *Config) trace(c Circle, support ...Point) {
	if cfg != nil && cfg.Trace != nil {
		cfg.Trace(c, support...)
	}
}
