package strassen

import (
	"fmt"
	"runtime"
)

// DefaultBaseCaseSize is the block side length at or below which the
// engine switches from Strassen recursion to direct classical
// multiplication. 1024 is the point past which the triple loop's
// constant-factor advantage outweighs Strassen's asymptotic savings on
// typical hardware.
const DefaultBaseCaseSize = 1024

// Config controls the recursion engine.
type Config struct {
	// BaseCaseSize is the block side length at or below which direct
	// classical multiplication is used instead of further recursion.
	//
	// Lower values exercise more recursion levels (useful in tests);
	// higher values reduce handle churn on backends with expensive data
	// movement. Must be >= 1.
	//
	// Default: DefaultBaseCaseSize (1024)
	BaseCaseSize int `yaml:"baseCaseSize"`

	// MaxParallel bounds how many recursive subproblems run
	// concurrently across the whole call tree. The seven products at
	// each level are independent, so the engine dispatches them to a
	// bounded group and joins before assembling.
	//
	// Must be >= 1. A value of 1 gives fully sequential evaluation.
	//
	// Default: runtime.GOMAXPROCS(0)
	MaxParallel int `yaml:"maxParallel"`
}

// DefaultConfig returns a configuration with production defaults.
//
// Returns:
//   - Config: BaseCaseSize 1024, MaxParallel GOMAXPROCS
func DefaultConfig() Config {
	return Config{
		BaseCaseSize: DefaultBaseCaseSize,
		MaxParallel:  runtime.GOMAXPROCS(0),
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Zero values are treated as "not set". Called by New before Validate,
// so a zero Config is usable as-is.
//
// Parameters:
//   - cfg: Configuration to fill in place
func SetDefaults(cfg *Config) {
	if cfg.BaseCaseSize == 0 {
		cfg.BaseCaseSize = DefaultBaseCaseSize
	}
	if cfg.MaxParallel == 0 {
		cfg.MaxParallel = runtime.GOMAXPROCS(0)
	}
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: ErrInvalidConfig-wrapped explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.BaseCaseSize < 1 {
		return fmt.Errorf("%w: BaseCaseSize (%d) must be >= 1", ErrInvalidConfig, cfg.BaseCaseSize)
	}
	if cfg.MaxParallel < 1 {
		return fmt.Errorf("%w: MaxParallel (%d) must be >= 1", ErrInvalidConfig, cfg.MaxParallel)
	}

	return nil
}
