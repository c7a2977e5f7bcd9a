package domain

import "time"

const (
	// DefaultTickRate is the number of scheduler ticks granted per second.
	DefaultTickRate = 120.0

	// DefaultStepsPerTick is the number of yields one tick allows.
	DefaultStepsPerTick = 8

	// DefaultWatchDebounce is the quiet period before a watch-triggered rediscovery.
	DefaultWatchDebounce = 250 * time.Millisecond

	// DefaultHostPriority ranks host resources below every addon.
	DefaultHostPriority = -1
)

// Config is the resolved addon configuration.
type Config struct {
	// Dir is the directory the configuration was loaded from, or the working directory.
	Dir string
	// File is the configuration file path; empty when defaults were used.
	File string

	// Enabled is the user preference gating addon mode.
	Enabled bool
	// Roots are absolute addon root directories in scan order. Later roots win duplicates.
	Roots []string
	// LoadOrder lists package names in the order they are loaded.
	LoadOrder []string
	// Priority is the resource priority of addon registrations.
	Priority int
	// Strict is the initial single-file failure policy of addon loads.
	Strict bool
	// Ignore holds doublestar patterns for loose files that are never mounted.
	Ignore []string

	Host  HostConfig
	Tick  TickConfig
	Watch WatchConfig
}

// HostConfig configures host-resource mode.
type HostConfig struct {
	// Path is the host resource directory; empty disables host-resource mode.
	Path      string
	MountPath string
	Priority  int
}

// TickConfig configures the cooperative scheduler.
type TickConfig struct {
	Rate         float64
	StepsPerTick int
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce time.Duration
	// MetricsAddr serves Prometheus metrics while watching when set.
	MetricsAddr string
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig(dir string) *Config {
	return &Config{
		Dir:     dir,
		Enabled: true,
		Strict:  true,
		Host: HostConfig{
			Priority: DefaultHostPriority,
		},
		Tick: TickConfig{
			Rate:         DefaultTickRate,
			StepsPerTick: DefaultStepsPerTick,
		},
		Watch: WatchConfig{
			Debounce: DefaultWatchDebounce,
		},
	}
}
