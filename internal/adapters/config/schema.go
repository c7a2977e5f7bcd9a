package config

import "time"

// Addonsfile represents the structure of the addons.yaml configuration file.
type Addonsfile struct {
	Version   string   `yaml:"version"`
	Enabled   *bool    `yaml:"enabled"`
	Roots     []string `yaml:"roots"`
	LoadOrder []string `yaml:"loadOrder"`
	Priority  int      `yaml:"priority"`
	Strict    *bool    `yaml:"strict"`
	Ignore    []string `yaml:"ignore"`
	Host      HostDTO  `yaml:"host"`
	Tick      TickDTO  `yaml:"tick"`
	Watch     WatchDTO `yaml:"watch"`
}

// HostDTO represents the host resource section.
type HostDTO struct {
	Path      string `yaml:"path"`
	MountPath string `yaml:"mountPath"`
	Priority  *int   `yaml:"priority"`
}

// TickDTO represents the scheduler section.
type TickDTO struct {
	Rate         float64 `yaml:"rate"`
	StepsPerTick int     `yaml:"stepsPerTick"`
}

// WatchDTO represents the watch mode section.
type WatchDTO struct {
	Debounce    time.Duration `yaml:"debounce"`
	MetricsAddr string        `yaml:"metricsAddr"`
}

// envOverrides are read from ADDON_* environment variables. Unset variables
// leave the file values untouched.
type envOverrides struct {
	Enabled      *bool    `envconfig:"ENABLED"`
	Roots        []string `envconfig:"ROOTS"`
	LoadOrder    []string `envconfig:"LOAD_ORDER"`
	Priority     *int     `envconfig:"PRIORITY"`
	Strict       *bool    `envconfig:"STRICT"`
	TickRate     *float64 `envconfig:"TICK_RATE"`
	StepsPerTick *int     `envconfig:"STEPS_PER_TICK"`
}
