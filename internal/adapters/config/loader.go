// Package config loads the addon configuration file and its environment overrides.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables overriding the file.
const EnvPrefix = "ADDON"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using addons.yaml.
type Loader struct {
	Logger ports.Logger
	FS     ports.FileSystem
}

// NewLoader creates a new Loader with the given logger and filesystem.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{Logger: logger, FS: fsys}
}

// Load resolves the configuration for cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := domain.DefaultConfig(cwd)

	if configPath, ok := l.findConfiguration(cwd); ok {
		file, err := l.readAddonsfile(configPath)
		if err != nil {
			return nil, err
		}
		cfg.Dir = filepath.Dir(configPath)
		cfg.File = configPath
		applyFile(cfg, file)
		l.Logger.Debug(fmt.Sprintf("using addon configuration %s", configPath))
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	normalize(cfg)
	return cfg, nil
}

// findConfiguration walks up from cwd to the first directory holding addons.yaml.
func (l *Loader) findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := l.FS.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false
		}
		currentDir = parentDir
	}
}

func (l *Loader) readAddonsfile(configPath string) (*Addonsfile, error) {
	data, err := l.FS.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Addonsfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}
	return &file, nil
}

func applyFile(cfg *domain.Config, file *Addonsfile) {
	if file.Enabled != nil {
		cfg.Enabled = *file.Enabled
	}
	if file.Strict != nil {
		cfg.Strict = *file.Strict
	}
	cfg.Roots = file.Roots
	cfg.LoadOrder = file.LoadOrder
	cfg.Priority = file.Priority
	cfg.Ignore = file.Ignore

	cfg.Host.Path = file.Host.Path
	cfg.Host.MountPath = file.Host.MountPath
	if file.Host.Priority != nil {
		cfg.Host.Priority = *file.Host.Priority
	}

	if file.Tick.Rate > 0 {
		cfg.Tick.Rate = file.Tick.Rate
	}
	if file.Tick.StepsPerTick > 0 {
		cfg.Tick.StepsPerTick = file.Tick.StepsPerTick
	}
	if file.Watch.Debounce > 0 {
		cfg.Watch.Debounce = file.Watch.Debounce
	}
	cfg.Watch.MetricsAddr = file.Watch.MetricsAddr
}

func applyEnv(cfg *domain.Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return zerr.Wrap(err, domain.ErrConfigEnvFailed.Error())
	}

	if env.Enabled != nil {
		cfg.Enabled = *env.Enabled
	}
	if len(env.Roots) > 0 {
		cfg.Roots = env.Roots
	}
	if len(env.LoadOrder) > 0 {
		cfg.LoadOrder = env.LoadOrder
	}
	if env.Priority != nil {
		cfg.Priority = *env.Priority
	}
	if env.Strict != nil {
		cfg.Strict = *env.Strict
	}
	if env.TickRate != nil && *env.TickRate > 0 {
		cfg.Tick.Rate = *env.TickRate
	}
	if env.StepsPerTick != nil && *env.StepsPerTick > 0 {
		cfg.Tick.StepsPerTick = *env.StepsPerTick
	}
	return nil
}

// normalize makes every configured path absolute relative to the configuration directory.
func normalize(cfg *domain.Config) {
	if len(cfg.Roots) == 0 {
		cfg.Roots = []string{domain.DefaultRootDirName}
	}
	roots := make([]string, 0, len(cfg.Roots))
	for _, root := range cfg.Roots {
		roots = append(roots, resolvePath(cfg.Dir, root))
	}
	cfg.Roots = roots

	if cfg.Host.Path != "" {
		cfg.Host.Path = resolvePath(cfg.Dir, cfg.Host.Path)
	}
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
