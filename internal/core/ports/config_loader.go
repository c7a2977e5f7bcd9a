package ports

import "go.trai.ch/addon/internal/core/domain"

// ConfigLoader defines the interface for loading the addon configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration by walking up from cwd. Without a
	// configuration file the defaults apply, rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
