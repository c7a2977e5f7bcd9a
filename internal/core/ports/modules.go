package ports

import (
	"context"

	"go.trai.ch/addon/internal/core/domain"
)

//go:generate mockgen -source=modules.go -destination=mocks/mock_modules.go -package=mocks

// ModuleLoader loads executable code modules of one kind.
type ModuleLoader interface {
	// Supports reports whether the loader handles the file at path.
	Supports(path string) bool
	// LoadModule loads the module at path. Entry points the module declares
	// are reported through reg.
	LoadModule(ctx context.Context, path string, reg EntryPointRegistrar) (*domain.Module, error)
}

// EntryPointRegistrar receives entry point factories declared by loaded modules.
type EntryPointRegistrar interface {
	RegisterEntryPoint(name string, factory EntryPointFactory)
}

// EntryPoint drives the load of one addon package.
type EntryPoint interface {
	// LoadAddon mounts the package described by lc and completes it.
	LoadAddon(ctx context.Context, lc *domain.LoadContext) error
}

// EntryPointFactory creates an entry point bound to the host that loads it.
type EntryPointFactory func(host AddonHost) EntryPoint

// AddonHost exposes the loading steps an entry point can compose.
type AddonHost interface {
	// LoadModule loads one more code module into lc.
	LoadModule(ctx context.Context, lc *domain.LoadContext, path string) error
	// MountResources mounts both overlay layers of lc and records scenes.
	MountResources(ctx context.Context, lc *domain.LoadContext) error
	// Default returns the built-in entry point.
	Default() EntryPoint
}
