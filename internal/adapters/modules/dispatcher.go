// Package modules selects the module loader for each code module file.
package modules

import (
	"context"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleLoader = (*Dispatcher)(nil)

// Dispatcher delegates to the first loader that supports a path.
type Dispatcher struct {
	loaders []ports.ModuleLoader
}

// NewDispatcher creates a Dispatcher trying loaders in order.
func NewDispatcher(loaders ...ports.ModuleLoader) *Dispatcher {
	return &Dispatcher{loaders: loaders}
}

// Supports reports whether any loader handles path.
func (d *Dispatcher) Supports(path string) bool {
	return d.loaderFor(path) != nil
}

// LoadModule loads path with the first supporting loader.
func (d *Dispatcher) LoadModule(ctx context.Context, path string, reg ports.EntryPointRegistrar) (*domain.Module, error) {
	l := d.loaderFor(path)
	if l == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrNoModuleLoader, domain.ErrModuleLoadFailure.Error()), "module", path)
	}
	return l.LoadModule(ctx, path, reg)
}

func (d *Dispatcher) loaderFor(path string) ports.ModuleLoader {
	for _, l := range d.loaders {
		if l.Supports(path) {
			return l
		}
	}
	return nil
}
