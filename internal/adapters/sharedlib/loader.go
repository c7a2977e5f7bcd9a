// Package sharedlib loads addon code modules built as Go plugins.
//
// A plugin declares its entry points by exporting
//
//	func RegisterAddon(reg ports.EntryPointRegistrar)
package sharedlib

import (
	"context"
	"path/filepath"
	"plugin"
	"strings"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Ext is the file extension of shared modules.
const Ext = ".so"

// RegisterSymbol is the exported function a shared module must provide.
const RegisterSymbol = "RegisterAddon"

var _ ports.ModuleLoader = (*Loader)(nil)

// Library is an opened shared module.
type Library interface {
	Lookup(symbol string) (plugin.Symbol, error)
}

// Opener opens the shared module at path.
type Opener func(path string) (Library, error)

// Loader loads shared modules.
type Loader struct {
	open Opener
}

// NewLoader creates a Loader backed by the Go plugin runtime.
func NewLoader() *Loader {
	return NewLoaderWithOpener(func(path string) (Library, error) {
		return plugin.Open(path)
	})
}

// NewLoaderWithOpener creates a Loader with a custom opener.
func NewLoaderWithOpener(open Opener) *Loader {
	return &Loader{open: open}
}

// Supports reports whether path is a shared module.
func (l *Loader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// LoadModule opens the module at path and calls its RegisterAddon function.
func (l *Loader) LoadModule(ctx context.Context, path string, reg ports.EntryPointRegistrar) (*domain.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	lib, err := l.open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	sym, err := lib.Lookup(RegisterSymbol)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	var register func(ports.EntryPointRegistrar)
	switch fn := sym.(type) {
	case func(ports.EntryPointRegistrar):
		register = fn
	case *func(ports.EntryPointRegistrar):
		register = *fn
	default:
		err := zerr.With(domain.ErrModuleLoadFailure, "module", path)
		return nil, zerr.With(err, "symbol", RegisterSymbol)
	}
	register(reg)

	return &domain.Module{
		Name: domain.Stem(path),
		Path: path,
		Kind: domain.ModuleKindShared,
	}, nil
}
