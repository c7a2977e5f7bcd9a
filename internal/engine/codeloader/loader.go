// Package codeloader loads the code modules of a package and runs its entry point.
package codeloader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mounter mounts the overlay layers of a load.
type Mounter interface {
	Mount(ctx context.Context, lc *domain.LoadContext) error
}

// Loader loads code modules from the managed directory of a package and
// selects the entry point that finishes the load.
type Loader struct {
	fs      ports.FileSystem
	modules ports.ModuleLoader
	mounter Mounter
	sched   ports.Scheduler
	logger  ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(
	fsys ports.FileSystem,
	modules ports.ModuleLoader,
	mounter Mounter,
	sched ports.Scheduler,
	logger ports.Logger,
) *Loader {
	return &Loader{
		fs:      fsys,
		modules: modules,
		mounter: mounter,
		sched:   sched,
		logger:  logger,
	}
}

// Load loads the main module and every auxiliary module of lc, then runs the
// selected entry point. lc must carry a manifest.
//
// The entry point is, in order of preference: one declared by a loaded module
// (for the package name, else the first declared), one registered with
// Register for the package name, or the default entry point.
func (l *Loader) Load(ctx context.Context, lc *domain.LoadContext) error {
	h := &host{loader: l, reg: newRegistrar()}

	main, err := l.loadMain(ctx, lc, h.reg)
	if err != nil {
		return err
	}
	if err := l.loadAuxiliary(ctx, lc, h.reg, main); err != nil {
		return err
	}

	ep := l.entryPoint(lc, h)
	return ep.LoadAddon(ctx, lc)
}

func (l *Loader) loadMain(ctx context.Context, lc *domain.LoadContext, reg ports.EntryPointRegistrar) (string, error) {
	main := lc.Manifest.MainModule
	if main == "" {
		return "", nil
	}

	path, err := l.findModule(lc.SourcePath, main)
	if err != nil {
		return main, l.fail(lc, err)
	}

	m, err := l.modules.LoadModule(ctx, path, reg)
	if err != nil {
		return main, l.fail(lc, err)
	}
	lc.SetMainModule(m)
	l.logger.Debug(fmt.Sprintf("%s: loaded main module %s", lc.Name(), m.Name))

	return main, l.sched.Yield(ctx)
}

func (l *Loader) loadAuxiliary(ctx context.Context, lc *domain.LoadContext, reg ports.EntryPointRegistrar, main string) error {
	entries, err := l.fs.ReadDir(domain.ManagedDir(lc.SourcePath))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return l.fail(lc, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "dir", domain.ManagedDir(lc.SourcePath)))
	}

	for _, entry := range entries {
		path := filepath.Join(domain.ManagedDir(lc.SourcePath), entry.Name())
		if entry.IsDir() || !l.modules.Supports(path) {
			continue
		}
		if main != "" && strings.EqualFold(domain.Stem(entry.Name()), main) {
			continue
		}

		if err := l.loadModule(ctx, lc, path, reg); err != nil {
			return err
		}
		if err := l.sched.Yield(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadModule(ctx context.Context, lc *domain.LoadContext, path string, reg ports.EntryPointRegistrar) error {
	m, err := l.modules.LoadModule(ctx, path, reg)
	if err != nil {
		return l.fail(lc, err)
	}
	lc.AddModule(m)
	l.logger.Debug(fmt.Sprintf("%s: loaded module %s", lc.Name(), m.Name))
	return nil
}

// findModule returns the loadable file in the managed directory whose stem is name.
func (l *Loader) findModule(root, name string) (string, error) {
	dir := domain.ManagedDir(root)
	entries, err := l.fs.ReadDir(dir)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "dir", dir)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() && strings.EqualFold(domain.Stem(entry.Name()), name) && l.modules.Supports(path) {
			return path, nil
		}
	}

	err = zerr.With(domain.ErrModuleLoadFailure, "main_module", name)
	return "", zerr.With(err, "dir", dir)
}

func (l *Loader) entryPoint(lc *domain.LoadContext, h *host) ports.EntryPoint {
	if name, factory, ok := h.reg.pick(lc.Name()); ok {
		l.logger.Debug(fmt.Sprintf("%s: using entry point %s", lc.Name(), name))
		return factory(h)
	}
	if factory, ok := lookup(lc.Name()); ok {
		lc.AddModule(&domain.Module{Name: lc.Name(), Kind: domain.ModuleKindStatic})
		l.logger.Debug(fmt.Sprintf("%s: using static entry point", lc.Name()))
		return factory(h)
	}
	return NewDefaultEntryPoint(h)
}

// fail returns err under strict policy and logs it otherwise.
func (l *Loader) fail(lc *domain.LoadContext, err error) error {
	if lc.Strict() {
		return err
	}
	l.logger.Error(zerr.With(err, "addon", lc.Name()))
	return nil
}

// host is the ports.AddonHost handed to the entry point of one package.
type host struct {
	loader *Loader
	reg    *registrar
}

func (h *host) LoadModule(ctx context.Context, lc *domain.LoadContext, path string) error {
	if err := h.loader.loadModule(ctx, lc, path, h.reg); err != nil {
		return err
	}
	return h.loader.sched.Yield(ctx)
}

func (h *host) MountResources(ctx context.Context, lc *domain.LoadContext) error {
	return h.loader.mounter.Mount(ctx, lc)
}

func (h *host) Default() ports.EntryPoint {
	return NewDefaultEntryPoint(h)
}
