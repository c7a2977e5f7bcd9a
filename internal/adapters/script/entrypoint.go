package script

import (
	"context"

	"github.com/dop251/goja"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

// hookContext is the view of a load a hook receives.
type hookContext struct {
	Name       string
	SourcePath string
	MountPath  string
	Priority   int
	Strict     bool
	Resources  int
	Scenes     []string
}

type entryPoint struct {
	host ports.AddonHost
	mod  *module
	decl declaration
}

func (d declaration) factory(m *module) ports.EntryPointFactory {
	return func(host ports.AddonHost) ports.EntryPoint {
		return &entryPoint{host: host, mod: m, decl: d}
	}
}

// LoadAddon runs beforeLoad, mounts the package resources, runs afterLoad and completes the load.
func (e *entryPoint) LoadAddon(ctx context.Context, lc *domain.LoadContext) error {
	if err := e.call(ctx, "beforeLoad", e.decl.beforeLoad, lc); err != nil {
		return err
	}
	if err := e.host.MountResources(ctx, lc); err != nil {
		return err
	}
	if err := e.call(ctx, "afterLoad", e.decl.afterLoad, lc); err != nil {
		return err
	}
	lc.Complete()
	return nil
}

func (e *entryPoint) call(ctx context.Context, hook string, fn goja.Callable, lc *domain.LoadContext) error {
	if fn == nil {
		return nil
	}

	hc := &hookContext{
		Name:       lc.Name(),
		SourcePath: lc.SourcePath,
		MountPath:  lc.MountPath,
		Priority:   lc.Priority,
		Strict:     lc.Strict(),
		Resources:  lc.ResourceCount(),
		Scenes:     lc.Build().ScenePaths,
	}

	err := e.mod.run(ctx, func(vm *goja.Runtime) error {
		_, err := fn(goja.Undefined(), vm.ToValue(hc))
		return err
	})
	if err != nil {
		err = zerr.Wrap(err, domain.ErrEntryPointFailed.Error())
		err = zerr.With(err, "entry_point", e.decl.name)
		return zerr.With(err, "hook", hook)
	}
	return nil
}
