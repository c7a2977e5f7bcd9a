// Package script loads addon code modules written in JavaScript.
//
// A script module runs once when it is loaded. It may declare entry points:
//
//	addon.registerEntryPoint("Foo", {
//	  beforeLoad: function(ctx) { console.log("mounting " + ctx.mountPath); },
//	  afterLoad: function(ctx) { console.log(ctx.resources + " resources"); },
//	});
//
// Hooks run before and after the host mounts the package resources.
package script

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dop251/goja"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Ext is the file extension of script modules.
const Ext = ".js"

const maxCallStackSize = 1024

var _ ports.ModuleLoader = (*Loader)(nil)

// Loader evaluates script modules, each in its own runtime.
type Loader struct {
	logger ports.Logger
	fs     ports.FileSystem
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger, fsys ports.FileSystem) *Loader {
	return &Loader{logger: logger, fs: fsys}
}

// Supports reports whether path is a script module.
func (l *Loader) Supports(path string) bool {
	return strings.EqualFold(filepath.Ext(path), Ext)
}

// LoadModule compiles and runs the script at path. Entry points are reported to
// reg only when the script runs to completion.
func (l *Loader) LoadModule(ctx context.Context, path string, reg ports.EntryPointRegistrar) (*domain.Module, error) {
	src, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	prog, err := goja.Compile(path, string(src), true)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	m := newModule(domain.Stem(path), l.logger)
	if err := m.run(ctx, func(vm *goja.Runtime) error {
		_, err := vm.RunProgram(prog)
		return err
	}); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleLoadFailure.Error()), "module", path)
	}

	for _, decl := range m.decls {
		reg.RegisterEntryPoint(decl.name, decl.factory(m))
	}

	return &domain.Module{
		Name: m.name,
		Path: path,
		Kind: domain.ModuleKindScript,
	}, nil
}

// module is one loaded script and the runtime that keeps its hooks alive.
type module struct {
	name   string
	logger ports.Logger

	mu    sync.Mutex
	vm    *goja.Runtime
	decls []declaration
}

type declaration struct {
	name       string
	beforeLoad goja.Callable
	afterLoad  goja.Callable
}

func newModule(name string, logger ports.Logger) *module {
	m := &module{
		name:   name,
		logger: logger,
		vm:     goja.New(),
	}
	m.vm.SetMaxCallStackSize(maxCallStackSize)
	m.vm.SetFieldNameMapper(goja.UncapFieldNameMapper())
	m.setupGlobals()
	return m
}

func (m *module) setupGlobals() {
	vm := m.vm

	_ = vm.Set("require", goja.Undefined())
	_ = vm.Set("setTimeout", goja.Undefined())
	_ = vm.Set("setInterval", goja.Undefined())

	console := vm.NewObject()
	_ = console.Set("debug", m.consoleFunc(m.logger.Debug))
	_ = console.Set("log", m.consoleFunc(m.logger.Info))
	_ = console.Set("info", m.consoleFunc(m.logger.Info))
	_ = console.Set("warn", m.consoleFunc(m.logger.Warn))
	_ = console.Set("error", m.consoleFunc(func(msg string) {
		m.logger.Error(zerr.With(zerr.New(msg), "module", m.name))
	}))
	_ = vm.Set("console", console)

	addon := vm.NewObject()
	_ = addon.Set("module", m.name)
	_ = addon.Set("registerEntryPoint", m.registerEntryPoint)
	_ = vm.Set("addon", addon)
}

func (m *module) consoleFunc(sink func(string)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, 0, len(call.Arguments))
		for _, arg := range call.Arguments {
			parts = append(parts, arg.String())
		}
		sink("[" + m.name + "] " + strings.Join(parts, " "))
		return goja.Undefined()
	}
}

func (m *module) registerEntryPoint(call goja.FunctionCall) goja.Value {
	name := strings.TrimSpace(call.Argument(0).String())
	if goja.IsUndefined(call.Argument(0)) || name == "" {
		panic(m.vm.NewTypeError("registerEntryPoint: name is required"))
	}

	decl := declaration{name: name}
	if hooks := call.Argument(1); !goja.IsUndefined(hooks) && !goja.IsNull(hooks) {
		obj := hooks.ToObject(m.vm)
		decl.beforeLoad = m.hook(obj, "beforeLoad")
		decl.afterLoad = m.hook(obj, "afterLoad")
	}
	m.decls = append(m.decls, decl)
	return goja.Undefined()
}

func (m *module) hook(obj *goja.Object, key string) goja.Callable {
	v := obj.Get(key)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		panic(m.vm.NewTypeError("registerEntryPoint: " + key + " is not a function"))
	}
	return fn
}

// run executes fn on the module runtime. Cancelling ctx interrupts the script.
func (m *module) run(ctx context.Context, fn func(vm *goja.Runtime) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			m.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	err := fn(m.vm)
	close(done)
	<-stopped
	m.vm.ClearInterrupt()
	return err
}
