package codeloader

import (
	"sync"

	"go.trai.ch/addon/internal/core/ports"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[string]ports.EntryPointFactory)
)

// Register installs an entry point for the package with the given name.
// Addons compiled into the host call it from an init function. A later call
// for the same name replaces the earlier factory.
func Register(name string, factory ports.EntryPointFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// Unregister removes the entry point registered for name.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

func lookup(name string) (ports.EntryPointFactory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}

// registrar collects the entry points declared by the modules of one package.
type registrar struct {
	names     []string
	factories map[string]ports.EntryPointFactory
}

func newRegistrar() *registrar {
	return &registrar{factories: make(map[string]ports.EntryPointFactory)}
}

func (r *registrar) RegisterEntryPoint(name string, factory ports.EntryPointFactory) {
	if _, ok := r.factories[name]; !ok {
		r.names = append(r.names, name)
	}
	r.factories[name] = factory
}

// pick returns the factory declared for pkg, or else the first one declared.
func (r *registrar) pick(pkg string) (string, ports.EntryPointFactory, bool) {
	if f, ok := r.factories[pkg]; ok {
		return pkg, f, true
	}
	if len(r.names) == 0 {
		return "", nil, false
	}
	return r.names[0], r.factories[r.names[0]], true
}
