package domain

import (
	"maps"
	"slices"
)

// ModuleKind identifies the loader family that produced a module.
type ModuleKind string

const (
	// ModuleKindScript is a module evaluated by the embedded script runtime.
	ModuleKindScript ModuleKind = "script"
	// ModuleKindShared is a natively compiled shared library.
	ModuleKindShared ModuleKind = "shared"
	// ModuleKindStatic is an entry point compiled into the host binary.
	ModuleKindStatic ModuleKind = "static"
)

// Module is a handle to a loaded code module.
type Module struct {
	Name string
	Path string
	Kind ModuleKind
	Main bool
}

// ResourceHandle is the store's receipt for a mounted resource.
type ResourceHandle struct {
	ID          string
	VirtualPath string
	// Source is the file the resource was read from, or the archive path for archive entries.
	Source string
	// Entry is the asset name inside the archive; empty for loose files.
	Entry       string
	Priority    int
	ContentType string
}

// LoadData is the immutable result of one completed load.
type LoadData struct {
	Modules    []*Module
	Resources  map[string]ResourceHandle
	ScenePaths []string
}

// LoadOption configures a LoadContext.
type LoadOption func(*LoadContext)

// WithMountPath overrides the replace layer mount path.
func WithMountPath(p string) LoadOption {
	return func(lc *LoadContext) {
		lc.MountPath = p
		lc.mountOverridden = true
	}
}

// WithPriority sets the resource priority used for every registration.
func WithPriority(p int) LoadOption {
	return func(lc *LoadContext) {
		lc.Priority = p
	}
}

// WithStrict sets the initial single-file failure policy.
func WithStrict(strict bool) LoadOption {
	return func(lc *LoadContext) {
		lc.AbortOnSingleFileFailure = strict
	}
}

// WithOnComplete sets the callback receiving the LoadData snapshot.
func WithOnComplete(fn func(LoadData)) LoadOption {
	return func(lc *LoadContext) {
		lc.OnComplete = fn
	}
}

// LoadContext accumulates the state of a single package or host-resource load.
// It is owned by one load and must not be shared.
type LoadContext struct {
	SourcePath string
	Manifest   *Manifest
	MountPath  string
	Priority   int

	// AbortOnSingleFileFailure turns a single file or module failure into a package failure.
	AbortOnSingleFileFailure bool

	// FullArchivePaths enables the experimental archive path mode.
	FullArchivePaths bool

	OnComplete func(LoadData)

	mountOverridden bool
	mainModule      *Module
	modules         []*Module
	resources       map[string]ResourceHandle
	scenes          []string
	completed       bool
}

// NewLoadContext creates a strict LoadContext for the given source directory.
func NewLoadContext(source string, opts ...LoadOption) *LoadContext {
	lc := &LoadContext{
		SourcePath:               source,
		AbortOnSingleFileFailure: true,
		resources:                make(map[string]ResourceHandle),
	}
	for _, opt := range opts {
		opt(lc)
	}
	return lc
}

// ApplyManifest attaches a parsed manifest and derives the settings it controls.
// The manifest can only relax the failure policy.
func (lc *LoadContext) ApplyManifest(m *Manifest) {
	lc.Manifest = m
	if !lc.mountOverridden {
		lc.MountPath = DefaultMountPath(m.Name)
	}
	if m.IgnoreSingleFileErrors {
		lc.AbortOnSingleFileFailure = false
	}
	lc.FullArchivePaths = m.UseArchivePaths
}

// Name returns the package name, or the source path when no manifest is attached.
func (lc *LoadContext) Name() string {
	if lc.Manifest != nil {
		return lc.Manifest.Name
	}
	return lc.SourcePath
}

// Strict reports whether single failures abort the load.
func (lc *LoadContext) Strict() bool {
	return lc.AbortOnSingleFileFailure
}

// SetMainModule records the package's primary module.
func (lc *LoadContext) SetMainModule(m *Module) {
	m.Main = true
	lc.mainModule = m
}

// MainModule returns the primary module, if one was loaded.
func (lc *LoadContext) MainModule() *Module {
	return lc.mainModule
}

// AddModule records an auxiliary module.
func (lc *LoadContext) AddModule(m *Module) {
	lc.modules = append(lc.modules, m)
}

// AddResource records a mounted resource under its virtual path.
// A later registration for the same path replaces the earlier record.
func (lc *LoadContext) AddResource(h ResourceHandle) {
	lc.resources[h.VirtualPath] = h
}

// AddScenes appends scene paths.
func (lc *LoadContext) AddScenes(paths ...string) {
	lc.scenes = append(lc.scenes, paths...)
}

// ResourceCount returns the number of distinct virtual paths recorded so far.
func (lc *LoadContext) ResourceCount() int {
	return len(lc.resources)
}

// Build snapshots the accumulated state. The main module, if any, comes first.
// Modules are copied, so later changes to the context do not reach the result.
func (lc *LoadContext) Build() LoadData {
	modules := make([]*Module, 0, len(lc.modules)+1)
	if lc.mainModule != nil {
		modules = append(modules, copyModule(lc.mainModule))
	}
	for _, m := range lc.modules {
		modules = append(modules, copyModule(m))
	}

	return LoadData{
		Modules:    modules,
		Resources:  maps.Clone(lc.resources),
		ScenePaths: slices.Clone(lc.scenes),
	}
}

func copyModule(m *Module) *Module {
	c := *m
	return &c
}

// Complete delivers the snapshot to OnComplete. Only the first call has an effect.
func (lc *LoadContext) Complete() {
	if lc.completed {
		return
	}
	lc.completed = true
	if lc.OnComplete != nil {
		lc.OnComplete(lc.Build())
	}
}

// Completed reports whether Complete has run.
func (lc *LoadContext) Completed() bool {
	return lc.completed
}
