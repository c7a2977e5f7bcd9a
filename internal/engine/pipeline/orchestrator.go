// Package pipeline drives a load cycle from discovery to the loaded registry.
package pipeline

import (
	"context"
	"fmt"
	"maps"
	"runtime"
	"sync"
	"time"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/engine/discovery"
	"go.trai.ch/zerr"
)

// State is the phase of the current load cycle.
type State string

const (
	// StateNotStarted indicates no cycle has run yet.
	StateNotStarted State = "NotStarted"
	// StateDiscovering indicates the addon roots are being scanned.
	StateDiscovering State = "Discovering"
	// StateResolving indicates the load order is being resolved against the index.
	StateResolving State = "Resolving"
	// StateLoadingPackages indicates packages are loading; Current reports which one.
	StateLoadingPackages State = "LoadingPackages"
	// StateDone indicates the cycle has finished.
	StateDone State = "Done"
)

// CodeLoader loads the code of one package and runs its entry point.
type CodeLoader interface {
	Load(ctx context.Context, lc *domain.LoadContext) error
}

// Mounter mounts the overlay layers of a load.
type Mounter interface {
	Mount(ctx context.Context, lc *domain.LoadContext) error
}

// Failure describes a package whose load failed.
type Failure struct {
	Name string
	Kind string
	Err  error
}

// Summary is the outcome of one load cycle.
type Summary struct {
	State  State
	Loaded []string
	Failed []Failure
	// Skipped lists load order names that were not discovered.
	Skipped []string
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithCapability replaces the platform capability check gating addon mode.
func WithCapability(fn func() bool) Option {
	return func(o *Orchestrator) {
		o.capable = fn
	}
}

// WithOnLoaded sets a callback invoked for every package entering the loaded registry.
func WithOnLoaded(fn func(domain.LoadedAddon)) Option {
	return func(o *Orchestrator) {
		o.onLoaded = fn
	}
}

// PlatformSupported reports whether the platform can load addons from disk.
func PlatformSupported() bool {
	switch runtime.GOOS {
	case "js", "wasip1":
		return false
	default:
		return true
	}
}

// Orchestrator runs load cycles and owns the package index and the loaded registry.
type Orchestrator struct {
	scanner *discovery.Scanner
	reader  ports.ManifestReader
	code    CodeLoader
	mounter Mounter
	sched   ports.Scheduler
	tracer  ports.Tracer
	metrics ports.Metrics
	logger  ports.Logger

	capable  func() bool
	onLoaded func(domain.LoadedAddon)

	mu      sync.RWMutex
	state   State
	current int
	index   domain.PackageIndex
	loaded  map[string]domain.LoadedAddon
	order   []string
}

// NewOrchestrator creates a new Orchestrator.
func NewOrchestrator(
	scanner *discovery.Scanner,
	reader ports.ManifestReader,
	code CodeLoader,
	mounter Mounter,
	sched ports.Scheduler,
	tracer ports.Tracer,
	metrics ports.Metrics,
	logger ports.Logger,
	opts ...Option,
) *Orchestrator {
	o := &Orchestrator{
		scanner: scanner,
		reader:  reader,
		code:    code,
		mounter: mounter,
		sched:   sched,
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
		capable: PlatformSupported,
		state:   StateNotStarted,
		current: -1,
		index:   make(domain.PackageIndex),
		loaded:  make(map[string]domain.LoadedAddon),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Run performs one addon load cycle: discovery, resolution of cfg.LoadOrder and
// the load of every resolved package that is not loaded yet.
//
// Package failures never abort the cycle; they are logged and reported in the
// Summary. With addon mode disabled or unsupported no filesystem access happens.
func (o *Orchestrator) Run(ctx context.Context, cfg *domain.Config) Summary {
	var sum Summary

	if !cfg.Enabled || !o.capable() {
		o.logger.Debug("addon mode is disabled")
		sum.State = o.setState(StateDone, -1)
		return sum
	}

	ctx, span := o.tracer.Start(ctx, "load addons")
	defer span.End()

	index, err := o.discover(ctx, cfg.Roots)
	if err != nil {
		span.RecordError(err)
		o.logger.Error(zerr.Wrap(err, "addon discovery failed"))
		sum.State = o.setState(StateDone, -1)
		return sum
	}

	o.setState(StateResolving, -1)
	order := discovery.Resolve(index, cfg.LoadOrder)
	sum.Skipped = discovery.Unresolved(index, cfg.LoadOrder)
	for _, name := range sum.Skipped {
		o.logger.Warn(fmt.Sprintf("%s is in the load order but was not discovered", name))
	}
	o.tracer.EmitPlan(ctx, order)

	for i, name := range order {
		if err := ctx.Err(); err != nil {
			o.logger.Warn(fmt.Sprintf("load cycle stopped before %s: %v", name, err))
			break
		}
		if o.IsLoaded(name) {
			o.logger.Debug(fmt.Sprintf("%s is already loaded", name))
			continue
		}

		o.setState(StateLoadingPackages, i)
		addon, err := o.loadPackage(ctx, cfg, index[name])
		if err != nil {
			kind := domain.KindOf(err)
			o.logger.Error(zerr.With(zerr.With(err, "addon", name), "kind", kind))
			sum.Failed = append(sum.Failed, Failure{Name: name, Kind: kind, Err: err})
			continue
		}

		o.register(addon)
		sum.Loaded = append(sum.Loaded, name)
		o.logger.Info(fmt.Sprintf("loaded %s (%d modules, %d resources) in %s",
			name, len(addon.Data.Modules), len(addon.Data.Resources), addon.Duration.Round(time.Millisecond)))
	}

	sum.State = o.setState(StateDone, -1)
	return sum
}

// discover runs a background scan and polls it with one yield per check.
func (o *Orchestrator) discover(ctx context.Context, roots []string) (domain.PackageIndex, error) {
	o.setState(StateDiscovering, -1)

	ctx, span := o.tracer.Start(ctx, "discover")
	defer span.End()

	pending := o.scanner.Start(ctx, roots)
	for !pending.Done() {
		if err := o.sched.Yield(ctx); err != nil {
			_, _ = pending.Wait()
			span.RecordError(err)
			return nil, err
		}
	}

	index, err := pending.Wait()
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	o.mu.Lock()
	o.index = index
	o.mu.Unlock()

	o.metrics.SetDiscovered(len(index))
	span.SetAttribute("packages", len(index))
	return index, nil
}

// loadPackage runs the sub-pipeline of one package. Errors and panics stay inside it.
func (o *Orchestrator) loadPackage(
	ctx context.Context,
	cfg *domain.Config,
	pkg domain.DiscoveredPackage,
) (addon domain.LoadedAddon, err error) {
	ctx, span := o.tracer.Start(ctx, "load")
	span.SetAttribute(domain.PackageSpanAttribute, pkg.Name)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			err = zerr.With(zerr.With(domain.ErrPackagePanicked, "addon", pkg.Name), "panic", fmt.Sprint(r))
		}
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		o.metrics.ObservePackage(pkg.Name, err == nil, time.Since(start))
	}()

	m, err := o.reader.Read(pkg.Path)
	if err != nil {
		return domain.LoadedAddon{}, err
	}

	var data domain.LoadData
	lc := domain.NewLoadContext(pkg.Path,
		domain.WithPriority(cfg.Priority),
		domain.WithStrict(cfg.Strict),
		domain.WithOnComplete(func(d domain.LoadData) { data = d }),
	)
	lc.ApplyManifest(m)

	if err := o.code.Load(ctx, lc); err != nil {
		return domain.LoadedAddon{}, err
	}
	if !lc.Completed() {
		o.logger.Debug(fmt.Sprintf("%s: entry point returned without completing, completing now", pkg.Name))
		lc.Complete()
	}

	return domain.LoadedAddon{
		Name:     pkg.Name,
		Path:     pkg.Path,
		Manifest: m,
		Data:     data,
		Duration: time.Since(start),
	}, nil
}

// LoadHostResources mounts the host resource directory described by host.
// Single file failures are logged and skipped.
func (o *Orchestrator) LoadHostResources(ctx context.Context, host domain.HostConfig) (domain.LoadData, error) {
	ctx, span := o.tracer.Start(ctx, "mount host resources")
	defer span.End()

	var data domain.LoadData
	lc := domain.NewLoadContext(host.Path,
		domain.WithMountPath(host.MountPath),
		domain.WithPriority(host.Priority),
		domain.WithStrict(false),
		domain.WithOnComplete(func(d domain.LoadData) { data = d }),
	)

	if err := o.mounter.Mount(ctx, lc); err != nil {
		span.RecordError(err)
		return domain.LoadData{}, err
	}
	lc.Complete()

	span.SetAttribute("resources", len(data.Resources))
	return data, nil
}

func (o *Orchestrator) register(addon domain.LoadedAddon) {
	o.mu.Lock()
	o.loaded[addon.Name] = addon
	o.order = append(o.order, addon.Name)
	o.mu.Unlock()

	if o.onLoaded != nil {
		o.onLoaded(addon)
	}
}

func (o *Orchestrator) setState(s State, current int) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = s
	o.current = current
	return s
}

// State returns the phase of the current or last load cycle.
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

// Current returns the position in the resolved order of the package being
// loaded, or -1 outside StateLoadingPackages.
func (o *Orchestrator) Current() int {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.current
}

// Index returns a copy of the latest package index.
func (o *Orchestrator) Index() domain.PackageIndex {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return maps.Clone(o.index)
}

// IsLoaded reports whether the named package is in the loaded registry.
func (o *Orchestrator) IsLoaded(name string) bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	_, ok := o.loaded[name]
	return ok
}

// Loaded returns the loaded registry in load order.
func (o *Orchestrator) Loaded() []domain.LoadedAddon {
	o.mu.RLock()
	defer o.mu.RUnlock()

	addons := make([]domain.LoadedAddon, 0, len(o.order))
	for _, name := range o.order {
		addons = append(addons, o.loaded[name])
	}
	return addons
}
