// Package app implements the application layer for addon.
package app

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/addon/internal/adapters/detector"
	"go.trai.ch/addon/internal/adapters/metrics"
	"go.trai.ch/addon/internal/adapters/telemetry"
	"go.trai.ch/addon/internal/adapters/tick"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/addon/internal/engine/codeloader"
	"go.trai.ch/addon/internal/engine/discovery"
	"go.trai.ch/addon/internal/engine/overlay"
	"go.trai.ch/addon/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	fs           ports.FileSystem
	reader       ports.ManifestReader
	scanner      *discovery.Scanner
	modules      ports.ModuleLoader
	store        ports.ResourceStore
	archives     ports.ArchiveLoader
	watcher      ports.Watcher
	metrics      *metrics.Prometheus
	bridge       *telemetry.LogBridge
	logger       ports.Logger

	capable   func() bool
	immediate bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	fsys ports.FileSystem,
	reader ports.ManifestReader,
	scanner *discovery.Scanner,
	modules ports.ModuleLoader,
	store ports.ResourceStore,
	archives ports.ArchiveLoader,
	watcher ports.Watcher,
	prom *metrics.Prometheus,
	bridge *telemetry.LogBridge,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		fs:           fsys,
		reader:       reader,
		scanner:      scanner,
		modules:      modules,
		store:        store,
		archives:     archives,
		watcher:      watcher,
		metrics:      prom,
		bridge:       bridge,
		logger:       log,
		capable:      pipeline.PlatformSupported,
	}
}

// WithCapability replaces the platform capability check gating addon mode.
// This is primarily used for testing.
func (a *App) WithCapability(fn func() bool) *App {
	a.capable = fn
	return a
}

// WithImmediateScheduler replaces the tick limiter with a scheduler that never waits.
// This is primarily used for testing.
func (a *App) WithImmediateScheduler() *App {
	a.immediate = true
	return a
}

// loggingConfigurer is implemented by loggers whose output can be tuned at runtime.
type loggingConfigurer interface {
	SetJSON(enable bool)
	SetVerbose(enable bool)
}

// ConfigureLogging applies the --log-format and --verbose flags to the logger.
func (a *App) ConfigureLogging(format string, verbose bool) {
	lc, ok := a.logger.(loggingConfigurer)
	if !ok {
		return
	}
	mode := detector.ResolveFormat(detector.DetectEnvironment(), format)
	lc.SetJSON(mode == detector.FormatJSON)
	lc.SetVerbose(verbose)
}

// loadConfig loads the configuration found from dir, or from the working directory.
func (a *App) loadConfig(dir string) (*domain.Config, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
		}
		dir = cwd
	}

	cfg, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// runtime is the per-invocation load machinery built from the configuration.
type runtime struct {
	orch    *pipeline.Orchestrator
	mounter *overlay.Mounter
	tp      *sdktrace.TracerProvider
}

func (r *runtime) close(ctx context.Context) {
	_ = r.mounter.Close()
	_ = r.tp.Shutdown(ctx)
}

// newRuntime builds the scheduler, tracer, mounter, code loader and orchestrator for cfg.
func (a *App) newRuntime(cfg *domain.Config, opts ...pipeline.Option) (*runtime, error) {
	if err := overlay.ValidatePatterns(cfg.Ignore); err != nil {
		return nil, err
	}

	var sched ports.Scheduler = tick.NewLimiter(cfg.Tick.Rate, cfg.Tick.StepsPerTick)
	if a.immediate {
		sched = tick.NewImmediate()
	}

	// Finished package spans are reported to the logger through the bridge.
	tp := setupOTel(a.bridge)
	tracer := telemetry.NewOTelTracer(telemetry.InstrumentationName)

	mounter := overlay.NewMounter(a.fs, a.store, a.archives, sched, a.logger,
		overlay.WithIgnore(cfg.Ignore...),
		overlay.WithMetrics(a.metrics),
	)
	code := codeloader.NewLoader(a.fs, a.modules, mounter, sched, a.logger)

	opts = append([]pipeline.Option{pipeline.WithCapability(a.capable)}, opts...)
	orch := pipeline.NewOrchestrator(a.scanner, a.reader, code, mounter, sched, tracer, a.metrics, a.logger, opts...)

	return &runtime{orch: orch, mounter: mounter, tp: tp}, nil
}

// LoadOptions configuration for the Load method.
type LoadOptions struct {
	// Dir is where the configuration search starts; the working directory when empty.
	Dir string
	// NoHost skips host-resource mode.
	NoHost bool
}

// LoadResult is the outcome of one load invocation.
type LoadResult struct {
	pipeline.Summary
	Addons        []domain.LoadedAddon
	HostResources int
}

// Load mounts the host resources, when configured, and runs one addon load cycle.
// Package failures are reported in the result, not as an error.
func (a *App) Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return nil, err
	}
	defer rt.close(context.WithoutCancel(ctx))

	res := &LoadResult{}
	if cfg.Host.Path != "" && !opts.NoHost {
		data, err := rt.orch.LoadHostResources(ctx, cfg.Host)
		if err != nil {
			a.logger.Error(zerr.With(err, "host", cfg.Host.Path))
		}
		res.HostResources = len(data.Resources)
		a.logger.Debug(fmt.Sprintf("mounted %d host resources from %s", res.HostResources, cfg.Host.Path))
	}

	res.Summary = rt.orch.Run(ctx, cfg)
	res.Addons = rt.orch.Loaded()
	return res, nil
}

// setupOTel configures the OpenTelemetry SDK with the log bridge.
func setupOTel(bridge *telemetry.LogBridge) *sdktrace.TracerProvider {
	tp := telemetry.NewProvider(bridge)

	// Register it as the global provider.
	otel.SetTracerProvider(tp)
	return tp
}
