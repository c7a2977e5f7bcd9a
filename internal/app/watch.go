package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/addon/internal/adapters/watcher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configuration for the Watch method.
type WatchOptions struct {
	// Dir is where the configuration search starts; the working directory when empty.
	Dir string
	// OnCycle is called with the result of every load cycle, the initial one included.
	OnCycle func(*LoadResult)
}

// Watch runs a load cycle and then watches the addon roots until ctx is cancelled.
// Changes are debounced; when the rediscovered index differs from the last one,
// another cycle loads the packages that are newly resolvable. Loaded packages are
// never unloaded.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return err
	}

	rt, err := a.newRuntime(cfg)
	if err != nil {
		return err
	}
	defer rt.close(context.WithoutCancel(ctx))

	report := func(ctx context.Context) {
		res := &LoadResult{Summary: rt.orch.Run(ctx, cfg), Addons: rt.orch.Loaded()}
		if opts.OnCycle != nil {
			opts.OnCycle(res)
		}
	}

	if cfg.Host.Path != "" {
		if _, err := rt.orch.LoadHostResources(ctx, cfg.Host); err != nil {
			a.logger.Error(zerr.With(err, "host", cfg.Host.Path))
		}
	}
	report(ctx)
	fingerprint := rt.orch.Index().Fingerprint()

	g, gctx := errgroup.WithContext(ctx)

	if err := a.watcher.Start(gctx, cfg.Roots...); err != nil {
		return err
	}
	defer func() { _ = a.watcher.Stop() }()

	trigger := make(chan struct{}, 1)
	debouncer := watcher.NewDebouncer(cfg.Watch.Debounce, func(paths []string) {
		a.logger.Debug(fmt.Sprintf("%d paths changed below the addon roots", len(paths)))
		select {
		case trigger <- struct{}{}:
		default:
		}
	})
	defer debouncer.Stop()

	if cfg.Watch.MetricsAddr != "" {
		a.logger.Info(fmt.Sprintf("serving metrics on %s/metrics", cfg.Watch.MetricsAddr))
		g.Go(func() error {
			return a.metrics.Serve(gctx, cfg.Watch.MetricsAddr)
		})
	}

	g.Go(func() error {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case <-trigger:
			}

			index, err := a.scanner.Scan(gctx, cfg.Roots)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				a.logger.Error(zerr.Wrap(err, "addon rediscovery failed"))
				continue
			}
			if next := index.Fingerprint(); next == fingerprint {
				a.logger.Debug("addon packages unchanged")
				continue
			}

			report(gctx)
			fingerprint = rt.orch.Index().Fingerprint()
		}
	})

	a.logger.Info(fmt.Sprintf("watching %d addon roots", len(cfg.Roots)))
	return g.Wait()
}
