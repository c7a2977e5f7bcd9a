// Package metrics exposes load pipeline measurements to Prometheus.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/addon/internal/core/ports"
)

const (
	namespace         = "addon"
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var _ ports.Metrics = (*Prometheus)(nil)

// Prometheus implements ports.Metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	packages   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	resources  prometheus.Counter
	discovered prometheus.Gauge
}

// NewPrometheus creates the collectors and registers them on a fresh registry.
func NewPrometheus() *Prometheus {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Prometheus{
		registry: reg,
		packages: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "packages_total",
				Help:      "Package loads by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "package_load_duration_seconds",
				Help:      "Package load duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"package"},
		),
		resources: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "resources_mounted_total",
				Help:      "Resources registered with the resource store",
			},
		),
		discovered: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "packages_discovered",
				Help:      "Packages in the latest discovery index",
			},
		),
	}
}

// ObservePackage records the outcome and duration of one package load.
func (p *Prometheus) ObservePackage(name string, loaded bool, d time.Duration) {
	outcome := "failed"
	if loaded {
		outcome = "loaded"
	}
	p.packages.WithLabelValues(outcome).Inc()
	p.duration.WithLabelValues(name).Observe(d.Seconds())
}

// AddResources counts mounted resources.
func (p *Prometheus) AddResources(n int) {
	p.resources.Add(float64(n))
}

// SetDiscovered reports the size of the latest package index.
func (p *Prometheus) SetDiscovered(n int) {
	p.discovered.Set(float64(n))
}

// Registry returns the registry holding the collectors.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (p *Prometheus) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", p.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// NoOp discards every measurement.
type NoOp struct{}

// ObservePackage does nothing.
func (NoOp) ObservePackage(string, bool, time.Duration) {}

// AddResources does nothing.
func (NoOp) AddResources(int) {}

// SetDiscovered does nothing.
func (NoOp) SetDiscovered(int) {}
