package ports

import "time"

// Metrics records load pipeline measurements.
//
//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks
type Metrics interface {
	// ObservePackage records the outcome and duration of one package load.
	ObservePackage(name string, loaded bool, d time.Duration)
	// AddResources counts mounted resources.
	AddResources(n int)
	// SetDiscovered reports the size of the latest package index.
	SetDiscovered(n int)
}
