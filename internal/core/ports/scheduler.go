package ports

import "context"

// Scheduler is the host's cooperative tick scheduler.
//
//go:generate mockgen -source=scheduler.go -destination=mocks/mock_scheduler.go -package=mocks
type Scheduler interface {
	// Yield suspends the caller until the host grants it another step.
	// It returns an error when ctx is cancelled while waiting.
	Yield(ctx context.Context) error
}
