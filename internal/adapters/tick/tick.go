// Package tick provides host schedulers that bound how much load work runs per tick.
package tick

import (
	"context"
	"runtime"
	"sync/atomic"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/time/rate"
)

var (
	_ ports.Scheduler = (*Limiter)(nil)
	_ ports.Scheduler = (*Immediate)(nil)
)

// Limiter grants stepsPerTick yields per tick at ticksPerSecond ticks.
// Yields beyond the budget wait for the next tick.
type Limiter struct {
	limiter *rate.Limiter
	steps   atomic.Int64
}

// NewLimiter creates a Limiter. Non-positive arguments fall back to the defaults.
func NewLimiter(ticksPerSecond float64, stepsPerTick int) *Limiter {
	if ticksPerSecond <= 0 {
		ticksPerSecond = domain.DefaultTickRate
	}
	if stepsPerTick <= 0 {
		stepsPerTick = domain.DefaultStepsPerTick
	}
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(ticksPerSecond*float64(stepsPerTick)), stepsPerTick),
	}
}

// Yield waits for the next step of the budget.
func (l *Limiter) Yield(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrYieldInterrupted.Error())
	}
	l.steps.Add(1)
	return nil
}

// Steps returns the number of granted yields.
func (l *Limiter) Steps() int64 {
	return l.steps.Load()
}

// Immediate never waits; it only hands the processor to other goroutines.
type Immediate struct {
	steps atomic.Int64
}

// NewImmediate creates an Immediate scheduler.
func NewImmediate() *Immediate {
	return &Immediate{}
}

// Yield reports ctx cancellation and otherwise returns after runtime.Gosched.
func (i *Immediate) Yield(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, domain.ErrYieldInterrupted.Error())
	}
	runtime.Gosched()
	i.steps.Add(1)
	return nil
}

// Steps returns the number of granted yields.
func (i *Immediate) Steps() int64 {
	return i.steps.Load()
}
