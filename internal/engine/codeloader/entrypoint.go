package codeloader

import (
	"context"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
)

// DefaultEntryPoint mounts the package resources and completes the load.
type DefaultEntryPoint struct {
	host ports.AddonHost
}

// NewDefaultEntryPoint is the ports.EntryPointFactory of the default entry point.
func NewDefaultEntryPoint(host ports.AddonHost) ports.EntryPoint {
	return &DefaultEntryPoint{host: host}
}

// LoadAddon mounts both overlay layers of lc and delivers its snapshot.
func (e *DefaultEntryPoint) LoadAddon(ctx context.Context, lc *domain.LoadContext) error {
	if err := e.host.MountResources(ctx, lc); err != nil {
		return err
	}
	lc.Complete()
	return nil
}
