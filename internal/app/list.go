package app

import (
	"context"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/engine/discovery"
)

// PackageStatus describes one package known to the configuration or the index.
type PackageStatus struct {
	Name    string
	Version string
	Path    string
	// Position is the index in the resolved load order, or -1 for packages
	// that are discovered but not configured to load.
	Position int
	// Missing marks load order names that were not discovered.
	Missing bool
}

// ListOptions configuration for the List method.
type ListOptions struct {
	// Dir is where the configuration search starts; the working directory when empty.
	Dir string
}

// ListResult is the discovery view of the configured roots.
type ListResult struct {
	Enabled  bool
	Roots    []string
	Packages []PackageStatus
}

// List discovers the packages below the configured roots without loading them.
// Packages are ordered by load position, then unscheduled packages by name,
// then missing load order names.
func (a *App) List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	res := &ListResult{Enabled: cfg.Enabled && a.capable(), Roots: cfg.Roots}
	if !res.Enabled {
		return res, nil
	}

	index, err := a.scanner.Scan(ctx, cfg.Roots)
	if err != nil {
		return nil, err
	}

	order := discovery.Resolve(index, cfg.LoadOrder)
	scheduled := make(map[string]bool, len(order))
	for i, name := range order {
		scheduled[name] = true
		res.Packages = append(res.Packages, a.status(index[name], i))
	}
	for _, name := range index.Names() {
		if !scheduled[name] {
			res.Packages = append(res.Packages, a.status(index[name], -1))
		}
	}
	for _, name := range discovery.Unresolved(index, cfg.LoadOrder) {
		res.Packages = append(res.Packages, PackageStatus{Name: name, Position: -1, Missing: true})
	}
	return res, nil
}

func (a *App) status(pkg domain.DiscoveredPackage, position int) PackageStatus {
	st := PackageStatus{Name: pkg.Name, Path: pkg.Path, Position: position}
	if m, err := a.reader.Read(pkg.Path); err == nil {
		st.Version = m.Version
	}
	return st
}
