// Package overlay mounts the overlay layers of a package into the virtual
// resource namespace.
//
// Every package has two layers. The replace layer (elocal) is mounted under the
// package mount path; the append layer (expand) is mounted at the namespace root
// so a package can add to shared directories. Each layer is an optional packed
// archive next to an optional loose-file directory, and the archive is mounted
// first.
package overlay

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Mounter walks overlay layers and registers their files with a resource store.
type Mounter struct {
	fs       ports.FileSystem
	store    ports.ResourceStore
	archives ports.ArchiveLoader
	sched    ports.Scheduler
	logger   ports.Logger
	metrics  ports.Metrics
	ignore   []string

	mu     sync.Mutex
	opened []ports.Archive
}

// Option configures a Mounter.
type Option func(*Mounter)

// WithIgnore skips loose files whose layer-relative path matches a doublestar pattern.
func WithIgnore(patterns ...string) Option {
	return func(m *Mounter) {
		m.ignore = append(m.ignore, patterns...)
	}
}

// WithMetrics counts mounted resources.
func WithMetrics(metrics ports.Metrics) Option {
	return func(m *Mounter) {
		m.metrics = metrics
	}
}

// NewMounter creates a new Mounter.
func NewMounter(
	fsys ports.FileSystem,
	store ports.ResourceStore,
	archives ports.ArchiveLoader,
	sched ports.Scheduler,
	logger ports.Logger,
	opts ...Option,
) *Mounter {
	m := &Mounter{
		fs:       fsys,
		store:    store,
		archives: archives,
		sched:    sched,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ValidatePatterns reports the first malformed ignore pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return zerr.With(zerr.Wrap(doublestar.ErrBadPattern, domain.ErrConfigParseFailed.Error()), "pattern", p)
		}
	}
	return nil
}

// Mount mounts the replace layer and then the append layer of lc.
// Single-file failures are logged and skipped unless lc is strict, in which
// case the first one is returned.
func (m *Mounter) Mount(ctx context.Context, lc *domain.LoadContext) error {
	layers := []struct {
		name   string
		target string
	}{
		{domain.ReplaceLayerName, lc.MountPath},
		{domain.AppendLayerName, ""},
	}

	for _, layer := range layers {
		if err := m.mountLayer(ctx, lc, layer.name, layer.target); err != nil {
			return err
		}
	}
	return nil
}

// Close releases every archive opened by Mount. Resources registered from them
// become unreadable.
func (m *Mounter) Close() error {
	m.mu.Lock()
	opened := m.opened
	m.opened = nil
	m.mu.Unlock()

	var errs error
	for _, a := range opened {
		errs = errors.Join(errs, a.Close())
	}
	return errs
}

func (m *Mounter) mountLayer(ctx context.Context, lc *domain.LoadContext, layer, target string) error {
	archive := domain.LayerArchive(lc.SourcePath, layer)
	if _, err := m.fs.Stat(archive); err == nil {
		if err := m.mountArchive(ctx, lc, archive, target); err != nil {
			return err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		if err := m.fail(lc, zerr.With(zerr.Wrap(err, domain.ErrArchiveLoadFailure.Error()), "archive", archive)); err != nil {
			return err
		}
	}

	dir := domain.LayerDir(lc.SourcePath, layer)
	if info, err := m.fs.Stat(dir); err != nil || !info.IsDir() {
		return nil
	}
	return m.walk(ctx, lc, dir, dir, target)
}

func (m *Mounter) walk(ctx context.Context, lc *domain.LoadContext, layerRoot, dir, target string) error {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return m.fail(lc, zerr.With(zerr.Wrap(err, domain.ErrResourceFileLoadFailure.Error()), "dir", dir))
	}

	for _, entry := range entries {
		src := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if err := m.walk(ctx, lc, layerRoot, src, path.Join(target, entry.Name())); err != nil {
				return err
			}
			continue
		}

		if m.ignored(layerRoot, src) {
			continue
		}

		switch {
		case strings.EqualFold(filepath.Ext(entry.Name()), domain.ArchiveExt):
			err = m.mountArchive(ctx, lc, src, target)
		case domain.IsScene(entry.Name()):
			err = m.mountScene(lc, src, domain.VirtualPath(target, entry.Name()))
		default:
			err = m.mountFile(lc, src, domain.VirtualPath(target, entry.Name()))
		}
		if err != nil {
			return err
		}

		if err := m.sched.Yield(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mounter) mountFile(lc *domain.LoadContext, src, virtualPath string) error {
	h, err := m.store.AddFromFile(virtualPath, src, lc.Priority)
	if err != nil {
		return m.fail(lc, err)
	}
	m.record(lc, h)
	return nil
}

// mountScene registers a loose scene file and records its source path as a scene.
func (m *Mounter) mountScene(lc *domain.LoadContext, src, virtualPath string) error {
	h, err := m.store.AddFromFile(virtualPath, src, lc.Priority)
	if err != nil {
		return m.fail(lc, err)
	}
	m.record(lc, h)
	lc.AddScenes(src)
	return nil
}

func (m *Mounter) mountArchive(ctx context.Context, lc *domain.LoadContext, src, prefix string) error {
	req := m.archives.LoadAsync(src)
	for !req.Done() {
		if err := m.sched.Yield(ctx); err != nil {
			return err
		}
	}

	a, err := req.Result()
	if err != nil {
		return m.fail(lc, zerr.With(zerr.Wrap(err, domain.ErrArchiveLoadFailure.Error()), "archive", src))
	}
	m.mu.Lock()
	m.opened = append(m.opened, a)
	m.mu.Unlock()

	lc.AddScenes(a.ScenePaths()...)

	for _, name := range a.AssetNames() {
		virtualPath := path.Join(prefix, domain.ArchiveLeaf(name, lc.FullArchivePaths))

		h, err := m.store.AddFromArchiveEntry(virtualPath, name, a, lc.Priority)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, domain.ErrArchiveLoadFailure.Error()), "archive", src)
			if err := m.fail(lc, zerr.With(err, "entry", name)); err != nil {
				return err
			}
		} else {
			m.record(lc, h)
		}

		if err := m.sched.Yield(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (m *Mounter) record(lc *domain.LoadContext, h domain.ResourceHandle) {
	lc.AddResource(h)
	if m.metrics != nil {
		m.metrics.AddResources(1)
	}
}

// fail returns err under strict policy and logs it otherwise.
func (m *Mounter) fail(lc *domain.LoadContext, err error) error {
	if lc.Strict() {
		return err
	}
	m.logger.Error(zerr.With(err, "addon", lc.Name()))
	return nil
}

func (m *Mounter) ignored(layerRoot, src string) bool {
	if len(m.ignore) == 0 {
		return false
	}
	rel, err := filepath.Rel(layerRoot, src)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range m.ignore {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
