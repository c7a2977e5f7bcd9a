// Package discovery finds addon packages below the configured roots and
// resolves the configured load order against them.
package discovery

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Scanner builds package indexes from addon roots.
type Scanner struct {
	fs     ports.FileSystem
	reader ports.ManifestReader
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(fsys ports.FileSystem, reader ports.ManifestReader, logger ports.Logger) *Scanner {
	return &Scanner{fs: fsys, reader: reader, logger: logger}
}

// Scan reads every immediate subdirectory of each root, in root order.
// Missing roots and unreadable packages are logged and skipped. When two roots
// hold a package with the same name the later root wins.
func (s *Scanner) Scan(ctx context.Context, roots []string) (domain.PackageIndex, error) {
	index := make(domain.PackageIndex)

	for _, root := range roots {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s.scanRoot(ctx, root, index)
	}

	return index, nil
}

func (s *Scanner) scanRoot(ctx context.Context, root string, index domain.PackageIndex) {
	if info, err := s.fs.Stat(root); err != nil || !info.IsDir() {
		s.logger.Warn(fmt.Sprintf("addon root %s does not exist, skipping", root))
		return
	}

	entries, err := s.fs.ReadDir(root)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("cannot read addon root %s: %v", root, err))
		return
	}

	for _, entry := range entries {
		if ctx.Err() != nil {
			return
		}
		if !entry.IsDir() {
			continue
		}

		dir := filepath.Join(root, entry.Name())
		m, err := s.reader.Read(dir)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping %s (%s): %v", dir, domain.KindOf(err), err))
			continue
		}

		if prev, ok := index[m.Name]; ok {
			s.logger.Warn(fmt.Sprintf("%s: %s at %s overrides %s",
				domain.ErrDuplicatePackageName, m.Name, dir, prev.Path))
		}
		index[m.Name] = domain.DiscoveredPackage{Name: m.Name, Path: dir, Root: root}
	}
}

// Pending is a scan running in the background.
type Pending struct {
	g     errgroup.Group
	done  atomic.Bool
	index domain.PackageIndex
}

// Start runs Scan on a background goroutine. Roots are still scanned sequentially.
func (s *Scanner) Start(ctx context.Context, roots []string) *Pending {
	p := &Pending{}
	p.g.Go(func() error {
		defer p.done.Store(true)
		idx, err := s.Scan(ctx, roots)
		p.index = idx
		return err
	})
	return p
}

// Done reports whether the scan has finished.
func (p *Pending) Done() bool {
	return p.done.Load()
}

// Wait blocks until the scan finishes and returns its index.
func (p *Pending) Wait() (domain.PackageIndex, error) {
	if err := p.g.Wait(); err != nil {
		return nil, err
	}
	return p.index, nil
}
