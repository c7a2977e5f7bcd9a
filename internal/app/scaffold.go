package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/addon/internal/adapters/archive"
	"go.trai.ch/addon/internal/adapters/manifest"
	"go.trai.ch/addon/internal/adapters/script"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/zerr"
)

const scaffoldVersion = "0.1.0"

const scriptTemplate = `// Entry point of the %[1]s addon.
addon.registerEntryPoint(%[1]q, {
  beforeLoad: function (ctx) {
    console.log("loading " + ctx.name + " from " + ctx.sourcePath);
  },
  afterLoad: function (ctx) {
    console.log("mounted " + ctx.resources + " resources");
  },
});
`

// NewOptions configuration for the NewPackage method.
type NewOptions struct {
	// Dir is where the configuration search starts; the working directory when empty.
	Dir  string
	Name string
	// Root overrides the first configured addon root.
	Root string
	// Script adds a main script module with an entry point.
	Script bool
}

// NewPackage scaffolds an empty package: a manifest and the managed, elocal and
// expand directories. It returns the package directory.
func (a *App) NewPackage(_ context.Context, opts NewOptions) (string, error) {
	if err := domain.ValidatePackageName(opts.Name); err != nil {
		return "", err
	}

	root := opts.Root
	if root == "" {
		cfg, err := a.loadConfig(opts.Dir)
		if err != nil {
			return "", err
		}
		root = cfg.Roots[0]
	}

	dir := filepath.Join(root, opts.Name)
	if _, err := os.Stat(dir); err == nil {
		return "", zerr.With(domain.ErrPackageExists, "path", dir)
	}

	for _, sub := range []string{domain.ManagedDirName, domain.ReplaceLayerName, domain.AppendLayerName} {
		if err := os.MkdirAll(filepath.Join(dir, sub), domain.DirPerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to create package directory"), "path", dir)
		}
	}

	m := &domain.Manifest{Name: opts.Name, Version: scaffoldVersion}
	if opts.Script {
		m.MainModule = opts.Name
		src := filepath.Join(domain.ManagedDir(dir), opts.Name+script.Ext)
		if err := os.WriteFile(src, fmt.Appendf(nil, scriptTemplate, opts.Name), domain.FilePerm); err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to write entry point"), "path", src)
		}
	}

	if err := manifest.Write(dir, m); err != nil {
		return "", err
	}

	a.logger.Info(fmt.Sprintf("created %s at %s", opts.Name, dir))
	return dir, nil
}

// PackOptions configuration for the Pack method.
type PackOptions struct {
	// Dir is where the configuration search starts; the working directory when empty.
	Dir  string
	Name string
}

// PackedLayer is one archive written by Pack.
type PackedLayer struct {
	Layer   string
	Archive string
	Files   int
}

// Pack writes each existing overlay layer directory of the named package into
// its packed archive next to it.
func (a *App) Pack(ctx context.Context, opts PackOptions) ([]PackedLayer, error) {
	cfg, err := a.loadConfig(opts.Dir)
	if err != nil {
		return nil, err
	}

	index, err := a.scanner.Scan(ctx, cfg.Roots)
	if err != nil {
		return nil, err
	}
	pkg, ok := index[opts.Name]
	if !ok {
		return nil, zerr.With(domain.ErrPackageNotFound, "name", opts.Name)
	}

	var packed []PackedLayer
	for _, layer := range []string{domain.ReplaceLayerName, domain.AppendLayerName} {
		src := domain.LayerDir(pkg.Path, layer)
		if info, err := os.Stat(src); errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
			continue
		}

		dst := domain.LayerArchive(pkg.Path, layer)
		n, err := archive.Pack(src, dst, domain.ArchiveAssetsPrefix)
		if err != nil {
			return packed, err
		}
		a.logger.Debug(fmt.Sprintf("packed %d files of %s into %s", n, src, dst))
		packed = append(packed, PackedLayer{Layer: layer, Archive: dst, Files: n})
	}
	return packed, nil
}
