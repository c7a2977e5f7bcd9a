package domain

import (
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
)

// PackageSpanAttribute is the tracing attribute naming the package a span belongs to.
const PackageSpanAttribute = "addon.package"

// DiscoveredPackage is a package found by a discovery pass.
type DiscoveredPackage struct {
	Name string
	// Path is the package root directory.
	Path string
	// Root is the discovery root the package was found under.
	Root string
}

// PackageIndex maps package names to the packages discovered for them.
// It is rebuilt on every discovery pass.
type PackageIndex map[string]DiscoveredPackage

// Names returns the indexed package names in sorted order.
func (idx PackageIndex) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Fingerprint returns a stable hash of the index contents.
func (idx PackageIndex) Fingerprint() uint64 {
	d := xxhash.New()
	for _, name := range idx.Names() {
		_, _ = d.WriteString(name)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(idx[name].Path)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}

// LoadedAddon records a package whose load pipeline completed.
type LoadedAddon struct {
	Name     string
	Path     string
	Manifest *Manifest
	Data     LoadData
	Duration time.Duration
}
