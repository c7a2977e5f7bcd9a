package domain

import (
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

var packageNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// Manifest describes an addon package: its identity and load options.
// A Manifest is not mutated after it has been parsed.
type Manifest struct {
	Name        string `yaml:"name" toml:"name"`
	Version     string `yaml:"version,omitempty" toml:"version,omitempty"`
	Author      string `yaml:"author,omitempty" toml:"author,omitempty"`
	Title       string `yaml:"title,omitempty" toml:"title,omitempty"`
	Description string `yaml:"description,omitempty" toml:"description,omitempty"`

	// MainModule names the primary code module in managed/, without extension.
	MainModule string `yaml:"mainModule,omitempty" toml:"mainModule,omitempty"`

	// UseArchivePaths derives archive asset leaves from their intra-archive path.
	// Experimental: distinct archive entries may collide on the same virtual path.
	UseArchivePaths bool `yaml:"useArchivePaths,omitempty" toml:"useArchivePaths,omitempty"`

	// IgnoreSingleFileErrors relaxes the per-file failure policy for this package.
	IgnoreSingleFileErrors bool `yaml:"ignoreSingleFileErrors,omitempty" toml:"ignoreSingleFileErrors,omitempty"`

	// Extensions keeps every key the manifest format does not know about.
	Extensions map[string]any `yaml:",inline" toml:"-"`
}

// Validate checks the manifest carries a usable package name. The name becomes
// a single segment of the package mount path, so it must be a valid package name.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return zerr.With(ErrManifestInvalid, "reason", "name is blank")
	}
	if err := ValidatePackageName(m.Name); err != nil {
		return zerr.With(zerr.Wrap(err, ErrManifestInvalid.Error()), "name", m.Name)
	}
	return nil
}

// ValidatePackageName checks that name is usable as a package directory name.
func ValidatePackageName(name string) error {
	if !packageNamePattern.MatchString(name) || name == "." || name == ".." {
		return zerr.With(ErrInvalidPackageName, "name", name)
	}
	return nil
}
