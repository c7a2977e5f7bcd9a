package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

var (
	// ErrManifestNotFound is returned when a package root has no descriptor file.
	ErrManifestNotFound = zerr.New("addon manifest not found")

	// ErrManifestInvalid is returned when a manifest is structurally valid but unusable (e.g. blank name).
	ErrManifestInvalid = zerr.New("addon manifest is invalid")

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read addon manifest")

	// ErrManifestParseFailed is returned when the manifest file cannot be decoded.
	ErrManifestParseFailed = zerr.New("failed to parse addon manifest")

	// ErrManifestWriteFailed is returned when a manifest cannot be encoded or written.
	ErrManifestWriteFailed = zerr.New("failed to write addon manifest")

	// ErrModuleLoadFailure is returned when a code module cannot be loaded.
	ErrModuleLoadFailure = zerr.New("failed to load code module")

	// ErrNoModuleLoader is returned when no registered module loader accepts a file.
	ErrNoModuleLoader = zerr.New("no module loader supports file")

	// ErrEntryPointFailed is returned when an addon entry point fails during LoadAddon.
	ErrEntryPointFailed = zerr.New("addon entry point failed")

	// ErrArchiveLoadFailure is returned when a packed archive exists but cannot be loaded.
	ErrArchiveLoadFailure = zerr.New("failed to load packed archive")

	// ErrArchiveEntryNotFound is returned when an archive has no entry with the requested name.
	ErrArchiveEntryNotFound = zerr.New("archive entry not found")

	// ErrArchivePackFailed is returned when a layer directory cannot be packed into an archive.
	ErrArchivePackFailed = zerr.New("failed to pack asset archive")

	// ErrResourceFileLoadFailure is returned when a loose resource file cannot be mounted.
	ErrResourceFileLoadFailure = zerr.New("failed to load resource file")

	// ErrResourceStoreFailed is returned when the resource store rejects a registration.
	ErrResourceStoreFailed = zerr.New("resource store rejected resource")

	// ErrDuplicatePackageName is reported (as a warning) when two roots contain the same package name.
	ErrDuplicatePackageName = zerr.New("duplicate addon package name")

	// ErrPackagePanicked is returned when a package sub-pipeline panics.
	ErrPackagePanicked = zerr.New("addon load panicked")

	// ErrYieldInterrupted is returned when the host scheduler refuses to resume the pipeline.
	ErrYieldInterrupted = zerr.New("scheduler yield interrupted")

	// ErrConfigReadFailed is returned when the addon configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read addon config")

	// ErrConfigParseFailed is returned when the addon configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse addon config")

	// ErrConfigEnvFailed is returned when environment overrides cannot be applied.
	ErrConfigEnvFailed = zerr.New("failed to apply environment overrides")

	// ErrPackageExists is returned when scaffolding into an existing directory.
	ErrPackageExists = zerr.New("addon package already exists")

	// ErrInvalidPackageName is returned when a package name contains invalid characters.
	ErrInvalidPackageName = zerr.New("addon name can only contain alphanumeric characters, dots, hyphens and underscores")

	// ErrPackageNotFound is returned when no discovered package has the requested name.
	ErrPackageNotFound = zerr.New("addon package not found")

	// ErrAddonsFailed is returned by the load command when at least one package failed.
	// The failures have already been reported.
	ErrAddonsFailed = zerr.New("one or more addons failed to load")

	// ErrWatchFailed is returned when the addon roots cannot be watched.
	ErrWatchFailed = zerr.New("failed to watch addon roots")
)

// messager matches errors that can report their own message without the chain.
type messager interface {
	Message() string
}

// errorKinds lists the taxonomy in the order KindOf checks it.
var errorKinds = []struct {
	name string
	err  error
}{
	{"ManifestNotFound", ErrManifestNotFound},
	{"ManifestInvalid", ErrManifestInvalid},
	{"ManifestReadFailed", ErrManifestReadFailed},
	{"ManifestParseFailed", ErrManifestParseFailed},
	{"ModuleLoadFailure", ErrModuleLoadFailure},
	{"NoModuleLoader", ErrNoModuleLoader},
	{"EntryPointFailed", ErrEntryPointFailed},
	{"ArchiveLoadFailure", ErrArchiveLoadFailure},
	{"ResourceFileLoadFailure", ErrResourceFileLoadFailure},
	{"ResourceStoreFailed", ErrResourceStoreFailed},
	{"DuplicatePackageName", ErrDuplicatePackageName},
	{"PackagePanicked", ErrPackagePanicked},
	{"YieldInterrupted", ErrYieldInterrupted},
}

// KindOf names the first taxonomy error found in err's chain, outermost first.
// Errors outside the taxonomy report "Unknown".
func KindOf(err error) string {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		msg := cur.Error()
		if m, ok := cur.(messager); ok {
			msg = m.Message()
		}
		for _, k := range errorKinds {
			if cur == k.err || msg == messageOf(k.err) {
				return k.name
			}
		}
	}
	return "Unknown"
}

func messageOf(err error) string {
	if m, ok := err.(messager); ok {
		return m.Message()
	}
	return err.Error()
}
