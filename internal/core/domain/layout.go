package domain

import (
	"path"
	"path/filepath"
)

const (
	// ManifestFileName is the preferred name of the package descriptor.
	ManifestFileName = "manifest.yaml"

	// ManifestJSONFileName is the JSON flavoured descriptor, checked after ManifestFileName.
	ManifestJSONFileName = "manifest.json"

	// ManifestTOMLFileName is the TOML flavoured descriptor, checked last.
	ManifestTOMLFileName = "manifest.toml"

	// ManagedDirName is the directory holding a package's code modules.
	ManagedDirName = "managed"

	// ReplaceLayerName is the overlay layer mounted under the package mount path.
	ReplaceLayerName = "elocal"

	// AppendLayerName is the overlay layer mounted at the namespace root.
	AppendLayerName = "expand"

	// ArchiveExt is the extension of packed asset archives.
	ArchiveExt = ".assetbundle"

	// ArchiveAssetsPrefix is the leading segment stripped from asset names in full-path mode.
	ArchiveAssetsPrefix = "assets/"

	// SceneExt marks archive entries that are scenes rather than assets.
	SceneExt = ".scene"

	// AddonsMountRoot is the virtual directory addon replace layers mount beneath.
	AddonsMountRoot = "Addons"

	// ConfigFileName is the name of the addon configuration file.
	ConfigFileName = "addons.yaml"

	// DefaultRootDirName is the package root used when the configuration names none.
	DefaultRootDirName = "addons"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// ManifestFileNames lists the descriptor names in lookup order.
func ManifestFileNames() []string {
	return []string{ManifestFileName, ManifestJSONFileName, ManifestTOMLFileName}
}

// DefaultMountPath returns the virtual mount path of a package's replace layer.
func DefaultMountPath(name string) string {
	return path.Join(AddonsMountRoot, name)
}

// LayerDir returns the loose-file directory of an overlay layer inside a package root.
func LayerDir(root, layer string) string {
	return filepath.Join(root, layer)
}

// LayerArchive returns the packed archive path of an overlay layer inside a package root.
func LayerArchive(root, layer string) string {
	return filepath.Join(root, layer+ArchiveExt)
}

// ManagedDir returns the code module directory inside a package root.
func ManagedDir(root string) string {
	return filepath.Join(root, ManagedDirName)
}
