package domain

import (
	"path"
	"strings"
)

// Stem returns the base name of p without its extension.
// Both separators are accepted.
func Stem(p string) string {
	base := path.Base(normalize(p))
	return strings.TrimSuffix(base, path.Ext(base))
}

// VirtualPath joins prefix and rel into a resource path: forward slashes,
// no extension on the final element, no leading separator.
func VirtualPath(prefix, rel string) string {
	rel = normalize(rel)
	dir, file := path.Split(rel)
	file = strings.TrimSuffix(file, path.Ext(file))
	joined := path.Join(normalize(prefix), dir, file)
	return strings.TrimPrefix(joined, "/")
}

// ArchiveLeaf returns the leaf an archive asset is mounted under.
// By default this is the file stem; in full-path mode it is the intra-archive
// path minus the leading assets/ segment and the extension.
func ArchiveLeaf(asset string, fullPath bool) string {
	asset = normalize(asset)
	if !fullPath {
		return Stem(asset)
	}
	trimmed := asset
	if len(trimmed) >= len(ArchiveAssetsPrefix) && strings.EqualFold(trimmed[:len(ArchiveAssetsPrefix)], ArchiveAssetsPrefix) {
		trimmed = trimmed[len(ArchiveAssetsPrefix):]
	}
	return strings.TrimSuffix(trimmed, path.Ext(trimmed))
}

// IsScene reports whether an archive entry name denotes a scene.
func IsScene(name string) bool {
	return strings.EqualFold(path.Ext(normalize(name)), SceneExt)
}

func normalize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	return strings.TrimPrefix(p, "/")
}
