package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// skipDirs are never descended into.
var skipDirs = map[string]bool{
	".git": true,
	".jj":  true,
}

// Walker enumerates directory trees in parallel.
type Walker struct {
	conf *fastwalk.Config
}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{conf: &fastwalk.Config{Follow: false}}
}

// Dirs yields root and every directory below it in lexical order.
// Unreadable directories are skipped.
func (w *Walker) Dirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		var (
			mu   sync.Mutex
			dirs []string
		)

		_ = fastwalk.Walk(w.conf, root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // keep walking past unreadable directories
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			mu.Lock()
			dirs = append(dirs, path)
			mu.Unlock()
			return nil
		})

		slices.Sort(dirs)
		for _, dir := range dirs {
			if !yield(dir) {
				return
			}
		}
	}
}
