// Package resources implements an in-memory virtual resource namespace.
package resources

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.trai.ch/addon/internal/core/domain"
	"go.trai.ch/addon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ResourceStore = (*Store)(nil)

// structuredExts are validated on registration; a file that does not parse is rejected.
var structuredExts = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// Store keeps every registration per virtual path and resolves them by priority.
type Store struct {
	fs ports.FileSystem

	mu      sync.RWMutex
	entries map[string][]domain.ResourceHandle
	count   int
}

// NewStore creates an empty Store reading loose files through fsys.
func NewStore(fsys ports.FileSystem) *Store {
	return &Store{
		fs:      fsys,
		entries: make(map[string][]domain.ResourceHandle),
	}
}

// AddFromFile registers the file at sourcePath under virtualPath.
func (s *Store) AddFromFile(virtualPath, sourcePath string, priority int) (domain.ResourceHandle, error) {
	data, err := s.fs.ReadFile(sourcePath)
	if err != nil {
		return domain.ResourceHandle{}, zerr.With(
			zerr.Wrap(err, domain.ErrResourceFileLoadFailure.Error()), "file", sourcePath)
	}
	if err := validate(sourcePath, data); err != nil {
		return domain.ResourceHandle{}, zerr.With(
			zerr.Wrap(err, domain.ErrResourceFileLoadFailure.Error()), "file", sourcePath)
	}

	return s.register(domain.ResourceHandle{
		VirtualPath: virtualPath,
		Source:      sourcePath,
		Priority:    priority,
		ContentType: mimetype.Detect(data).String(),
	}), nil
}

// AddFromArchiveEntry registers an archive entry under virtualPath.
// Only the head of the entry is read to sniff its content type.
func (s *Store) AddFromArchiveEntry(
	virtualPath, entry string, archive ports.Archive, priority int,
) (domain.ResourceHandle, error) {
	r, err := archive.Open(entry)
	if err != nil {
		return domain.ResourceHandle{}, zerr.With(
			zerr.Wrap(err, domain.ErrResourceStoreFailed.Error()), "entry", entry)
	}
	defer func() { _ = r.Close() }()

	mt, err := mimetype.DetectReader(io.LimitReader(r, 3072))
	if err != nil {
		return domain.ResourceHandle{}, zerr.With(
			zerr.Wrap(err, domain.ErrResourceStoreFailed.Error()), "entry", entry)
	}

	return s.register(domain.ResourceHandle{
		VirtualPath: virtualPath,
		Source:      archive.Path(),
		Entry:       entry,
		Priority:    priority,
		ContentType: mt.String(),
	}), nil
}

func (s *Store) register(h domain.ResourceHandle) domain.ResourceHandle {
	s.mu.Lock()
	defer s.mu.Unlock()

	h.ID = uuid.NewString()
	s.count++
	s.entries[h.VirtualPath] = append(s.entries[h.VirtualPath], h)
	return h
}

// Resolve returns the registration visible at virtualPath: the highest priority
// wins and, on equal priority, the earliest registration.
func (s *Store) Resolve(virtualPath string) (domain.ResourceHandle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	regs := s.entries[virtualPath]
	if len(regs) == 0 {
		return domain.ResourceHandle{}, false
	}

	best := regs[0]
	for _, h := range regs[1:] {
		if h.Priority > best.Priority {
			best = h
		}
	}
	return best, true
}

// Registrations returns every registration for virtualPath in registration order.
func (s *Store) Registrations(virtualPath string) []domain.ResourceHandle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.entries[virtualPath])
}

// Paths returns every virtual path with at least one registration, sorted.
func (s *Store) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]string, 0, len(s.entries))
	for p := range s.entries {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Len returns the total number of registrations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

func validate(path string, data []byte) error {
	if !structuredExts[strings.ToLower(filepath.Ext(path))] {
		return nil
	}
	var v any
	return yaml.Unmarshal(data, &v)
}
