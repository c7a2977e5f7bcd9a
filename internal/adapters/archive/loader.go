package archive

import "go.trai.ch/addon/internal/core/ports"

var _ ports.ArchiveLoader = (*Loader)(nil)

// Loader opens archives on background goroutines.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadAsync starts opening the archive at path.
func (l *Loader) LoadAsync(path string) ports.ArchiveRequest {
	req := &request{done: make(chan struct{})}
	go func() {
		defer close(req.done)
		req.archive, req.err = Open(path)
	}()
	return req
}

type request struct {
	done    chan struct{}
	archive *Archive
	err     error
}

// Done reports whether the load finished.
func (r *request) Done() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Result blocks until the load finished and returns its outcome.
func (r *request) Result() (ports.Archive, error) {
	<-r.done
	if r.err != nil {
		return nil, r.err
	}
	return r.archive, nil
}
