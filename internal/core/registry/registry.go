package registry

import "sync"

// Registry tracks which log filenames have already been initialized
// during this process run. A filename transitions to initialized at
// most once; the transition is the trigger for discarding any
// pre-existing file content left over from an earlier run.
//
// The registry grows monotonically and is never reset. Callers share a
// single process-scoped instance.
type Registry struct {
	mu    sync.Mutex
	files map[string]struct{}
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		files: make(map[string]struct{}),
	}
}

// InitOnce runs truncate for the given filename if and only if this is
// the first time the filename is seen this process run. The membership
// check, the insertion, and the truncate callback all execute under the
// registry lock, so a concurrent writer for the same filename cannot
// observe the pre-truncation file between the decision and the
// truncation.
//
// The filename stays registered even if truncate fails; a first write
// that cannot clear the old file should not retrigger truncation on
// retry and silently drop entries written in between.
func (r *Registry) InitOnce(filename string, truncate func() error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, seen := r.files[filename]; seen {
		return nil
	}
	r.files[filename] = struct{}{}

	return truncate()
}

// Initialized reports whether the filename has been initialized this
// process run.
func (r *Registry) Initialized(filename string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, seen := r.files[filename]
	return seen
}

// Len returns the number of filenames initialized so far.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.files)
}
