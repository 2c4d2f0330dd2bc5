package dirs

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/scratchlog/scratchlog/internal/infrastructure/config"
)

const (
	// debugSubdir is the fixed folder name for debug artifacts under
	// the build output directory.
	debugSubdir = "odebug"

	// defaultDirName is the debug directory name used outside the
	// build output tree.
	defaultDirName = ".debug"
)

// Resolver computes the debug output directory for this process. The
// directory is resolved lazily on first use and memoized: later calls
// return the same path even if the environment or filesystem changes.
//
// Resolution never fails outright. Every branch falls back to the
// current working directory, and problems along the way are reported
// as non-fatal warnings on stderr.
type Resolver struct {
	policy config.Policy

	once sync.Once
	dir  string

	// warnf is stubbed in tests to capture warnings.
	warnf func(format string, args ...any)
}

// NewResolver creates a Resolver for the given policy.
func NewResolver(policy config.Policy) *Resolver {
	return &Resolver{
		policy: policy,
		warnf: func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "scratchlog: "+format+"\n", args...)
		},
	}
}

// Resolve returns the debug directory, computing and creating it on
// the first call.
func (r *Resolver) Resolve() string {
	r.once.Do(func() {
		r.dir = r.determine()
		if err := os.MkdirAll(r.dir, 0o755); err != nil {
			r.warnf("failed to create debug directory %s: %v", r.dir, err)
		}
	})
	return r.dir
}

// determine applies the resolution policy.
func (r *Resolver) determine() string {
	if r.policy.PreferBuildOutput {
		if dir, ok := r.buildOutputDir(); ok {
			return filepath.Join(dir, debugSubdir)
		}
		r.warnf("could not determine build output directory, falling back to default location")
	}

	return r.defaultDir()
}

// buildOutputDir locates the build output directory: environment
// override first, then the workspace root, then the current working
// directory.
func (r *Resolver) buildOutputDir() (string, bool) {
	if dir := os.Getenv(r.policy.BuildOutputEnv); dir != "" {
		return dir, true
	}

	if r.policy.PreferWorkspaceRoot {
		if root, ok := r.workspaceRoot(); ok {
			return filepath.Join(root, r.policy.BuildSubdir), true
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false
	}
	return filepath.Join(wd, r.policy.BuildSubdir), true
}

// defaultDir returns (workspace root or cwd)/.debug per policy.
func (r *Resolver) defaultDir() string {
	if r.policy.PreferWorkspaceRoot {
		if root, ok := r.workspaceRoot(); ok {
			return filepath.Join(root, defaultDirName)
		}
		r.warnf("could not find workspace root, falling back to current directory")
	}

	wd, err := os.Getwd()
	if err != nil {
		r.warnf("could not determine working directory: %v", err)
		wd = ""
	}
	return filepath.Join(wd, defaultDirName)
}

// workspaceRoot walks upward from the working directory looking for a
// directory that qualifies as a multi-project root: it contains a
// go.work file, or a scratchlog config file declaring
// workspace_root: true. Returns false if the filesystem root is
// reached without a match.
func (r *Resolver) workspaceRoot() (string, bool) {
	dir, err := os.Getwd()
	if err != nil {
		return "", false
	}

	for {
		if isWorkspaceRoot(dir) {
			return dir, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func isWorkspaceRoot(dir string) bool {
	if info, err := os.Stat(filepath.Join(dir, "go.work")); err == nil && !info.IsDir() {
		return true
	}

	for _, name := range config.ConfigFileNames() {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			if config.MarksWorkspaceRoot(path) {
				return true
			}
		}
	}

	return false
}
