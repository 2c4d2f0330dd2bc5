package writer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scratchlog/scratchlog/internal/core/entry"
	"github.com/scratchlog/scratchlog/internal/core/registry"
	"github.com/scratchlog/scratchlog/internal/infrastructure/dirs"
)

// Writer coordinates one debug-log write: resolve the debug directory,
// clear the target file on its first use this process run, then append
// the rendered entry with buffered, flushed I/O.
//
// Writer is safe for concurrent use. No lock is held during the append
// itself; cross-goroutine ordering of appends to the same file is
// whatever OS append semantics provide, but no entry is lost and none
// lands before the file's single truncation.
type Writer struct {
	resolver *dirs.Resolver
	registry *registry.Registry
}

// New creates a Writer around the shared resolver and registry.
func New(resolver *dirs.Resolver, reg *registry.Registry) *Writer {
	return &Writer{
		resolver: resolver,
		registry: reg,
	}
}

// Dir returns the resolved debug directory.
func (w *Writer) Dir() string {
	return w.resolver.Resolve()
}

// Write appends the entry to filename inside the debug directory. On
// the filename's first write this process run, any pre-existing file
// content is discarded first. The write is flushed before returning.
func (w *Writer) Write(filename string, e entry.Entry) error {
	dir := w.resolver.Resolve()

	// The resolver already tried to create the directory; retry here
	// so a directory removed mid-run heals. Failure is deliberately
	// ignored, the open below surfaces the real error.
	_ = os.MkdirAll(dir, 0o755)

	path := filepath.Join(dir, filename)

	err := w.registry.InitOnce(filename, func() error {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", path, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}

	buf := bufio.NewWriter(f)
	if _, err := buf.WriteString(e.Render()); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	return f.Close()
}
