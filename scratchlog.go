// Package scratchlog writes ad-hoc debug entries to named log files
// inside a lazily resolved debug directory. Each named file is cleared
// exactly once per process run, on its first write, and appended to for
// the remainder of the run, so a file always reflects the current run
// only.
//
// Typical usage:
//
//	scratchlog.Debugf("computed %d candidates", n)
//	scratchlog.Message("cache miss").ToFile("cache.log").WithHeader("MISS").Log()
//
// Entries carry optional header and context framing; context defaults
// to the caller's file:line. Writes are synchronous, buffered, and
// flushed before returning.
package scratchlog

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/scratchlog/scratchlog/internal/core/entry"
	"github.com/scratchlog/scratchlog/internal/core/registry"
	"github.com/scratchlog/scratchlog/internal/infrastructure/config"
	"github.com/scratchlog/scratchlog/internal/infrastructure/dirs"
	"github.com/scratchlog/scratchlog/internal/writer"
)

// DefaultFile receives entries that do not name a log file.
const DefaultFile = "debug.log"

// Logger owns the process-scoped write state: resolution policy, the
// resolved debug directory, and the truncate-once file registry. Most
// callers use the package-level functions, which share one Logger per
// process; separate Loggers are mainly useful in tests.
type Logger struct {
	policy config.Policy
	writer *writer.Writer
}

// NewLogger creates a Logger with the given policy. Each Logger has
// its own file registry, so two Loggers writing the same filename will
// each truncate it once.
func NewLogger(policy config.Policy) *Logger {
	return &Logger{
		policy: policy,
		writer: writer.New(dirs.NewResolver(policy), registry.New()),
	}
}

// Enabled reports whether writes are active under the logger's policy.
func (l *Logger) Enabled() bool {
	return l.policy.Enabled
}

// Dir returns the resolved debug directory, computing it on first use.
func (l *Logger) Dir() string {
	return l.writer.Dir()
}

// Write appends content to filename with optional header and context
// framing (empty string means absent). Returns the underlying I/O
// error on failure; disabled loggers return nil without writing.
func (l *Logger) Write(filename, content, header, context string) error {
	if !l.policy.Enabled {
		return nil
	}

	e := entry.New(content)
	if header != "" {
		e = e.WithHeader(header)
	}
	if context != "" {
		e = e.WithContext(context)
	}

	return l.writer.Write(filename, e)
}

var (
	defaultMu     sync.Mutex
	defaultLogger *Logger
)

// Default returns the shared process-wide Logger, building it on first
// use from the default policy sources (config file plus SCRATCHLOG_*
// environment variables). Loader warnings go to stderr.
func Default() *Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLogger == nil {
		loader := config.NewLoader()
		policy := loader.Load()
		for _, warning := range loader.Warnings() {
			fmt.Fprintf(os.Stderr, "scratchlog: %s\n", warning)
		}
		defaultLogger = NewLogger(policy)
	}
	return defaultLogger
}

// Write appends content to filename via the shared Logger. Empty
// header or context means absent.
func Write(filename, content, header, context string) error {
	return Default().Write(filename, content, header, context)
}

// Dir returns the shared Logger's debug directory, for callers that
// need to locate or clean up log files.
func Dir() string {
	return Default().Dir()
}

// Debugf formats an entry into the default log file with the caller's
// file:line as context. Errors degrade to a stderr diagnostic; debug
// logging never aborts the host program.
func Debugf(format string, args ...any) {
	err := Default().Write(DefaultFile, fmt.Sprintf(format, args...), "", callerContext(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "scratchlog: failed to write debug log: %v\n", err)
	}
}

// Message starts a fluent entry for the default file, capturing the
// caller's file:line as the default context.
func Message(content string) *MessageBuilder {
	return &MessageBuilder{
		logger:   Default(),
		filename: DefaultFile,
		content:  content,
		context:  callerContext(2),
	}
}

// Messagef is Message with fmt-style formatting.
func Messagef(format string, args ...any) *MessageBuilder {
	return &MessageBuilder{
		logger:   Default(),
		filename: DefaultFile,
		content:  fmt.Sprintf(format, args...),
		context:  callerContext(2),
	}
}

// MessageBuilder accumulates the optional fields of one entry. Methods
// return the builder for chaining; the entry is written by Write or
// Log.
type MessageBuilder struct {
	logger   *Logger
	filename string
	content  string
	header   string
	context  string
}

// ToFile routes the entry to the named log file instead of DefaultFile.
func (m *MessageBuilder) ToFile(filename string) *MessageBuilder {
	m.filename = filename
	return m
}

// WithHeader sets the entry's header label.
func (m *MessageBuilder) WithHeader(header string) *MessageBuilder {
	m.header = header
	return m
}

// WithContext replaces the captured caller context.
func (m *MessageBuilder) WithContext(context string) *MessageBuilder {
	m.context = context
	return m
}

// NoContext drops the captured caller context.
func (m *MessageBuilder) NoContext() *MessageBuilder {
	m.context = ""
	return m
}

// Write appends the entry and returns any I/O error.
func (m *MessageBuilder) Write() error {
	return m.logger.Write(m.filename, m.content, m.header, m.context)
}

// Log appends the entry, degrading errors to a stderr diagnostic.
func (m *MessageBuilder) Log() {
	if err := m.Write(); err != nil {
		fmt.Fprintf(os.Stderr, "scratchlog: failed to write debug log: %v\n", err)
	}
}

// callerContext formats the caller's source location as "file.go:12".
func callerContext(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
