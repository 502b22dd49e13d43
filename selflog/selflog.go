// Package selflog provides internal diagnostic logging for enrich.
//
// When enabled, selflog captures internal faults that would otherwise be
// silently swallowed, such as a panicking enricher or a property conversion
// failure. It is disabled by default and costs a single lock check when off.
//
// Enable output to stderr:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Or route messages to a callback:
//
//	selflog.EnableFunc(func(msg string) { diag.Warn(msg) })
//
// Setting the ENRICH_SELFLOG environment variable to "stderr", "stdout" or a
// file path enables selflog at startup.
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu     sync.RWMutex
	writer io.Writer
	fn     func(string)
)

// Enable activates self-logging to the provided writer.
// The writer should be safe for concurrent use or wrapped with Sync().
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	mu.Lock()
	writer, fn = w, nil
	mu.Unlock()
}

// EnableFunc activates self-logging through a callback function.
func EnableFunc(f func(string)) {
	if f == nil {
		return
	}
	mu.Lock()
	writer, fn = nil, f
	mu.Unlock()
}

// Disable deactivates self-logging.
func Disable() {
	mu.Lock()
	writer, fn = nil, nil
	mu.Unlock()
}

// IsEnabled reports whether selflog currently has a target. Check it before
// building expensive messages:
//
//	if selflog.IsEnabled() {
//		selflog.Printf("[capture] conversion failed for %T", v)
//	}
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return writer != nil || fn != nil
}

// Printf logs an internal diagnostic message. The format string should name
// the originating component in square brackets, e.g. "[enricher] ...".
func Printf(format string, args ...any) {
	mu.RLock()
	w, f := writer, fn
	mu.RUnlock()
	if w == nil && f == nil {
		return
	}

	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	if w != nil {
		fmt.Fprintln(w, line)
	} else {
		f(line)
	}
}

// syncWriter serializes writes to a wrapped writer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer so it can be shared between goroutines.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	switch dest := os.Getenv("ENRICH_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644); err == nil {
			Enable(Sync(f))
		}
	}
}
