package entities

import (
	"io"
	"os"
	"path/filepath"
	"sync"
)

// OutputSink is the injected destination for external-tool output. By default
// everything is discarded until a controller redirects the sink: to the
// project log file normally, or to stderr in verbose mode. Swapping the sink
// is the only difference between quiet and verbose runs.
type OutputSink struct {
	mu     sync.Mutex
	writer io.Writer
	closer io.Closer
}

// NewOutputSink creates a sink that discards everything until redirected.
func NewOutputSink() *OutputSink {
	return &OutputSink{writer: io.Discard}
}

func (s *OutputSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer.Write(p)
}

// RedirectTo points the sink at an arbitrary writer (e.g. stderr).
func (s *OutputSink) RedirectTo(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
	s.writer = w
}

// RedirectToFile appends to the log file inside the given project directory.
func (s *OutputSink) RedirectToFile(projectDir string) error {
	file, err := os.OpenFile(
		filepath.Join(projectDir, LogFileName),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
	s.writer = file
	s.closer = file
	return nil
}

// Close releases the underlying file, if any.
func (s *OutputSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
	s.writer = io.Discard
	return nil
}

func (s *OutputSink) closeLocked() {
	if s.closer != nil {
		_ = s.closer.Close()
		s.closer = nil
	}
}
