package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends rows to a CSV stream, emitting the header once. A nil
// *Writer discards everything so callers can leave output disabled.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter wraps an existing stream. Close does not close it.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Create opens path for writing, creating parent directories. Returns nil if
// path is empty (output disabled).
func Create(path string) (*Writer, error) {
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Write appends records of any gocsv-compatible struct slice.
func (w *Writer) Write(records any) error {
	if w == nil {
		return nil
	}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// WriteRecord appends a single observable row.
func (w *Writer) WriteRecord(r Record) error {
	return w.Write([]Record{r})
}

// Close releases the underlying file when the Writer owns it.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
