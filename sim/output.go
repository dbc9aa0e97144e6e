package sim

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// OutputWriter appends simulation records to a CSV file, writing the
// header only once.
type OutputWriter struct {
	file          *os.File
	headerWritten bool
}

// NewOutputWriter creates the output file, truncating any existing one.
// Returns nil if path is empty (output disabled).
func NewOutputWriter(path string) (*OutputWriter, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &OutputWriter{file: f}, nil
}

// Write appends one record.
func (w *OutputWriter) Write(r Record) error {
	if w == nil {
		return nil
	}

	records := []Record{r}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

// Close flushes and closes the output file.
func (w *OutputWriter) Close() error {
	if w == nil {
		return nil
	}
	return w.file.Close()
}
