package output

import (
	"bufio"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// YAMLWriter writes the record set as a YAML sequence.
type YAMLWriter struct {
	w *bufio.Writer
}

// NewYAMLWriter creates a YAML writer.
func NewYAMLWriter(w io.Writer) *YAMLWriter {
	return &YAMLWriter{w: bufio.NewWriter(w)}
}

// WriteRecords encodes the records as a YAML sequence. Nil input is written
// as an empty sequence.
func (w *YAMLWriter) WriteRecords(records []dataset.Record) error {
	if records == nil {
		records = []dataset.Record{}
	}

	encoder := yaml.NewEncoder(w.w)
	encoder.SetIndent(2)
	if err := encoder.Encode(records); err != nil {
		return err
	}
	return encoder.Close()
}

// Close flushes the writer.
func (w *YAMLWriter) Close() error {
	return w.w.Flush()
}
