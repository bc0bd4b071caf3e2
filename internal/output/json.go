package output

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/jmylchreest/cleanse/pkg/dataset"
)

// JSONWriter writes the record set as a single JSON array.
type JSONWriter struct {
	w      *bufio.Writer
	pretty bool
	indent string
}

// NewJSONWriter creates a JSON writer.
func NewJSONWriter(w io.Writer, pretty bool, indent string) *JSONWriter {
	return &JSONWriter{
		w:      bufio.NewWriter(w),
		pretty: pretty,
		indent: indent,
	}
}

// WriteRecords writes the records as a JSON array. Nil input is written as
// an empty array, not null.
func (w *JSONWriter) WriteRecords(records []dataset.Record) error {
	if records == nil {
		records = []dataset.Record{}
	}

	var output []byte
	var err error
	if w.pretty {
		output, err = json.MarshalIndent(records, "", w.indent)
	} else {
		output, err = json.Marshal(records)
	}
	if err != nil {
		return err
	}

	if _, err := w.w.Write(output); err != nil {
		return err
	}
	if _, err := w.w.WriteString("\n"); err != nil {
		return err
	}
	return nil
}

// Close flushes the writer.
func (w *JSONWriter) Close() error {
	return w.w.Flush()
}

// JSONLWriter writes one record per line (newline-delimited JSON).
type JSONLWriter struct {
	w *bufio.Writer
}

// NewJSONLWriter creates a JSONL writer.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{w: bufio.NewWriter(w)}
}

// WriteRecords writes each record as its own JSON line.
func (w *JSONLWriter) WriteRecords(records []dataset.Record) error {
	for _, rec := range records {
		output, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := w.w.Write(output); err != nil {
			return err
		}
		if _, err := w.w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

// Close flushes the writer.
func (w *JSONLWriter) Close() error {
	return w.w.Flush()
}
