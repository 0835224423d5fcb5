package tsv

import (
	"bufio"
	"io"
	"strings"
)

// Writer writes records in the same dialect the Reader parses
type Writer struct {
	bw      *bufio.Writer
	records int
}

// NewWriter wraps w; call Flush when done
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024)}
}

// Write writes one record terminated by \r\n
func (w *Writer) Write(record []string) error {
	// a lone empty field must be quoted or it reads back as a blank line
	if len(record) == 1 && record[0] == "" {
		if _, err := w.bw.WriteString(`""` + "\r\n"); err != nil {
			return err
		}
		w.records++
		return nil
	}
	for i, f := range record {
		if i > 0 {
			if err := w.bw.WriteByte(Delimiter); err != nil {
				return err
			}
		}
		if err := w.writeField(f); err != nil {
			return err
		}
	}
	if _, err := w.bw.WriteString("\r\n"); err != nil {
		return err
	}
	w.records++
	return nil
}

// Flush writes buffered data to the underlying writer
func (w *Writer) Flush() error { return w.bw.Flush() }

// Records returns the number of records written
func (w *Writer) Records() int { return w.records }

func (w *Writer) writeField(f string) error {
	if !needsQuotes(f) {
		_, err := w.bw.WriteString(f)
		return err
	}
	if err := w.bw.WriteByte(Quote); err != nil {
		return err
	}
	if _, err := w.bw.WriteString(strings.ReplaceAll(f, `"`, `""`)); err != nil {
		return err
	}
	return w.bw.WriteByte(Quote)
}

func needsQuotes(f string) bool {
	return strings.ContainsAny(f, "\t\"\r\n")
}
