package tsv

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"strings"
)

func isGzip(path string) bool { return strings.HasSuffix(strings.ToLower(path), ".gz") }

// FileReader is a Reader bound to a file it owns
type FileReader struct {
	*Reader
	f  *os.File
	gz *gzip.Reader
}

// Open opens path for reading, decompressing when it ends in .gz
func Open(path string, opt Options) (*FileReader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fr := &FileReader{f: f}
	var src io.Reader = f
	if isGzip(path) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			if cerr := f.Close(); cerr != nil {
				return nil, errors.Join(err, cerr)
			}
			return nil, err
		}
		fr.gz = gz
		src = gz
	}
	fr.Reader = NewReader(src, opt)
	return fr, nil
}

// Close releases the gzip stream and the file; the first error wins
func (fr *FileReader) Close() error {
	var first error
	if fr.gz != nil {
		if err := fr.gz.Close(); err != nil {
			first = err
		}
	}
	if fr.f != nil {
		if err := fr.f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// FileWriter is a Writer bound to a file it owns
type FileWriter struct {
	*Writer
	f  *os.File
	gz *gzip.Writer
}

// Create truncates or creates path for writing, compressing when it ends in .gz
func Create(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	fw := &FileWriter{f: f}
	var dst io.Writer = f
	if isGzip(path) {
		fw.gz = gzip.NewWriter(f)
		dst = fw.gz
	}
	fw.Writer = NewWriter(dst)
	return fw, nil
}

// Close flushes buffered records, finishes the gzip stream and closes the file.
// The file is closed even when flushing fails; the first error wins
func (fw *FileWriter) Close() error {
	first := fw.Flush()
	if fw.gz != nil {
		if err := fw.gz.Close(); err != nil && first == nil {
			first = err
		}
	}
	if err := fw.f.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
