// Package ingest adapts the tsv codec to the clean domain ports
package ingest

import (
	"errors"
	"io"

	"bitextclean/internal/adapters/tsv"
	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/services/clean/domain"
)

// open is a seam for tests
var open = tsv.Open

// sourceFactory opens tsv files as domain sources
type sourceFactory struct{ opt tsv.Options }

// NewSourceFactory returns a factory that reads tsv (optionally .gz) files
func NewSourceFactory(maxFieldSize int) domain.SourceFactory {
	return sourceFactory{opt: tsv.Options{MaxFieldSize: maxFieldSize}}
}

func (f sourceFactory) Open(path string) (domain.SourcePort, error) {
	fr, err := open(path, f.opt)
	if err != nil {
		return nil, perr.FromIO(err, "open input", path)
	}
	return &source{fr: fr, path: path}, nil
}

type source struct {
	fr   *tsv.FileReader
	path string
}

func (s *source) Next() ([]string, error) {
	rec, err := s.fr.Read()
	if err == nil {
		return rec, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	var pe *tsv.ParseError
	if errors.As(err, &pe) {
		return nil, perr.WithField(perr.Wrapf(err, perr.ErrorCodeParse, "parse %s", s.path), s.path)
	}
	return nil, perr.FromIO(err, "read input", s.path)
}

func (s *source) Close() error { return perr.FromIO(s.fr.Close(), "close input", s.path) }

func (s *source) Stats() (rows int, bytes int64) { return s.fr.Stats() }
