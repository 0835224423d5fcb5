package ingest

import (
	"bitextclean/internal/adapters/tsv"
	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/services/clean/domain"
)

// create is a seam for tests
var create = tsv.Create

type sinkFactory struct{}

// NewSinkFactory returns a factory that writes two-column tsv (optionally .gz) files
func NewSinkFactory() domain.SinkFactory { return sinkFactory{} }

func (sinkFactory) Create(path string) (domain.SinkPort, error) {
	fw, err := create(path)
	if err != nil {
		return nil, perr.FromCreate(err, "create output", path)
	}
	return &sink{fw: fw, path: path, rec: make([]string, 2)}, nil
}

type sink struct {
	fw   *tsv.FileWriter
	path string
	rec  []string
}

func (s *sink) Write(src, tgt string) error {
	s.rec[0], s.rec[1] = src, tgt
	return perr.FromIO(s.fw.Write(s.rec), "write output", s.path)
}

func (s *sink) Close() error { return perr.FromIO(s.fw.Close(), "close output", s.path) }
