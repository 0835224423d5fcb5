package domain

import "context"

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	Run(ctx context.Context) (Result, error)
}

// SourcePort yields raw rows; io.EOF once the input is exhausted
type SourcePort interface {
	Next() ([]string, error)
	Close() error
	Stats() (rows int, bytes int64) // zeros if not supported
}

// SourceFactory opens a row source
type SourceFactory interface {
	Open(path string) (SourcePort, error)
}

// SinkPort receives accepted rows in input order
type SinkPort interface {
	Write(src, tgt string) error
	Close() error
}

// SinkFactory creates (truncating) a row sink
type SinkFactory interface {
	Create(path string) (SinkPort, error)
}

// ReportWriter persists a run result as a diagnostic artifact
type ReportWriter interface {
	Write(path string, res Result) error
}
