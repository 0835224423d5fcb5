// Package module wires the clean service from config
package module

import (
	"bitextclean/internal/modkit"
	"bitextclean/internal/services/clean/domain"
	"bitextclean/internal/services/clean/ingest"
	"bitextclean/internal/services/clean/report"
	"bitextclean/internal/services/clean/service"
)

// Ports defines the clean module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the clean module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

var _ modkit.Module = (*Module)(nil)

// New reads and validates options from deps.Cfg and wires the service
func New(deps modkit.Deps) (*Module, error) {
	return NewWithOptions(deps, FromConfig(deps.Cfg))
}

// NewWithOptions wires the service from explicit options
func NewWithOptions(deps modkit.Deps, opts Options) (*Module, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	var dst domain.SinkFactory
	if !opts.DryRun {
		dst = ingest.NewSinkFactory()
	}
	svc := service.New(
		ingest.NewSourceFactory(opts.MaxFieldSize),
		dst,
		report.FileWriter{},
		service.Config{
			Input:    opts.Input,
			Output:   opts.Output,
			Report:   opts.Report,
			Workers:  opts.Workers,
			PageSize: opts.PageSize,
			DryRun:   opts.DryRun,
			Timeout:  opts.Timeout,
		},
	)

	deps.Logger("clean").Debug().Interface("options", opts).Msg("clean: module wired")
	return &Module{deps: deps, opts: opts, ports: Ports{Runner: svc}}, nil
}

// Name returns the module name
func (m *Module) Name() string { return "clean" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// Options returns the validated options
func (m *Module) Options() Options { return m.opts }
