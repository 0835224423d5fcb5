// Package service runs the row validation pipeline over a source and writes
// accepted rows to a sink
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"bitextclean/internal/core/pipeline"
	"bitextclean/internal/core/tally"
	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/platform/logger"
	"bitextclean/internal/services/clean/domain"

	"golang.org/x/sync/errgroup"
)

// Config holds run options for the clean service
type Config struct {
	Input  string
	Output string
	Report string // optional report path; empty disables

	Workers  int  // parallel validators per page; <=0 -> 1
	PageSize int  // rows read before validating; <=0 -> 5000
	DryRun   bool // tally only, no output file

	Timeout time.Duration // 0 = no deadline
}

// Service implements domain.RunnerPort
type Service struct {
	Src    domain.SourceFactory
	Dst    domain.SinkFactory
	Report domain.ReportWriter // optional
	Cfg    Config

	now func() time.Time
}

var _ domain.RunnerPort = (*Service)(nil)

// New constructs the clean service
func New(src domain.SourceFactory, dst domain.SinkFactory, rep domain.ReportWriter, cfg Config) *Service {
	if src == nil {
		panic("clean.Service requires a non nil SourceFactory")
	}
	if dst == nil && !cfg.DryRun {
		panic("clean.Service requires a non nil SinkFactory unless DryRun")
	}
	cfg.Workers = max(cfg.Workers, 1)
	if cfg.PageSize <= 0 {
		cfg.PageSize = 5000
	}
	return &Service{Src: src, Dst: dst, Report: rep, Cfg: cfg, now: time.Now}
}

// Run cleans Cfg.Input into Cfg.Output. The returned Result carries the tally
// so far even when err != nil
func (s *Service) Run(ctx context.Context) (res domain.Result, err error) {
	if s.Cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Cfg.Timeout)
		defer cancel()
	}
	log := logger.C(ctx).With().Str("component", "clean").Logger()

	res = domain.Result{
		RunID:   logger.RunID(ctx),
		Input:   s.Cfg.Input,
		Output:  s.Cfg.Output,
		DryRun:  s.Cfg.DryRun,
		Workers: s.Cfg.Workers,
		Started: s.now().UTC(),
	}
	t := tally.New()

	src, err := s.Src.Open(s.Cfg.Input)
	if err != nil {
		return s.finish(res, t, nil), err
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	var dst domain.SinkPort
	closeDst := func() error { return nil }
	if !s.Cfg.DryRun {
		if dst, err = s.Dst.Create(s.Cfg.Output); err != nil {
			return s.finish(res, t, src), err
		}
		closed := false
		closeDst = func() error {
			if closed {
				return nil
			}
			closed = true
			return dst.Close()
		}
		defer func() {
			if cerr := closeDst(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	log.Info().
		Str("output", s.Cfg.Output).
		Int("workers", s.Cfg.Workers).
		Int("page_size", s.Cfg.PageSize).
		Bool("dry_run", s.Cfg.DryRun).
		Msg("clean: start")

	page := make([][]string, 0, s.Cfg.PageSize)
	verdicts := make([]pipeline.Verdict, s.Cfg.PageSize)
	pages := 0
	for {
		if cerr := ctx.Err(); cerr != nil {
			return s.finish(res, t, src), perr.Wrap(cerr, perr.ErrorCodeCanceled, "clean canceled")
		}

		page = page[:0]
		eof := false
		for len(page) < s.Cfg.PageSize {
			rec, rerr := src.Next()
			if errors.Is(rerr, io.EOF) {
				eof = true
				break
			}
			if rerr != nil {
				// rows consumed before the failure still count and still get written
				if werr := s.process(page, verdicts, t, dst); werr != nil {
					return s.finish(res, t, src), werr
				}
				return s.finish(res, t, src), rerr
			}
			page = append(page, rec)
		}

		if len(page) > 0 {
			if werr := s.process(page, verdicts, t, dst); werr != nil {
				return s.finish(res, t, src), werr
			}
			pages++
			log.Debug().Int("page", pages).Int("rows", len(page)).Int("total", t.Total()).Msg("clean: page done")
		}
		if eof {
			break
		}
	}

	// the output must be complete on disk before it is reported
	if cerr := closeDst(); cerr != nil {
		return s.finish(res, t, src), cerr
	}

	res = s.finish(res, t, src)
	log.Info().
		Int("total", res.Tally.Total).
		Int("kept", res.Tally.Kept).
		Int("rejected", res.Tally.Rejected).
		Int("malformed", res.Tally.Malformed).
		Dur("elapsed", res.Elapsed()).
		Msg("clean: done")

	if s.Cfg.Report != "" && s.Report != nil {
		if rerr := s.Report.Write(s.Cfg.Report, res); rerr != nil {
			return res, rerr
		}
		log.Info().Str("report", s.Cfg.Report).Msg("clean: report written")
	}
	return res, nil
}

// process validates a page, records the verdicts and writes accepted rows in order
func (s *Service) process(page [][]string, verdicts []pipeline.Verdict, t *tally.Tally, dst domain.SinkPort) error {
	s.validate(page, verdicts, t)
	if dst == nil {
		return nil
	}
	for i := range page {
		v := verdicts[i]
		if v.Outcome != pipeline.Accepted {
			continue
		}
		if err := dst.Write(v.Src, v.Tgt); err != nil {
			return err
		}
	}
	return nil
}

// validate fills verdicts[:len(page)] and records them in t. With more than one
// worker the page is cut into contiguous chunks, each with its own tally
func (s *Service) validate(page [][]string, verdicts []pipeline.Verdict, t *tally.Tally) {
	w := min(s.Cfg.Workers, len(page))
	if w <= 1 {
		for i, rec := range page {
			verdicts[i] = pipeline.Validate(rec)
			t.Record(verdicts[i])
		}
		return
	}

	size := (len(page) + w - 1) / w
	locals := make([]*tally.Tally, 0, w)
	var g errgroup.Group
	for lo := 0; lo < len(page); lo += size {
		lo := lo
		hi := min(lo+size, len(page))
		lt := tally.New()
		locals = append(locals, lt)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				verdicts[i] = pipeline.Validate(page[i])
				lt.Record(verdicts[i])
			}
			return nil
		})
	}
	_ = g.Wait() // chunks never fail
	for _, lt := range locals {
		t.Merge(lt)
	}
}

func (s *Service) finish(res domain.Result, t *tally.Tally, src domain.SourcePort) domain.Result {
	res.Finished = s.now().UTC()
	res.Tally = t.Snapshot()
	if src != nil {
		_, res.Bytes = src.Stats()
	}
	return res
}
