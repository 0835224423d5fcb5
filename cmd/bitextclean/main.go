package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"strconv"
	"syscall"

	"bitextclean/internal/core/version"
	"bitextclean/internal/modkit"
	"bitextclean/internal/platform/config"
	perr "bitextclean/internal/platform/errors"
	"bitextclean/internal/platform/logger"
	"bitextclean/internal/services/clean/domain"
	cleanmod "bitextclean/internal/services/clean/module"
	"bitextclean/internal/services/clean/report"

	"github.com/google/uuid"
)

// newModule is a seam for tests
var newModule = cleanmod.New

func setEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(code)
}

// run parses flags, surfaces them as CLEAN_* env for the module and cleans once.
// It returns the process exit status; a panic is logged with its stack and exits as a failure
func run(ctx context.Context, args []string, stdout io.Writer) (code int) {
	defer func() {
		if v := recover(); v != nil {
			err := perr.WithOp(perr.PanicErrf("panic recovered: %v", v), "run")
			logger.C(ctx).Error().
				Str("code", perr.CodeOf(err).String()).
				Interface("panic", v).
				Msgf("panic recovered\n%s", debug.Stack())
			code = perr.ExitCode(err)
		}
	}()

	fs := flag.NewFlagSet("bitextclean", flag.ContinueOnError)
	var (
		fIn      = fs.String("in", "", "input TSV (overrides CLEAN_INPUT)")
		fOut     = fs.String("out", "", "output TSV (overrides CLEAN_OUTPUT)")
		fReport  = fs.String("report", "", "optional .json/.yaml run report (overrides CLEAN_REPORT)")
		fWorkers = fs.Int("workers", 0, "parallel validators (overrides CLEAN_WORKERS)")
		fDryRun  = fs.Bool("dry-run", false, "tally only, do not write the output")
		fEnvFile = fs.String("env", ".env", "dotenv file to load before reading CLEAN_* and LOG_*")
		fVersion = fs.Bool("version", false, "print build info and exit")
	)
	if err := fs.Parse(args); err != nil {
		return perr.ExitUsage
	}
	if *fVersion {
		_, _ = fmt.Fprintln(stdout, version.Info())
		return perr.ExitOK
	}

	// the env file must land before the logger reads LOG_*
	loaded, envErr := config.LoadDotEnv(*fEnvFile)

	setEnv("CLEAN_INPUT", *fIn)
	setEnv("CLEAN_OUTPUT", *fOut)
	setEnv("CLEAN_REPORT", *fReport)
	if *fWorkers > 0 {
		setEnv("CLEAN_WORKERS", strconv.Itoa(*fWorkers))
	}
	if *fDryRun {
		setEnv("CLEAN_DRY_RUN", "true")
	}

	l := logger.Get()
	if envErr != nil {
		err := perr.WithField(perr.Wrap(envErr, perr.ErrorCodeInvalidArgument, "load env file"), *fEnvFile)
		logFailure(l, err, "invalid env file")
		return perr.ExitCode(err)
	}
	if loaded {
		l.Debug().Str("path", *fEnvFile).Msg("env file loaded")
	}
	runID := uuid.NewString()

	m, err := newModule(modkit.Deps{Cfg: config.New(), Log: l})
	if err != nil {
		logFailure(l, err, "invalid configuration")
		return perr.ExitCode(err)
	}
	opts := m.Options()
	ctx = logger.WithRun(ctx, runID, opts.Input)
	logger.C(ctx).Info().Str("build", version.Info().String()).Msg("bitextclean starting")

	runner := modkit.MustPortsOf[domain.RunnerPort](m)
	res, err := runner.Run(ctx)
	if err != nil {
		logFailure(logger.C(ctx), err, "clean failed")
		return perr.ExitCode(err)
	}

	if err := report.Summary(stdout, res); err != nil {
		logFailure(logger.C(ctx), err, "write summary")
		return perr.ExitIOErr
	}
	return perr.ExitOK
}

func logFailure(l *logger.Logger, err error, msg string) {
	ev := l.Error().Err(err).Str("code", perr.CodeOf(err).String())
	if e, ok := perr.As(err); ok {
		if e.Field() != "" {
			ev = ev.Str("field", e.Field())
		}
		if e.Op() != "" {
			ev = ev.Str("op", e.Op())
		}
	}
	ev.Msg(msg)
}
