package module

import (
	"path/filepath"
	"time"

	"bitextclean/internal/adapters/tsv"
	"bitextclean/internal/platform/config"
	"bitextclean/internal/platform/validate"
)

// Options holds configuration options for the clean module
type Options struct {
	Input        string        `env:"CLEAN_INPUT" validate:"required"`
	Output       string        `env:"CLEAN_OUTPUT" validate:"required,nefield=Input"`
	Report       string        `env:"CLEAN_REPORT" validate:"report_ext"`
	Workers      int           `env:"CLEAN_WORKERS" validate:"min=1,max=256"`
	PageSize     int           `env:"CLEAN_PAGE_SIZE" validate:"min=1"`
	MaxFieldSize int           `env:"CLEAN_MAX_FIELD_SIZE" validate:"min=1"`
	DryRun       bool          `env:"CLEAN_DRY_RUN"`
	Timeout      time.Duration `env:"CLEAN_TIMEOUT" validate:"min=0"`
}

// FromConfig reads the clean options from config with CLEAN_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CLEAN_")
	return Options{
		Input:        c.MayString("INPUT", "original_dataset.tsv"),
		Output:       c.MayString("OUTPUT", "cleaned_dataset.tsv"),
		Report:       c.MayString("REPORT", ""),
		Workers:      c.MayInt("WORKERS", 1),
		PageSize:     c.MayInt("PAGE_SIZE", 5000),
		MaxFieldSize: c.MayInt("MAX_FIELD_SIZE", tsv.DefaultMaxFieldSize),
		DryRun:       c.MayBool("DRY_RUN", false),
		Timeout:      c.MayDuration("TIMEOUT", 0),
	}
}

// Validate checks the options; the same file cannot be read and truncated at once
func (o Options) Validate() error {
	o.Input, o.Output = cleanPath(o.Input), cleanPath(o.Output)
	return validate.Struct(o)
}

// cleanPath leaves empty paths empty so required still fires; Clean("") is "."
func cleanPath(p string) string {
	if p == "" {
		return ""
	}
	return filepath.Clean(p)
}
