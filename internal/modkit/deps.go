// Package modkit provides module wiring and core deps
package modkit

import (
	"bitextclean/internal/platform/config"
	"bitextclean/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
}

// Logger returns Log, falling back to a component logger named after the module
func (d Deps) Logger(name string) *logger.Logger {
	if d.Log != nil {
		return d.Log
	}
	return logger.Named(name)
}
