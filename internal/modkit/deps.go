// Package modkit provides module wiring and core deps
package modkit

import (
	"crimemap/internal/platform/config"
	"crimemap/internal/platform/logger"
	"crimemap/internal/services/dataset"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  *logger.Logger
	Cfg  config.Conf
	Data dataset.Provider
}

// Logger returns Log, or the named root logger when Log is unset
func (d Deps) Logger(component string) *logger.Logger {
	if d.Log != nil {
		ll := d.Log.With().Str("component", component).Logger()
		return &ll
	}
	return logger.Named(component)
}

// MustData returns the dataset provider and panics when modules are wired without one
func (d Deps) MustData(module string) dataset.Provider {
	if d.Data == nil {
		panic(module + " module requires a dataset provider")
	}
	return d.Data
}
