package modkit

import (
	"crimemap/internal/modkit/module"
)

// Module is the surface every API module implements
// it lives in modkit/module so modules can export ports without import cycles
type Module = module.Module

// Builder constructs a Module from shared deps and options
// modules expose New(deps Deps, opts ...Option) Module in this shape
type Builder func(Deps, ...Option) Module

// MountAll mounts every module on r in order and returns their names
func MountAll(r module.Router, mods ...Module) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		m.MountRoutes(r)
		names = append(names, m.Name())
	}
	return names
}
