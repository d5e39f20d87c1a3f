// Package module wires the dashboard into the API using modkit
package module

import (
	modkit "crimemap/internal/modkit"
	"crimemap/internal/modkit/httpkit"
	str "crimemap/internal/platform/strings"

	dashhttp "crimemap/internal/services/api/dashboard/http"
	dashsvc "crimemap/internal/services/api/dashboard/service"
)

// Module implements the dashboard module
type Module struct {
	b     modkit.Built
	svc   *dashsvc.Svc
	ports Ports
}

// New constructs the dashboard module over deps.Data
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.BuildModule("dashboard", "/dashboard", opts...)

	svc := dashsvc.New(
		deps.MustData("dashboard"),
		dashsvc.WithLogger(deps.Logger("dashboard")),
		dashsvc.WithTop(deps.Cfg.MayInt("TOP_DISTRICTS", 0), deps.Cfg.MayInt("TOP_STATES", 0)),
	)
	return &Module{b: b, svc: svc, ports: Ports{Service: svc}}
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.b.SwaggerOn {
		dashhttp.Describe(m.Prefix())
	}
	m.b.Mount(r, func(rr httpkit.Router) {
		dashhttp.Register(rr, m.svc)
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }
