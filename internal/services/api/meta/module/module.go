// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	modkit "crimemap/internal/modkit"
	"crimemap/internal/modkit/httpkit"
	"crimemap/internal/modkit/swaggerkit"
	str "crimemap/internal/platform/strings"

	metahttp "crimemap/internal/services/api/meta/http"
)

// ServiceName is reported by health, version and service
const ServiceName = "crimemap-api"

// Module implements the modkit.Module interface
type Module struct {
	b         modkit.Built
	deps      modkit.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	return &Module{
		b:         modkit.BuildModule("meta", "/meta", opts...),
		deps:      deps,
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	if m.b.SwaggerOn {
		for _, p := range []string{"/health", "/ready", "/version", "/service", "/dataset"} {
			swaggerkit.Describe(swaggerkit.Op{Method: "GET", Path: m.Prefix() + p, Tag: "Meta", Summary: "meta " + p[1:]})
		}
	}
	m.b.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, metahttp.Deps{
			ServiceName:  ServiceName,
			StartedAt:    m.startedAt,
			Data:         m.deps.Data,
			ReadyTimeout: m.deps.Cfg.MayDuration("READY_TIMEOUT", 2*time.Second),
		})
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.b.Name, "meta") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
