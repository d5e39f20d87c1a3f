// Package module holds the Module contract on its own so a module's ports
// package can import it without pulling in modkit
package module

import (
	phttp "crimemap/internal/platform/net/http"
)

// Router is the platform router seam modules mount on
type Router = phttp.Router

// Module is one mountable API area, such as meta or dashboard
//
// MountRoutes registers under Prefix; Ports returns the typed surface other
// modules and tests reach through PortsOf, or nil when there is none
type Module interface {
	MountRoutes(r Router)
	Ports() any
	Name() string
	Prefix() string
}
