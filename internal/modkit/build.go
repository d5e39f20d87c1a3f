package modkit

import (
	"net/http"

	"crimemap/internal/modkit/httpkit"
)

// Built is the resolved module configuration
type Built struct {
	Name      string
	Prefix    string
	Mw        []func(http.Handler) http.Handler
	SwaggerOn bool

	// router hooks, never nil after Build
	Subrouter func(httpkit.Router) httpkit.Router
	Register  func(httpkit.Router)
}

// Build applies options in order and fills the router hooks with no-ops
func Build(opts ...Option) Built {
	var b Built
	for _, o := range opts {
		o(&b)
	}
	if b.Subrouter == nil {
		b.Subrouter = func(r httpkit.Router) httpkit.Router { return r }
	}
	if b.Register == nil {
		b.Register = func(httpkit.Router) {}
	}
	return b
}

// BuildModule is Build with a module's own name and prefix applied first,
// so caller options can still override them
func BuildModule(name, prefix string, opts ...Option) Built {
	return Build(append([]Option{WithName(name), WithPrefix(prefix)}, opts...)...)
}

// Mount mounts a module subtree: prefix, then middlewares, then the subrouter hook,
// then the module's own routes followed by any extra registrations
func (b Built) Mount(r httpkit.Router, own func(httpkit.Router)) {
	httpkit.MountUnder(r, b.Prefix, b.Mw, func(rr httpkit.Router) {
		rr = b.Subrouter(rr)
		if own != nil {
			own(rr)
		}
		b.Register(rr)
	})
}
