package httpkit

import (
	"net/http"
	"strings"

	str "crimemap/internal/platform/strings"
)

// Middlewares is an ordered middleware chain applied to a scope
type Middlewares = []func(http.Handler) http.Handler

// MountUnder opens a subrouter at prefix, installs mw on it and hands it to mount
// The prefix is normalized to a single leading slash; "/" panics
func MountUnder(r Router, prefix string, mw Middlewares, mount func(Router)) {
	r.Route(str.MustPrefix(prefix), func(sub Router) {
		if len(mw) > 0 {
			sub.Use(mw...)
		}
		mount(sub)
	})
}

// MountAPI scopes mount under /api/{version}
//
//	httpkit.MountAPI(r, "v1", httpkit.CommonStack(opts), func(api httpkit.Router) {
//	  dashboard.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw Middlewares, mount func(Router)) {
	ver := strings.Trim(strings.TrimSpace(version), "/")
	if ver == "" {
		panic("httpkit: api version is required")
	}
	MountUnder(r, "/api/"+ver, mw, mount)
}

// MountAPIV1 is MountAPI for v1, the only version this service exposes
func MountAPIV1(r Router, mw Middlewares, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
