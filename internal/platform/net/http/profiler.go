package http

import (
	stdhttp "net/http"

	mw "github.com/go-chi/chi/v5/middleware"

	str "crimemap/internal/platform/strings"
)

// MountProfiler serves the pprof index, profiles and expvar under prefix
// The bare prefix redirects to prefix/pprof/; nothing is registered when disabled
func MountProfiler(r Router, prefix string, enabled bool) {
	if !enabled {
		return
	}
	prefix = str.MustPrefix(prefix)
	index := prefix + "/pprof/"
	profiles := stdhttp.StripPrefix(prefix, mw.Profiler())

	r.Get(prefix, func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		stdhttp.Redirect(w, req, index, stdhttp.StatusFound)
	})
	r.Handle(prefix+"/*", profiles)
}
