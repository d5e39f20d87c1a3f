package httpkit

import (
	"net/http"

	phttp "crimemap/internal/platform/net/http"
)

// recRouter satisfies the platform Router seam and records what was mounted
type recRouter struct {
	prefixes []string
	mwCount  int
	routes   []rec
}

type rec struct {
	verb string
	path string
	h    phttp.Handler
}

func (f *recRouter) Get(p string, h phttp.Handler)  { f.routes = append(f.routes, rec{"GET", p, h}) }
func (f *recRouter) Post(p string, h phttp.Handler) { f.routes = append(f.routes, rec{"POST", p, h}) }
func (f *recRouter) Head(p string, h phttp.Handler) { f.routes = append(f.routes, rec{"HEAD", p, h}) }
func (f *recRouter) Handle(p string, h http.Handler) {
	f.routes = append(f.routes, rec{"HANDLE", p, h.ServeHTTP})
}
func (f *recRouter) Use(mw ...func(http.Handler) http.Handler) { f.mwCount += len(mw) }
func (f *recRouter) Group(fn func(Router))                     { fn(f) }
func (f *recRouter) Route(p string, fn func(Router)) {
	f.prefixes = append(f.prefixes, p)
	fn(f)
}
func (f *recRouter) Mux() http.Handler { return http.NewServeMux() }

func (f *recRouter) find(verb, path string) (phttp.Handler, bool) {
	for _, r := range f.routes {
		if r.verb == verb && r.path == path {
			return r.h, true
		}
	}
	return nil, false
}

var _ Router = (*recRouter)(nil)
