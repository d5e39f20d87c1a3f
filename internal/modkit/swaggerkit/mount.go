// Package swaggerkit mounts Swagger UI over an OpenAPI document that modules
// describe their routes into
package swaggerkit

import (
	"net/http"

	phttp "crimemap/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Info titles the served document
type Info struct {
	Title   string
	Version string
	// BasePath is the server url that described paths are relative to
	BasePath string
}

// Mount serves the Swagger UI and the OpenAPI document when enabled
func Mount(r phttp.Router, enabled bool, info Info) {
	if !enabled {
		return
	}
	r.Get("/api/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/docs/", http.StatusPermanentRedirect)
	})
	r.Get("/api/docs/doc.json", serveDocJSON(info))
	r.Handle("/api/docs/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL("/api/docs/doc.json"),
	))
}
