package module

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	modkit "crimemap/internal/modkit"
	"crimemap/internal/modkit/swaggerkit"
	phttp "crimemap/internal/platform/net/http"
	"crimemap/internal/platform/testkit"
)

func TestMetaMountsUnderPrefix(t *testing.T) {
	swaggerkit.Reset()
	t.Cleanup(swaggerkit.Reset)

	m := New(modkit.Deps{}, modkit.WithSwagger(true))
	if m.Name() != "meta" || m.Prefix() != "/meta" || m.Ports() != nil {
		t.Fatalf("unexpected module identity %q %q", m.Name(), m.Prefix())
	}
	mux := chi.NewRouter()
	m.MountRoutes(phttp.AdaptChi(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/meta/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	testkit.MustContain(t, rr.Body.String(), ServiceName)

	paths := swaggerkit.Document(swaggerkit.Info{})["paths"].(map[string]any)
	if _, ok := paths["/meta/ready"]; !ok {
		t.Fatalf("ready not described: %v", paths)
	}
}
