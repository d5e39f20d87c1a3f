package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "crimemap/internal/platform/net/http"
	"crimemap/internal/platform/testkit"
)

func TestDocumentListsDescribedOps(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	Describe(Op{Method: "POST", Path: "/dashboard/view", Tag: "Dashboard", Summary: "Full dashboard"})
	Describe(Op{Method: "GET", Path: "/dashboard/options", Tag: "Dashboard", Summary: "Filter options"})

	doc := Document(Info{Title: "crimemap", Version: "1.2.3", BasePath: "/api/v1"})
	paths := doc["paths"].(map[string]any)
	if len(paths) != 2 {
		t.Fatalf("paths = %v", paths)
	}
	view := paths["/dashboard/view"].(map[string]any)["post"].(map[string]any)
	if view["summary"] != "Full dashboard" || view["requestBody"] == nil {
		t.Fatalf("view op = %v", view)
	}
	if doc["info"].(map[string]any)["version"] != "1.2.3" {
		t.Fatalf("info = %v", doc["info"])
	}
	if srv := doc["servers"].([]map[string]any); srv[0]["url"] != "/api/v1" {
		t.Fatalf("servers = %v", srv)
	}
}

func TestMountServesDocAndRedirect(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	Describe(Op{Method: "GET", Path: "/meta/health", Summary: "Health"})

	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), true, Info{})

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rr.Code)
	}
	var doc map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json not json: %v", err)
	}
	testkit.MustContain(t, rr.Body.String(), `"/meta/health"`)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs", nil))
	if rr.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rr.Code)
	}
}

func TestMountDisabled(t *testing.T) {
	mux := chi.NewRouter()
	Mount(phttp.AdaptChi(mux), false, Info{})
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/docs/doc.json", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("disabled docs status = %d", rr.Code)
	}
}
