package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"crimemap/internal/core/crimes"
	"crimemap/internal/core/frame"
	"crimemap/internal/core/geo"
	"crimemap/internal/modkit/httpkit"
	perr "crimemap/internal/platform/errors"
	phttp "crimemap/internal/platform/net/http"
	"crimemap/internal/services/dataset"
)

func static(t *testing.T, header string) dataset.Provider {
	t.Helper()
	csv := header + "\nA,X,2001,1,0,0,0,0,0,1,0,0" + strings.Repeat(",10", strings.Count(header, "TOTAL")) + "\n"
	h, err := frame.ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatal(err)
	}
	b, _ := geo.Decode(strings.NewReader(`{"type":"FeatureCollection","features":[]}`))
	st, err := dataset.NewStatic(crimes.DefaultSchema(), h, h, b)
	if err != nil {
		t.Fatal(err)
	}
	return st
}

const cols = "STATE/UT,DISTRICT,YEAR,MURDER,RAPE,KIDNAPPING & ABDUCTION,DACOITY,ROBBERY,BURGLARY,THEFT,CHEATING,COUNTERFIETING"

type failing struct{}

func (failing) Snapshot(context.Context) (*dataset.Snapshot, error) {
	return nil, perr.SourceUnavailable(errors.New("gone"), "file:/data/hist.csv")
}

func get(t *testing.T, d Deps, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, path, nil))
	if out != nil {
		env := struct {
			Data any `json:"data"`
		}{Data: out}
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("GET %s: %v body=%s", path, err, rr.Body.String())
		}
	}
	return rr
}

func TestHealthAndService(t *testing.T) {
	d := Deps{ServiceName: "crimemap-api", StartedAt: time.Now().Add(-time.Minute)}
	var h HealthResponse
	if rr := get(t, d, "/health", &h); rr.Code != stdhttp.StatusOK || !h.OK || h.Service != "crimemap-api" {
		t.Fatalf("health = %d %+v", rr.Code, h)
	}
	var s ServiceResponse
	get(t, d, "/service", &s)
	if s.Uptime < 59 {
		t.Fatalf("uptime = %d", s.Uptime)
	}
	var v map[string]any
	get(t, d, "/version", &v)
	if v["service"] != "crimemap-api" {
		t.Fatalf("version = %v", v)
	}
}

func TestReady(t *testing.T) {
	cases := []struct {
		name    string
		data    dataset.Provider
		overall string
		check   string
	}{
		{"no dataset", nil, "degraded", "skipped"},
		{"loaded", static(t, cols+",TOTAL IPC CRIMES"), "ok", "ok"},
		{"missing total", static(t, cols), "degraded", "degraded"},
		{"unavailable", failing{}, "fail", "fail"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r ReadyResponse
			rr := get(t, Deps{Data: tc.data}, "/ready", &r)
			if rr.Code != stdhttp.StatusOK || r.Status != tc.overall || r.Checks[0].Status != tc.check {
				t.Fatalf("ready = %d %+v", rr.Code, r)
			}
		})
	}
}

func TestDataset(t *testing.T) {
	var ds DatasetResponse
	rr := get(t, Deps{Data: static(t, cols+",TOTAL IPC CRIMES")}, "/dataset", &ds)
	if rr.Code != stdhttp.StatusOK || rr.Header().Get(httpkit.HeaderSnapshotID) != ds.SnapshotID {
		t.Fatalf("dataset = %d %+v", rr.Code, ds)
	}
	if ds.HistoricalRows != 1 || ds.Districts != 1 || !ds.HasTotal || ds.Collisions == nil {
		t.Fatalf("dataset = %+v", ds)
	}

	if rr := get(t, Deps{Data: failing{}}, "/dataset", nil); rr.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("unavailable status = %d", rr.Code)
	}
	if rr := get(t, Deps{}, "/dataset", nil); rr.Code != stdhttp.StatusServiceUnavailable {
		t.Fatalf("unconfigured status = %d", rr.Code)
	}
}
