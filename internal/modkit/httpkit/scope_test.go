package httpkit

import (
	"net/http"
	"testing"

	"crimemap/internal/platform/testkit"
)

func TestMountUnder(t *testing.T) {
	r := &recRouter{}
	mw := func(next http.Handler) http.Handler { return next }
	hits := 0
	MountUnder(r, "dashboard/", Middlewares{mw, mw}, func(Router) { hits++ })
	if len(r.prefixes) != 1 || r.prefixes[0] != "/dashboard" || r.mwCount != 2 || hits != 1 {
		t.Fatalf("prefixes=%v mw=%d hits=%d", r.prefixes, r.mwCount, hits)
	}

	r2 := &recRouter{}
	MountUnder(r2, "/meta", nil, func(Router) {})
	if r2.mwCount != 0 {
		t.Fatalf("Use called with empty middleware")
	}
	testkit.MustPanic(t, func() { MountUnder(&recRouter{}, " / ", nil, func(Router) {}) })
}

func TestMountAPI(t *testing.T) {
	cases := map[string]string{"v1": "/api/v1", "/v2/": "/api/v2", " v3 ": "/api/v3"}
	for in, want := range cases {
		r := &recRouter{}
		MountAPI(r, in, nil, func(Router) {})
		if r.prefixes[0] != want {
			t.Fatalf("MountAPI(%q) prefix = %q want %q", in, r.prefixes[0], want)
		}
	}
	r := &recRouter{}
	MountAPIV1(r, nil, func(Router) {})
	if r.prefixes[0] != "/api/v1" {
		t.Fatalf("MountAPIV1 prefix = %q", r.prefixes[0])
	}
	testkit.MustPanic(t, func() { MountAPI(&recRouter{}, "/", nil, func(Router) {}) })
}
