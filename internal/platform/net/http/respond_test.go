package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "crimemap/internal/platform/errors"
	pnet "crimemap/internal/platform/net"
	phttp "crimemap/internal/platform/net/http"
)

// helper to build a request with a request_id in context
func reqWithReqID(method, path, rid string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	return req.WithContext(pnet.WithRequest(req.Context(), rid))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v body=%q", err, rec.Body.String())
	}
	return env
}

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.JSON(rec, http.StatusTeapot, map[string]any{"k": "v"})
	if rec.Code != http.StatusTeapot {
		t.Fatalf("JSON status: expected 418, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content-type = %q", ct)
	}
}

func TestRespondOK(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-1"), map[string]string{"a": "b"})
	if rec.Code != http.StatusOK {
		t.Fatalf("RespondOK code: %d", rec.Code)
	}
	env := decode(t, rec)
	if env.StatusCode != 200 || env.RequestID != "rid-1" || env.Data == nil {
		t.Fatalf("bad envelope: %+v", env)
	}
}

func TestRespondErrorCarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	err := perr.MissingColumnf("TOTAL IPC CRIMES", "column %q not found", "TOTAL IPC CRIMES")
	phttp.RespondError(rec, reqWithReqID("GET", "/err", "rid-3"), err)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Code != perr.ErrorCodeMissingColumn || env.Field != "TOTAL IPC CRIMES" || env.RequestID != "rid-3" {
		t.Fatalf("bad error envelope: %+v", env)
	}
}

func TestHandleOKAndNoContent(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK(map[string]any{"x": 1})
	})
	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/ok", "rid-4"))
	if rec.Code != http.StatusOK {
		t.Fatalf("handle OK code: %d", rec.Code)
	}

	hn := phttp.Handle(func(r *http.Request) phttp.Response { return phttp.NoContent() })
	recN := httptest.NewRecorder()
	hn(recN, reqWithReqID("HEAD", "/no", "rid-6"))
	if recN.Code != http.StatusNoContent || recN.Body.Len() != 0 {
		t.Fatalf("handle NoContent code=%d body=%q", recN.Code, recN.Body.String())
	}
}

func TestHandleErrorsAndHeaders(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"insufficient data", perr.InsufficientDataf("need two years"), http.StatusUnprocessableEntity},
		{"source unavailable", perr.SourceUnavailable(errors.New("eof"), "recent"), http.StatusServiceUnavailable},
		{"validation", perr.New(perr.ErrorCodeValidation, "bad"), http.StatusBadRequest},
		{"foreign", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := phttp.Handle(func(r *http.Request) phttp.Response { return phttp.Error(tc.err) })
			rec := httptest.NewRecorder()
			h(rec, reqWithReqID("GET", "/err", "rid-7"))
			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
			if env := decode(t, rec); env.StatusCode != tc.want || env.Error == "" {
				t.Fatalf("bad envelope: %+v", env)
			}
		})
	}

	hHdr := phttp.Handle(func(r *http.Request) phttp.Response {
		return phttp.OK("hello").WithHeader("X-Snapshot-ID", "snap-1")
	})
	rec := httptest.NewRecorder()
	hHdr(rec, reqWithReqID("GET", "/hdr", "rid-8"))
	if got := rec.Header().Get("X-Snapshot-ID"); got != "snap-1" {
		t.Fatalf("expected header, got %q", got)
	}
	if env := decode(t, rec); env.Data != "hello" {
		t.Fatalf("data = %#v", env.Data)
	}
}

func TestWithHeaderCopies(t *testing.T) {
	base := phttp.OK(nil).WithHeader("X-A", "1")
	_ = base.WithHeader("X-B", "2")
	if base.Header.Get("X-B") != "" {
		t.Fatalf("WithHeader mutated the receiver's header map")
	}
}
