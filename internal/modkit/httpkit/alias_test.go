package httpkit

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "crimemap/internal/platform/errors"
)

// run executes a Handler and returns status code, headers and body
func run(h Handler, r *http.Request) (int, http.Header, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()
	b, _ := io.ReadAll(res.Body)
	return rec.Code, rec.Header(), string(b)
}

type selection struct {
	State string `json:"state" validate:"omitempty,min=2"`
}

func TestJSON_BindsAndWraps(t *testing.T) {
	h := JSON(func(_ *http.Request, in selection) (any, error) {
		return map[string]string{"state": in.State}, nil
	})
	req := httptest.NewRequest(http.MethodPost, "/v", bytes.NewBufferString(`{"state":"Goa"}`))
	req.Header.Set("Content-Type", "application/json")
	code, _, body := run(h, req)
	if code != http.StatusOK || !strings.Contains(body, `"state":"Goa"`) {
		t.Fatalf("code=%d body=%s", code, body)
	}
}

func TestJSON_ValidationError(t *testing.T) {
	h := JSON(func(_ *http.Request, _ selection) (any, error) {
		t.Fatal("handler should not run")
		return nil, nil
	})
	req := httptest.NewRequest(http.MethodPost, "/v", bytes.NewBufferString(`{"state":"G"}`))
	req.Header.Set("Content-Type", "application/json")
	code, _, body := run(h, req)
	if code != http.StatusBadRequest || !strings.Contains(body, `"field":"state"`) {
		t.Fatalf("code=%d body=%s", code, body)
	}
}

func TestCall_ErrorMapping(t *testing.T) {
	h := Call(func(*http.Request) (any, error) {
		return nil, perr.SourceUnavailable(errors.New("eof"), "mem:bounds")
	})
	code, _, body := run(h, httptest.NewRequest(http.MethodGet, "/o", nil))
	if code != http.StatusServiceUnavailable || !strings.Contains(body, "data source unavailable") {
		t.Fatalf("code=%d body=%s", code, body)
	}
}

func TestSnapshot_SetsHeader(t *testing.T) {
	h := Call(func(*http.Request) (any, error) { return Snapshot("snap-9", []int{1}), nil })
	code, hdr, body := run(h, httptest.NewRequest(http.MethodGet, "/o", nil))
	if code != http.StatusOK || hdr.Get(HeaderSnapshotID) != "snap-9" || !strings.Contains(body, `"data":[1]`) {
		t.Fatalf("code=%d hdr=%v body=%s", code, hdr, body)
	}
	if Snapshot("", 1).Header != nil {
		t.Fatalf("empty id should not add a header")
	}
}

func TestHandleAndConstructors(t *testing.T) {
	h := Handle(func(*http.Request) Response { return NoContent() })
	if code, _, _ := run(h, httptest.NewRequest(http.MethodGet, "/", nil)); code != http.StatusNoContent {
		t.Fatalf("NoContent code = %d", code)
	}
	if OK(1).Status != http.StatusOK {
		t.Fatalf("OK status wrong")
	}
	if Error(errors.New("x")).Body == nil {
		t.Fatalf("Error body empty")
	}
}
