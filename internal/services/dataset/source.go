package dataset

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	perr "crimemap/internal/platform/errors"
	str "crimemap/internal/platform/strings"
)

// Source is one input the loader reads
// ID identifies the source for memoization; two sources with the same ID are
// assumed to hold the same bytes
type Source interface {
	ID() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a local file
type FileSource struct{ Path string }

// ID returns the absolute path when it can be resolved
func (s FileSource) ID() string {
	if abs, err := filepath.Abs(s.Path); err == nil {
		return "file:" + abs
	}
	return "file:" + s.Path
}

// Open opens the file
func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(s.Path)
}

// HTTPSource downloads a remote file with GET
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// DefaultHTTPTimeout bounds a remote source download when no client is set
const DefaultHTTPTimeout = 60 * time.Second

// ID returns the URL
func (s HTTPSource) ID() string { return s.URL }

// Open issues the request and returns the body for a 200 response
func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	c := s.Client
	if c == nil {
		c = &http.Client{Timeout: DefaultHTTPTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: unexpected status %s", s.URL, resp.Status)
	}
	return resp.Body, nil
}

// BytesSource serves an in-memory fixture
type BytesSource struct {
	Name string
	Data []byte
}

// ID returns the fixture name
func (s BytesSource) ID() string { return "mem:" + s.Name }

// Open returns a reader over the bytes
func (s BytesSource) Open(context.Context) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.Data)), nil
}

// Locate returns an HTTPSource for http(s) locations and a FileSource otherwise
func Locate(loc string) Source {
	if str.HasRemoteScheme(loc) {
		return HTTPSource{URL: loc}
	}
	return FileSource{Path: loc}
}

// Sources names the three inputs of a snapshot
type Sources struct {
	Historical Source
	Recent     Source
	Boundaries Source
}

// Key identifies the source triple for memoization
func (s Sources) Key() string {
	return s.Historical.ID() + "|" + s.Recent.ID() + "|" + s.Boundaries.ID()
}

func (s Sources) validate() error {
	if s.Historical == nil || s.Recent == nil || s.Boundaries == nil {
		return perr.InvalidArgf("historical, recent and boundary sources are required")
	}
	return nil
}

// IDs lists the source ids in load order
func (s Sources) IDs() []string {
	return []string{s.Historical.ID(), s.Recent.ID(), s.Boundaries.ID()}
}
