package swaggerkit

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Op describes one documented operation
type Op struct {
	Method  string
	Path    string
	Tag     string
	Summary string
}

var (
	mu  sync.RWMutex
	ops = map[string]Op{}
)

// Describe records an operation for the served document
// modules call this for each route when swagger is enabled for them
func Describe(op Op) {
	op.Method = strings.ToLower(op.Method)
	mu.Lock()
	ops[op.Method+" "+op.Path] = op
	mu.Unlock()
}

// Reset clears described operations, for tests
func Reset() {
	mu.Lock()
	ops = map[string]Op{}
	mu.Unlock()
}

// Document renders the OpenAPI 3 document for the described operations
func Document(info Info) map[string]any {
	mu.RLock()
	list := make([]Op, 0, len(ops))
	for _, op := range ops {
		list = append(list, op)
	}
	mu.RUnlock()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Path != list[j].Path {
			return list[i].Path < list[j].Path
		}
		return list[i].Method < list[j].Method
	})

	paths := map[string]any{}
	for _, op := range list {
		item, _ := paths[op.Path].(map[string]any)
		if item == nil {
			item = map[string]any{}
			paths[op.Path] = item
		}
		o := map[string]any{
			"summary":   op.Summary,
			"responses": map[string]any{"200": map[string]any{"description": "ok"}},
		}
		if op.Tag != "" {
			o["tags"] = []string{op.Tag}
		}
		if op.Method == "post" {
			o["requestBody"] = map[string]any{
				"content": map[string]any{"application/json": map[string]any{"schema": map[string]any{"type": "object"}}},
			}
		}
		item[op.Method] = o
	}

	title, version := info.Title, info.Version
	if title == "" {
		title = "API"
	}
	if version == "" {
		version = "0.0.0"
	}
	doc := map[string]any{
		"openapi": "3.0.3",
		"info":    map[string]any{"title": title, "version": version},
		"paths":   paths,
	}
	if info.BasePath != "" {
		doc["servers"] = []map[string]any{{"url": info.BasePath}}
	}
	return doc
}

func serveDocJSON(info Info) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(Document(info))
	}
}
