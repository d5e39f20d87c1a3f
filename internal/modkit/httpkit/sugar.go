package httpkit

import (
	"net/http"
)

// GetJSON mounts a no-body handler under GET and HEAD
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
	r.Head(path, Call(h))
}

// PostJSON mounts a JSON body handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	r.Post(path, JSON(h))
}

// Get registers a Response-returning handler under GET
func Get(r Router, path string, h func(*http.Request) Response) {
	r.Get(path, Handle(h))
}
