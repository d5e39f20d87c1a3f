package modkit

import (
	"net/http"

	"crimemap/internal/modkit/httpkit"
)

// Option adjusts a module's Built before it is mounted
type Option func(*Built)

// WithName sets the module name, used as the logger component
func WithName(name string) Option {
	return func(b *Built) { b.Name = name }
}

// WithPrefix sets the path the module mounts under, relative to /api/v1
func WithPrefix(prefix string) Option {
	return func(b *Built) { b.Prefix = prefix }
}

// WithMiddlewares appends per module middleware; repeated calls accumulate in order
func WithMiddlewares(mw ...func(http.Handler) http.Handler) Option {
	return func(b *Built) { b.Mw = append(b.Mw, mw...) }
}

// WithSwagger makes the module describe its routes in the API document
func WithSwagger(enabled bool) Option {
	return func(b *Built) { b.SwaggerOn = enabled }
}

// WithSubrouter wraps the module router before routes are registered
func WithSubrouter(fn func(httpkit.Router) httpkit.Router) Option {
	return func(b *Built) { b.Subrouter = fn }
}

// WithRegister adds endpoints after the module's own routes
func WithRegister(fn func(httpkit.Router)) Option {
	return func(b *Built) { b.Register = fn }
}
