package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"crimemap/internal/platform/config"
	"crimemap/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	// Timeout cancels handler contexts, 0 means 30s
	Timeout time.Duration
	// Slow marks access log lines as warn, 0 disables
	Slow time.Duration
	// Origins for CORS, empty allows any
	Origins []string
}

// StackFromConfig reads REQUEST_TIMEOUT, SLOW_REQUEST and CORS_ORIGINS
func StackFromConfig(c config.Conf) StackOptions {
	return StackOptions{
		Timeout: c.MayDuration("REQUEST_TIMEOUT", 30*time.Second),
		Slow:    c.MayDuration("SLOW_REQUEST", 500*time.Millisecond),
		Origins: c.MayCSV("CORS_ORIGINS", nil),
	}
}

// CommonStack returns the baseline middleware slice for the versioned API
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return []func(http.Handler) http.Handler{
		// tracing / correlation
		middleware.RequestID(),
		middleware.RealIP(),

		// safety
		middleware.RecoverJSON,

		// cache / freshness
		middleware.NoCache(),

		// observability
		middleware.AccessLogZerolog(middleware.AccessLogOptions{Slow: o.Slow}),

		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.Origins}),
		middleware.Compress(flate.BestSpeed),
		middleware.Heartbeat("/health"),
		middleware.StripSlashes(),
		middleware.Timeout(timeout),
	}
}
