package net_test

import (
	"context"
	"testing"

	pnet "crimemap/internal/platform/net"
)

func TestWithRequestAndRequestID(t *testing.T) {
	base := context.Background()

	ctx := pnet.WithRequest(base, "req-123")
	if got := pnet.RequestID(ctx); got != "req-123" {
		t.Fatalf("RequestID got %q want %q", got, "req-123")
	}

	// empty id leaves ctx alone
	if got := pnet.WithRequest(base, ""); got != base {
		t.Fatalf("expected ctx to be unchanged when id empty")
	}
	if got := pnet.RequestID(base); got != "" {
		t.Fatalf("RequestID got %q want empty", got)
	}
}
