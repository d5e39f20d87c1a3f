package modkit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"crimemap/internal/platform/testkit"
	"crimemap/internal/services/dataset"
)

type nopProvider struct{}

func (nopProvider) Snapshot(context.Context) (*dataset.Snapshot, error) { return &dataset.Snapshot{ID: "s"}, nil }

func TestDeps_LoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	d := Deps{Log: &base}
	l := d.Logger("dashboard")
	l.Info().Msg("hi")
	if !strings.Contains(buf.String(), `"component":"dashboard"`) {
		t.Fatalf("component missing: %s", buf.String())
	}

	if (Deps{}).Logger("meta") == nil {
		t.Fatalf("zero Deps should fall back to the root logger")
	}
}

func TestDeps_MustData(t *testing.T) {
	d := Deps{Data: nopProvider{}}
	if d.MustData("dashboard") == nil {
		t.Fatalf("provider lost")
	}
	testkit.MustPanic(t, func() { Deps{}.MustData("dashboard") })
}
