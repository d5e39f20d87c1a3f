package testkit

import (
	"os"
	"testing"
)

func TestMustPanic(t *testing.T) {
	t.Parallel()

	MustPanic(t, func() {
		panic("boom")
	})
}

func TestMustNotPanic(t *testing.T) {
	t.Parallel()

	MustNotPanic(t, func() {
		// no panic
	})
}

func TestMustContain(t *testing.T) {
	t.Parallel()

	haystack := "alpha beta gamma"
	MustContain(t, haystack, "beta")
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	p := WriteFile(t, "fixture.csv", "STATE/UT,DISTRICT\n")
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "STATE/UT,DISTRICT\n" {
		t.Fatalf("content = %q", b)
	}
}

var loadedFrom = "data/india_district.geojson"

func TestSwapRestores(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &loadedFrom, "testdata/bounds.geojson")
		if loadedFrom != "testdata/bounds.geojson" {
			t.Fatalf("swap not applied: %q", loadedFrom)
		}
	})
	if loadedFrom != "data/india_district.geojson" {
		t.Fatalf("swap not restored: %q", loadedFrom)
	}
}
