package core_test

import (
	"testing"

	"github.com/katalvlaran/crossec/core"
)

// TestPolygonNames covers the cosmetic '^' sub-body convention.
func TestPolygonNames(t *testing.T) {
	p := core.Polygon{Name: "chalk^upper"}
	if got := p.Base(); got != "chalk" {
		t.Errorf("Base() = %q; want %q", got, "chalk")
	}
	if got := p.DisplayName(); got != "chalk upper" {
		t.Errorf("DisplayName() = %q; want %q", got, "chalk upper")
	}

	plain := core.Polygon{Name: "basement"}
	if plain.Base() != "basement" || plain.DisplayName() != "basement" {
		t.Errorf("plain name must pass through unchanged, got %q / %q",
			plain.Base(), plain.DisplayName())
	}
}

// TestNewResult ties Valid to error-list emptiness.
func TestNewResult(t *testing.T) {
	if r := core.NewResult(nil); !r.Valid {
		t.Error("empty error list must be valid")
	}
	if r := core.NewResult([]string{"boom"}); r.Valid {
		t.Error("non-empty error list must be invalid")
	}
}
