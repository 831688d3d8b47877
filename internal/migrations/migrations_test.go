package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, ".")
	if err != nil {
		t.Fatalf("read embedded dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(entries))
	}
	for _, e := range entries {
		raw, err := fs.ReadFile(Migrations, e.Name())
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		body := string(raw)
		if !strings.Contains(body, "-- +goose Up") || !strings.Contains(body, "-- +goose Down") {
			t.Fatalf("%s is missing goose annotations", e.Name())
		}
	}
}
