package migrations

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"
)

var migrationName = regexp.MustCompile(`^\d{3}_[a-z_]+\.sql$`)

func TestFiles_AreSequentialTernScripts(t *testing.T) {
	entries, err := fs.ReadDir(Files(), ".")
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 migrations, got %d", len(entries))
	}

	for i, entry := range entries {
		name := entry.Name()
		if !migrationName.MatchString(name) {
			t.Fatalf("unexpected migration file name %q", name)
		}
		wantPrefix := []string{"001_", "002_"}[i]
		if !strings.HasPrefix(name, wantPrefix) {
			t.Fatalf("expected %q to start with %q", name, wantPrefix)
		}

		data, err := fs.ReadFile(Files(), name)
		if err != nil {
			t.Fatalf("ReadFile %s: %v", name, err)
		}
		if !strings.Contains(string(data), "---- create above / drop below ----") {
			t.Fatalf("%s has no down section", name)
		}
	}
}

func TestFiles_SchemaLimits(t *testing.T) {
	data, err := fs.ReadFile(Files(), "001_create_tasks.sql")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{"varchar(200)", "varchar(20)", "DEFAULT 'todo'"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected schema to contain %q", want)
		}
	}
}
