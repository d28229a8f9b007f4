package app

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-kanban/internal/config"
)

func TestNewLogWriter_LevelPerEnv(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		env  string
		want zerolog.Level
	}{
		{config.EnvDev, zerolog.DebugLevel},
		{config.EnvProd, zerolog.InfoLevel},
		{config.EnvLocal, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		if _, err := newLogWriter(tt.env, config.LogConfig{}); err != nil {
			t.Fatalf("newLogWriter(%q): %v", tt.env, err)
		}
		if got := zerolog.GlobalLevel(); got != tt.want {
			t.Fatalf("env %q: expected level %v, got %v", tt.env, tt.want, got)
		}
	}
}

func TestNewLogWriter_UnknownEnv(t *testing.T) {
	if _, err := newLogWriter("staging", config.LogConfig{}); err == nil {
		t.Fatalf("expected error for unknown env")
	}
}

func TestNewLogWriter_TeesIntoFile(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	w, err := newLogWriter(config.EnvProd, config.LogConfig{
		File:      filepath.Join(t.TempDir(), "kanban.log"),
		MaxSizeMB: 1,
	})
	if err != nil {
		t.Fatalf("newLogWriter: %v", err)
	}
	if _, ok := w.(zerolog.LevelWriter); !ok {
		t.Fatalf("expected a multi level writer, got %T", w)
	}
}
