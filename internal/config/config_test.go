package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Learner.ID != "local" {
		t.Errorf("learner id = %q, want %q", cfg.Learner.ID, "local")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "database:\n  path: /tmp/test.db\nlearner:\n  id: kiddo\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Database.Path != "/tmp/test.db" {
		t.Errorf("database path = %q, want /tmp/test.db", cfg.Database.Path)
	}
	if cfg.Learner.ID != "kiddo" {
		t.Errorf("learner id = %q, want kiddo", cfg.Learner.ID)
	}
}
