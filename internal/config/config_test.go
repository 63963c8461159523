package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"quill/internal/config"
)

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	data := "[format]\nmax_line_width = 120\nreflow_doc_comments = true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Format.MaxLineWidth != 120 {
		t.Fatalf("max_line_width: want 120 got %d", cfg.Format.MaxLineWidth)
	}
	if !cfg.Format.ReflowDocComments {
		t.Fatalf("reflow_doc_comments not applied")
	}
	// Untouched keys keep their defaults.
	if cfg.Format.MaxCommentWidth != config.Default().Format.MaxCommentWidth {
		t.Fatalf("max_comment_width default lost: %d", cfg.Format.MaxCommentWidth)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	if err := os.WriteFile(path, []byte("[format]\ntab_width = -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.Load(path); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestDiscoverWalksUpward(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	path := filepath.Join(root, config.FileName)
	if err := os.WriteFile(path, []byte("[format]\nmax_line_width = 90\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, found, err := config.Discover(nested)
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if found != path {
		t.Fatalf("discovered path: want %q got %q", path, found)
	}
	if cfg.Format.MaxLineWidth != 90 {
		t.Fatalf("max_line_width: want 90 got %d", cfg.Format.MaxLineWidth)
	}
}

func TestDiscoverFallsBackToDefaults(t *testing.T) {
	cfg, found, err := config.Discover(t.TempDir())
	if err != nil {
		t.Fatalf("discover failed: %v", err)
	}
	if found != "" {
		t.Fatalf("unexpected config file: %q", found)
	}
	if cfg.Format.MaxLineWidth != config.Default().Format.MaxLineWidth {
		t.Fatalf("defaults not returned: %+v", cfg)
	}
}
