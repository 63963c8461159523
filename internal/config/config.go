// Package config loads quill.toml, the project-level configuration
// consumed by the formatter. A missing file means defaults; a malformed
// file is an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file quill looks for.
const FileName = "quill.toml"

// Config mirrors the quill.toml layout.
type Config struct {
	Format Format `toml:"format"`
}

// Format is the [format] table.
type Format struct {
	MaxLineWidth      int      `toml:"max_line_width"`
	MaxCommentWidth   int      `toml:"max_comment_width"`
	ReflowDocComments bool     `toml:"reflow_doc_comments"`
	TabWidth          int      `toml:"tab_width"`
	Extensions        []string `toml:"extensions"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format: Format{
			MaxLineWidth:      100,
			MaxCommentWidth:   80,
			ReflowDocComments: false,
			TabWidth:          4,
			Extensions:        []string{".c", ".h", ".cc", ".hh", ".cpp", ".hpp", ".rs", ".swift", ".zig"},
		},
	}
}

// Load parses the configuration file at path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Discover walks from startDir toward the filesystem root looking for a
// quill.toml. When none exists it returns the defaults and an empty path.
func Discover(startDir string) (Config, string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Config{}, "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			cfg, err := Load(candidate)
			return cfg, candidate, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), "", nil
		}
		dir = parent
	}
}

func (c Config) validate() error {
	if c.Format.MaxLineWidth < 1 {
		return errors.New("format.max_line_width must be positive")
	}
	if c.Format.MaxCommentWidth < 1 {
		return errors.New("format.max_comment_width must be positive")
	}
	if c.Format.TabWidth < 1 {
		return errors.New("format.tab_width must be positive")
	}
	if len(c.Format.Extensions) == 0 {
		return errors.New("format.extensions must not be empty")
	}
	return nil
}
