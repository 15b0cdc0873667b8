// Package config reads the optional decsgen.yaml file that supplies
// defaults for the generator flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the root folder.
const FileName = "decsgen.yaml"

const (
	DefaultMaxEntities = "4096"
	DefaultMaxTags     = "64"
)

// Config mirrors the generator flags. Nil fields are unset.
type Config struct {
	GenerateTests *bool   `yaml:"generate-tests"`
	MaxEntities   *string `yaml:"max-entities"`
	MaxTags       *string `yaml:"max-tags"`
	AllPlatforms  *bool   `yaml:"all-platforms"`
	Xcode         *bool   `yaml:"xcode"`
	SourceDir     *string `yaml:"source-dir"`
}

// Parse decodes a config document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &c, nil
}

// Load reads the config at path. With required unset a missing file yields
// an empty Config.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if c.SourceDir != nil && *c.SourceDir != "" && !filepath.IsAbs(*c.SourceDir) {
		dir := filepath.Join(filepath.Dir(path), *c.SourceDir)
		c.SourceDir = &dir
	}
	return c, nil
}

// DefaultPath returns the path of the config file inside root.
func DefaultPath(root string) string {
	return filepath.Join(root, FileName)
}

// Bool returns the value of b, or def when unset.
func Bool(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// String returns the value of s, or def when unset.
func String(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
