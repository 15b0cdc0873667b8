package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
generate-tests: true
max-entities: "8192"
max-tags: 128
xcode: false
`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if !Bool(c.GenerateTests, false) {
		t.Error("generate-tests not set")
	}
	if got := String(c.MaxEntities, DefaultMaxEntities); got != "8192" {
		t.Errorf("max-entities = %q, want 8192", got)
	}
	if got := String(c.MaxTags, DefaultMaxTags); got != "128" {
		t.Errorf("max-tags = %q, want 128", got)
	}
	if c.Xcode == nil || *c.Xcode {
		t.Errorf("xcode = %v, want explicit false", c.Xcode)
	}
	if c.AllPlatforms != nil {
		t.Error("all-platforms should be unset")
	}
}

func TestParseEmpty(t *testing.T) {
	c, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	if got := String(c.MaxTags, DefaultMaxTags); got != DefaultMaxTags {
		t.Errorf("max-tags = %q, want default", got)
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("max-entity: 10\n")); err == nil {
		t.Error("Parse() accepted an unknown key")
	}
}

func TestLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	c, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load(optional) error: %v", err)
	}
	if c.GenerateTests != nil || c.MaxEntities != nil {
		t.Errorf("Load(optional) = %+v, want empty", c)
	}

	if _, err := Load(path, true); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Load(required) error = %v, want ErrNotExist", err)
	}
}

func TestLoadRelativeSourceDir(t *testing.T) {
	dir := t.TempDir()
	path := DefaultPath(dir)
	if err := os.WriteFile(path, []byte("source-dir: lib/DonerECS\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path, true)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := filepath.Join(dir, "lib", "DonerECS")
	if got := String(c.SourceDir, ""); got != want {
		t.Errorf("source-dir = %q, want %q", got, want)
	}
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("generate-tests: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, false); err == nil {
		t.Error("Load() accepted malformed yaml")
	}
}
