package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Digest is a SHA-256 content hash used for cache keys and invalidation.
type Digest [32]byte

// Manifest is a located and parsed sdml.toml.
type Manifest struct {
	Path   string // путь к самому sdml.toml
	Root   string // директория манифеста
	Config Config
}

type Config struct {
	Package PackageConfig `toml:"package"`
	Schema  SchemaConfig  `toml:"schema"`
}

type PackageConfig struct {
	Name string `toml:"name"`
}

type SchemaConfig struct {
	// Path points at the schema directory, relative to the manifest root.
	Path string `toml:"path"`
}

// FindManifest walks up from startDir looking for sdml.toml. The second
// return value is false when no manifest exists anywhere up the tree.
func FindManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "sdml.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LoadManifest locates and parses the nearest sdml.toml above startDir.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadConfig(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Config{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return Config{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if !meta.IsDefined("schema", "path") || strings.TrimSpace(cfg.Schema.Path) == "" {
		// схема по умолчанию лежит рядом с манифестом
		cfg.Schema.Path = "."
	}
	return cfg, nil
}

// SchemaDir resolves the schema directory to an absolute path.
func (m *Manifest) SchemaDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Schema.Path))
}
