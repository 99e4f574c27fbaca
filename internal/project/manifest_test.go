package project

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "sdml.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
name = "shop"

[schema]
path = "schema"
`)

	m, ok, err := LoadManifest(dir)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected manifest to be found")
	}
	if m.Config.Package.Name != "shop" {
		t.Fatalf("expected package name shop, got %q", m.Config.Package.Name)
	}
	if m.SchemaDir() != filepath.Join(dir, "schema") {
		t.Fatalf("unexpected schema dir %q", m.SchemaDir())
	}
}

func TestLoadManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `
[package]
name = "shop"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	m, ok, err := LoadManifest(nested)
	if err != nil || !ok {
		t.Fatalf("expected manifest above nested dir, got ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Fatalf("expected root %q, got %q", root, m.Root)
	}
	// без [schema].path схема ищется рядом с манифестом
	if m.SchemaDir() != root {
		t.Fatalf("expected default schema dir %q, got %q", root, m.SchemaDir())
	}
}

func TestLoadManifestRequiresPackageName(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, `
[package]
`)

	_, ok, err := LoadManifest(dir)
	if !ok {
		t.Fatalf("manifest file exists, ok must be true")
	}
	if err == nil || !strings.Contains(err.Error(), "[package].name") {
		t.Fatalf("expected missing name error, got %v", err)
	}
}

func TestFindManifestAbsent(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := FindManifest(dir)
	if err != nil {
		t.Fatalf("FindManifest failed: %v", err)
	}
	if ok {
		t.Fatalf("no manifest was written, ok must be false")
	}
}
